package assistant

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var knownCities = []string{
	"delhi", "mumbai", "bangalore", "chennai", "kolkata", "hyderabad", "pune", "ahmedabad",
}

var languageCodes = map[string]string{
	"hindi":    "hi",
	"english":  "en",
	"spanish":  "es",
	"french":   "fr",
	"german":   "de",
	"chinese":  "zh",
	"japanese": "ja",
	"korean":   "ko",
	"arabic":   "ar",
	"russian":  "ru",
}

var languageNames = map[string]string{
	"hi": "Hindi",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
	"ru": "Russian",
}

// countryToCity resolves country names in weather requests to a queryable
// major city.
var countryToCity = map[string]string{
	"india":     "Delhi,IN",
	"usa":       "New York,US",
	"uk":        "London,UK",
	"japan":     "Tokyo,JP",
	"china":     "Beijing,CN",
	"france":    "Paris,FR",
	"germany":   "Berlin,DE",
	"canada":    "Toronto,CA",
	"australia": "Sydney,AU",
}

var (
	songSuffixRe   = regexp.MustCompile(`\s+(song|video|music|audio)\s*$`)
	wordAfterRe    = regexp.MustCompile(`(?:define|definition of|meaning of)\s+(\w+)`)
	whatDoesRe     = regexp.MustCompile(`what does (\w+) mean`)
	whatIsWordRe   = regexp.MustCompile(`what is (\w+)`)
	translateRe    = regexp.MustCompile(`translate\s+(.+?)\s+(?:to|into)\s+(\w+)`)
	inHindiRe      = regexp.MustCompile(`(.+?)\s+(?:in hindi|hindi mein)`)
	inEnglishRe    = regexp.MustCompile(`(.+?)\s+(?:in english|english mein)`)
	journeyRe      = regexp.MustCompile(`from\s+(\w+)(?:\s+to\s+(\w+))?`)
	simpleRouteRe  = regexp.MustCompile(`(\w+)\s+to\s+(\w+)`)
	weatherPlaceRe = regexp.MustCompile(`weather (?:in|at|for) ([^?]+)`)
	placeWeatherRe = regexp.MustCompile(`([a-z\s,]+)\s*weather`)
	amountRe       = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	currencyRe     = regexp.MustCompile(`(usd|eur|gbp|jpy|cad|aud|chf|cny|inr|krw|bitcoin|btc|ethereum|eth)`)
	wikiPrefixRe   = regexp.MustCompile(`(?:wikipedia|wiki)\s+(.+)`)
)

// songQuery extracts the search query from a music request, e.g.
// "play believer by imagine dragons" yields "believer imagine dragons".
func songQuery(in string) string {
	_, after, found := strings.Cut(in, "play ")
	if !found {
		return ""
	}

	query := songSuffixRe.ReplaceAllString(after, "")
	query = strings.ReplaceAll(query, " by ", " ")

	return strings.TrimSpace(query)
}

func newsCategory(in string) string {
	switch {
	case strings.Contains(in, "sports"):
		return "sports"
	case strings.Contains(in, "tech"):
		return "technology"
	case strings.Contains(in, "business"):
		return "business"
	case strings.Contains(in, "health"):
		return "health"
	case strings.Contains(in, "science"):
		return "science"
	case strings.Contains(in, "entertainment"):
		return "entertainment"
	default:
		return "general"
	}
}

func dictionaryWord(in string) string {
	if m := wordAfterRe.FindStringSubmatch(in); m != nil {
		return m[1]
	}

	if m := whatDoesRe.FindStringSubmatch(in); m != nil {
		return m[1]
	}

	if m := whatIsWordRe.FindStringSubmatch(in); m != nil {
		return m[1]
	}

	return ""
}

// translationRequest extracts the text to translate and the target language
// code. An empty code means the request could not be parsed.
func translationRequest(in string) (text, code string) {
	var lang string

	if m := translateRe.FindStringSubmatch(in); m != nil {
		text, lang = strings.TrimSpace(m[1]), m[2]
	} else if m := inHindiRe.FindStringSubmatch(in); m != nil {
		text, lang = strings.TrimSpace(m[1]), "hindi"
	} else if m := inEnglishRe.FindStringSubmatch(in); m != nil {
		text, lang = strings.TrimSpace(m[1]), "english"
	}

	return text, languageCodes[lang]
}

type journey struct {
	From  string
	To    string
	Class string
	Date  string
}

// parseJourney extracts train journey details. Missing cities fall back to
// common defaults so a bare "book a train ticket" still produces an offer.
func parseJourney(in string, now time.Time) journey {
	j := journey{Class: "sleeper"}

	if m := journeyRe.FindStringSubmatch(in); m != nil {
		j.From, j.To = m[1], m[2]
	} else if m := simpleRouteRe.FindStringSubmatch(in); m != nil {
		j.From, j.To = m[1], m[2]
	}

	if j.From == "" || j.To == "" {
		var found []string

		for _, city := range knownCities {
			if strings.Contains(in, city) {
				found = append(found, city)
			}
		}

		switch {
		case len(found) >= 2:
			j.From, j.To = found[0], found[1]
		case len(found) == 1 && found[0] == "delhi":
			j.From, j.To = "Delhi", "Mumbai"
		case len(found) == 1 && found[0] == "mumbai":
			j.From, j.To = "Mumbai", "Delhi"
		}
	}

	switch {
	case strings.Contains(in, "first") || strings.Contains(in, "1st"):
		j.Class = "1ac"
	case strings.Contains(in, "second") || strings.Contains(in, "2nd"):
		j.Class = "2ac"
	case strings.Contains(in, "general"):
		j.Class = "general"
	case strings.Contains(in, "sleeper"):
		j.Class = "sleeper"
	case strings.Contains(in, "ac") || strings.Contains(in, "air conditioning"):
		j.Class = "3ac"
	}

	if strings.Contains(in, "today") {
		j.Date = now.Format("2006-01-02")
	} else {
		j.Date = now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	return j
}

func weatherLocation(in string) string {
	location := "New York"

	if m := weatherPlaceRe.FindStringSubmatch(in); m != nil {
		location = m[1]
	} else if m := placeWeatherRe.FindStringSubmatch(in); m != nil {
		location = m[1]
	}

	for _, noise := range []string{"weather", "what's", "whats", "the"} {
		location = strings.ReplaceAll(location, noise, "")
	}

	location = strings.TrimSpace(location)

	if city, ok := countryToCity[strings.ToLower(location)]; ok {
		return city
	}

	if location == "" {
		return "New York"
	}

	return location
}

type conversion struct {
	Amount float64
	From   string
	To     string
}

// parseConversion extracts a currency conversion request. With a single
// currency named, the base defaults to USD.
func parseConversion(in string) conversion {
	c := conversion{Amount: 1, From: "USD", To: "EUR"}

	if m := amountRe.FindStringSubmatch(in); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			c.Amount = v
		}
	}

	currencies := currencyRe.FindAllString(in, -1)

	switch {
	case len(currencies) >= 2:
		c.From = strings.ToUpper(currencies[0])
		c.To = strings.ToUpper(currencies[1])
	case len(currencies) == 1:
		c.To = strings.ToUpper(currencies[0])
	}

	return c
}

func encyclopediaTerm(in string) string {
	for _, prefix := range []string{"tell me about ", "information about ", "facts about ", "who is ", "what is "} {
		if _, after, found := strings.Cut(in, prefix); found {
			return strings.TrimSpace(strings.TrimSuffix(after, "?"))
		}
	}

	if m := wikiPrefixRe.FindStringSubmatch(in); m != nil {
		return strings.TrimSpace(strings.TrimSuffix(m[1], "?"))
	}

	return ""
}

func foodType(in string) string {
	for _, t := range []string{"pizza", "burger", "sushi", "salad", "pasta"} {
		if strings.Contains(in, t) {
			return t
		}
	}

	return "pizza"
}

func movieTitle(in string) string {
	switch {
	case strings.Contains(in, "dune"):
		return "Dune"
	case strings.Contains(in, "bond") || strings.Contains(in, "time to die"):
		return "No Time To Die"
	default:
		return "Avengers: Endgame"
	}
}
