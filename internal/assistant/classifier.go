package assistant

import "strings"

// Intent is the recognized purpose of a user message.
type Intent string

const (
	IntentMusic        Intent = "music"
	IntentNews         Intent = "news"
	IntentDictionary   Intent = "dictionary"
	IntentTranslate    Intent = "translate"
	IntentConfirmOrder Intent = "confirm_order"
	IntentTrain        Intent = "train"
	IntentMovie        Intent = "movie"
	IntentFood         Intent = "food"
	IntentWeather      Intent = "weather"
	IntentCurrency     Intent = "currency"
	IntentEntertain    Intent = "entertainment"
	IntentEncyclopedia Intent = "encyclopedia"
	IntentWallet       Intent = "wallet"
	IntentChat         Intent = "chat"
)

// rules is evaluated in order and the first match wins. The order matters:
// music before news so "play some music news" stays music, dictionary before
// encyclopedia so "what is X" gets a definition first, train before movie so
// journey bookings are not mistaken for cinema tickets.
var rules = []struct {
	intent Intent
	match  func(in string) bool
}{
	{IntentMusic, func(in string) bool {
		return strings.Contains(in, "play") && containsAny(in,
			"song", "music", "video", "youtube", "audio")
	}},
	{IntentNews, func(in string) bool {
		return containsAny(in, "news", "headlines", "breaking", "current events")
	}},
	{IntentDictionary, func(in string) bool {
		return containsAny(in, "define", "definition", "meaning", "dictionary", "what does", "what is")
	}},
	{IntentTranslate, func(in string) bool {
		return containsAny(in, "translate", "in hindi", "in english", "hindi mein", "english mein")
	}},
	{IntentConfirmOrder, func(in string) bool {
		return strings.Contains(in, "confirm") && strings.Contains(in, "order")
	}},
	{IntentTrain, func(in string) bool {
		if containsAny(in, "train", "railway", "irctc") {
			return true
		}

		return containsAny(in, "ticket", "travel") &&
			(containsAny(in, knownCities...) || hasJourneyWords(in))
	}},
	{IntentMovie, func(in string) bool {
		return containsAny(in, "movie", "cinema", "film", "ticket")
	}},
	{IntentFood, func(in string) bool {
		return containsAny(in, "hungry", "food", "pizza", "order", "restaurant")
	}},
	{IntentWeather, func(in string) bool {
		return containsAny(in, "weather", "temperature", "forecast", "climate", "sunny", "rainy")
	}},
	{IntentCurrency, func(in string) bool {
		return containsAny(in, "currency", "exchange", "convert", "dollar", "euro", "pound")
	}},
	{IntentEntertain, func(in string) bool {
		return containsAny(in, "joke", "funny", "laugh", "quote", "inspiration", "motivate")
	}},
	{IntentEncyclopedia, func(in string) bool {
		return containsAny(in, "wikipedia", "wiki", "tell me about", "information about",
			"facts about", "who is", "what is")
	}},
	{IntentWallet, func(in string) bool {
		return containsAny(in, "wallet", "balance", "money", "payment", "fund")
	}},
}

// Classify maps a user message to an intent. Unrecognized messages fall
// through to open-ended chat.
func Classify(message string) Intent {
	in := strings.ToLower(message)

	for _, r := range rules {
		if r.match(in) {
			return r.intent
		}
	}

	return IntentChat
}

func containsAny(in string, substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(in, s) {
			return true
		}
	}

	return false
}

// hasJourneyWords reports whether the input names a journey ("from X to Y").
// Whole-word matching keeps words like "tomorrow" or "history" from counting.
func hasJourneyWords(in string) bool {
	for _, w := range strings.Fields(in) {
		if w == "from" || w == "to" {
			return true
		}
	}

	return false
}
