package task

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Payload is the type-specific body of a task. Field names are part of the
// wire contract with the web client and must not change. Money inside a
// payload is presentational (plain JSON numbers); the ledger converts to
// decimal at settlement time.
type Payload interface {
	// Ref is the client-facing payload id, e.g. "food-3f9c...".
	Ref() string
	Kind() Type
	SetStatus(Status)
}

// Payable is implemented by payloads that carry an amount owed.
type Payable interface {
	Payload
	TotalAmount() decimal.Decimal
}

type FoodItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type FoodOrder struct {
	ID           string     `json:"id"`
	Type         Type       `json:"type"`
	Status       Status     `json:"status"`
	Restaurant   string     `json:"restaurant"`
	Items        []FoodItem `json:"items"`
	DeliveryFee  float64    `json:"deliveryFee"`
	Total        float64    `json:"total"`
	Image        string     `json:"image,omitempty"`
	Rating       float64    `json:"rating,omitempty"`
	DeliveryTime string     `json:"deliveryTime,omitempty"`
	Distance     string     `json:"distance,omitempty"`
	OrderNumber  string     `json:"orderNumber,omitempty"`
}

func (p *FoodOrder) Ref() string                  { return p.ID }
func (p *FoodOrder) Kind() Type                   { return TypeFood }
func (p *FoodOrder) SetStatus(s Status)           { p.Status = s }
func (p *FoodOrder) TotalAmount() decimal.Decimal { return decimal.NewFromFloat(p.Total) }

type TicketOptions struct {
	Movie   string `json:"movie"`
	Time    string `json:"time"`
	Tickets int    `json:"tickets"`
}

type TicketBooking struct {
	ID          string        `json:"id"`
	Type        Type          `json:"type"`
	Status      Status        `json:"status"`
	Venue       string        `json:"venue"`
	Options     TicketOptions `json:"options"`
	TicketPrice float64       `json:"ticketPrice"`
	ServiceFee  float64       `json:"serviceFee"`
	Total       float64       `json:"total"`
	Image       string        `json:"image,omitempty"`
}

func (p *TicketBooking) Ref() string                  { return p.ID }
func (p *TicketBooking) Kind() Type                   { return TypeTicket }
func (p *TicketBooking) SetStatus(s Status)           { p.Status = s }
func (p *TicketBooking) TotalAmount() decimal.Decimal { return decimal.NewFromFloat(p.Total) }

type TrainTicket struct {
	ID          string  `json:"id"`
	Type        Type    `json:"type"`
	Status      Status  `json:"status"`
	TrainNumber string  `json:"trainNumber"`
	TrainName   string  `json:"trainName"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Date        string  `json:"date"`
	Departure   string  `json:"departure"`
	Arrival     string  `json:"arrival"`
	Duration    string  `json:"duration"`
	ClassType   string  `json:"classType"`
	Price       float64 `json:"price"`
	Seats       int     `json:"seats"`
	PNR         string  `json:"pnr"`
	Coach       string  `json:"coach"`
	SeatNumbers []int   `json:"seatNumbers"`
	Platform    int     `json:"platform"`
	Distance    string  `json:"distance"`
}

func (p *TrainTicket) Ref() string                  { return p.ID }
func (p *TrainTicket) Kind() Type                   { return TypeTrain }
func (p *TrainTicket) SetStatus(s Status)           { p.Status = s }
func (p *TrainTicket) TotalAmount() decimal.Decimal { return decimal.NewFromFloat(p.Price) }

type WeatherReport struct {
	ID          string  `json:"id"`
	Type        Type    `json:"type"`
	Status      Status  `json:"status"`
	Location    string  `json:"location"`
	Country     string  `json:"country,omitempty"`
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	Description string  `json:"description"`
	Main        string  `json:"main"`
	Icon        string  `json:"icon,omitempty"`
	WindSpeed   float64 `json:"windSpeed"`
	Visibility  string  `json:"visibility,omitempty"`
}

func (p *WeatherReport) Ref() string        { return p.ID }
func (p *WeatherReport) Kind() Type         { return TypeWeather }
func (p *WeatherReport) SetStatus(s Status) { p.Status = s }

type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	Source      string `json:"source,omitempty"`
}

type NewsDigest struct {
	ID       string        `json:"id"`
	Type     Type          `json:"type"`
	Status   Status        `json:"status"`
	Category string        `json:"category"`
	Articles []NewsArticle `json:"articles"`
}

func (p *NewsDigest) Ref() string        { return p.ID }
func (p *NewsDigest) Kind() Type         { return TypeNews }
func (p *NewsDigest) SetStatus(s Status) { p.Status = s }

type WordDefinition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

type WordMeaning struct {
	PartOfSpeech string           `json:"partOfSpeech"`
	Definitions  []WordDefinition `json:"definitions"`
}

type WordTranslation struct {
	Language              string   `json:"language"`
	LanguageName          string   `json:"languageName"`
	TranslatedWord        string   `json:"translatedWord"`
	TranslatedDefinitions []string `json:"translatedDefinitions,omitempty"`
}

type DictionaryEntry struct {
	ID           string            `json:"id"`
	Type         Type              `json:"type"`
	Status       Status            `json:"status"`
	Word         string            `json:"word"`
	Phonetic     string            `json:"phonetic,omitempty"`
	Meanings     []WordMeaning     `json:"meanings"`
	Translations []WordTranslation `json:"translations,omitempty"`
}

func (p *DictionaryEntry) Ref() string        { return p.ID }
func (p *DictionaryEntry) Kind() Type         { return TypeDictionary }
func (p *DictionaryEntry) SetStatus(s Status) { p.Status = s }

type CurrencyConversion struct {
	ID              string  `json:"id"`
	Type            Type    `json:"type"`
	Status          Status  `json:"status"`
	Amount          float64 `json:"amount"`
	FromCurrency    string  `json:"fromCurrency"`
	ToCurrency      string  `json:"toCurrency"`
	ExchangeRate    string  `json:"exchangeRate"`
	ConvertedAmount string  `json:"convertedAmount"`
	LastUpdated     string  `json:"lastUpdated,omitempty"`
}

func (p *CurrencyConversion) Ref() string        { return p.ID }
func (p *CurrencyConversion) Kind() Type         { return TypeCurrency }
func (p *CurrencyConversion) SetStatus(s Status) { p.Status = s }

type EntertainmentPiece struct {
	ID          string   `json:"id"`
	Type        Type     `json:"type"`
	Status      Status   `json:"status"`
	ContentType string   `json:"contentType"` // joke or quote
	Content     string   `json:"content"`
	Category    string   `json:"category,omitempty"`
	Author      string   `json:"author,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (p *EntertainmentPiece) Ref() string        { return p.ID }
func (p *EntertainmentPiece) Kind() Type         { return TypeEntertainment }
func (p *EntertainmentPiece) SetStatus(s Status) { p.Status = s }

type EncyclopediaSummary struct {
	ID         string `json:"id"`
	Type       Type   `json:"type"`
	Status     Status `json:"status"`
	Title      string `json:"title"`
	Extract    string `json:"extract"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	PageURL    string `json:"pageUrl,omitempty"`
	Lang       string `json:"lang,omitempty"`
	SearchTerm string `json:"searchTerm,omitempty"`
}

func (p *EncyclopediaSummary) Ref() string        { return p.ID }
func (p *EncyclopediaSummary) Kind() Type         { return TypeEncyclopedia }
func (p *EncyclopediaSummary) SetStatus(s Status) { p.Status = s }

type Video struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	ChannelTitle string `json:"channelTitle,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`
}

type VideoSearch struct {
	ID            string  `json:"id"`
	Type          Type    `json:"type"`
	Status        Status  `json:"status"`
	SearchQuery   string  `json:"searchQuery"`
	Videos        []Video `json:"videos"`
	SelectedVideo *Video  `json:"selectedVideo,omitempty"`
}

func (p *VideoSearch) Ref() string        { return p.ID }
func (p *VideoSearch) Kind() Type         { return TypeVideo }
func (p *VideoSearch) SetStatus(s Status) { p.Status = s }

// UnmarshalPayload decodes a stored payload into its concrete type.
func UnmarshalPayload(t Type, data []byte) (Payload, error) {
	var p Payload

	switch t {
	case TypeFood:
		p = &FoodOrder{}
	case TypeTicket:
		p = &TicketBooking{}
	case TypeTrain:
		p = &TrainTicket{}
	case TypeWeather:
		p = &WeatherReport{}
	case TypeNews:
		p = &NewsDigest{}
	case TypeDictionary:
		p = &DictionaryEntry{}
	case TypeCurrency:
		p = &CurrencyConversion{}
	case TypeEntertainment:
		p = &EntertainmentPiece{}
	case TypeEncyclopedia:
		p = &EncyclopediaSummary{}
	case TypeVideo:
		p = &VideoSearch{}
	default:
		return nil, fmt.Errorf("unknown task type %q", t)
	}

	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", t, err)
	}

	return p, nil
}
