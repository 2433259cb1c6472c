package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jarvish-app/jarvish/internal/message"
	"github.com/jarvish-app/jarvish/internal/provider"
	"github.com/jarvish-app/jarvish/internal/settlement"
	"github.com/jarvish-app/jarvish/internal/task"
	"github.com/jarvish-app/jarvish/internal/wallet"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=assistant
type Tasks interface {
	Create(ctx context.Context, userID int64, status task.Status, payload task.Payload) (*task.Task, error)
	List(ctx context.Context, userID int64) ([]*task.Task, error)
}

type Settler interface {
	Confirm(ctx context.Context, userID int64, ref task.Ref, autoTopUp bool) (*settlement.Confirmation, error)
}

type Ledger interface {
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
}

type Messages interface {
	Append(ctx context.Context, userID int64, role message.Role, content string) (*message.Message, error)
}

// Providers bundles the external data sources the assistant can draw on.
// Every field must be set; a provider missing its API key reports
// ErrNotConfigured and the affected intents degrade to an apology message
// instead of failing the request.
type Providers struct {
	Weather       provider.Weather
	News          provider.News
	Dictionary    provider.Dictionary
	Translator    provider.Translator
	Exchange      provider.Exchange
	Entertainment provider.Entertainment
	Encyclopedia  provider.Encyclopedia
	Videos        provider.VideoSearch
	Chat          provider.Chat
}

// Service turns free-form user messages into tasks, settlements and replies.
type Service struct {
	tasks     Tasks
	settler   Settler
	ledger    Ledger
	messages  Messages
	providers Providers
}

func NewService(tasks Tasks, settler Settler, ledger Ledger, messages Messages, providers Providers) *Service {
	return &Service{
		tasks:     tasks,
		settler:   settler,
		ledger:    ledger,
		messages:  messages,
		providers: providers,
	}
}

// Reply is the assistant's answer to one user message.
type Reply struct {
	Message     string
	Task        *task.Task
	Transaction *wallet.Transaction
}

const fallbackReply = "I'm not sure how to help with that. You can ask me to order food, book tickets, or manage your wallet."

// Process classifies the message, runs the matching handler and records both
// sides of the exchange in the conversation transcript.
func (s *Service) Process(ctx context.Context, userID int64, text string) (*Reply, error) {
	reply, err := s.dispatch(ctx, userID, text)
	if err != nil {
		return nil, err
	}

	if _, err := s.messages.Append(ctx, userID, message.RoleUser, text); err != nil {
		return nil, fmt.Errorf("recording user message: %w", err)
	}

	if _, err := s.messages.Append(ctx, userID, message.RoleAssistant, reply.Message); err != nil {
		return nil, fmt.Errorf("recording assistant message: %w", err)
	}

	return reply, nil
}

func (s *Service) dispatch(ctx context.Context, userID int64, text string) (*Reply, error) {
	in := strings.ToLower(text)

	switch Classify(text) {
	case IntentMusic:
		return s.handleMusic(ctx, userID, in)
	case IntentNews:
		return s.handleNews(ctx, userID, in)
	case IntentDictionary:
		return s.handleDictionary(ctx, userID, in)
	case IntentTranslate:
		return s.handleTranslate(ctx, userID, in)
	case IntentConfirmOrder:
		return s.handleConfirmOrder(ctx, userID)
	case IntentTrain:
		return s.handleTrain(ctx, userID, in)
	case IntentMovie:
		return s.handleMovie(ctx, userID, in)
	case IntentFood:
		return s.handleFood(ctx, userID, in)
	case IntentWeather:
		return s.handleWeather(ctx, userID, in)
	case IntentCurrency:
		return s.handleCurrency(ctx, userID, in)
	case IntentEntertain:
		return s.handleEntertainment(ctx, userID, in)
	case IntentEncyclopedia:
		return s.handleEncyclopedia(ctx, userID, in)
	case IntentWallet:
		return s.handleWallet(ctx, userID)
	default:
		return s.handleChat(ctx, in)
	}
}

func (s *Service) handleMusic(ctx context.Context, userID int64, in string) (*Reply, error) {
	query := songQuery(in)
	if query == "" {
		return &Reply{Message: "Please tell me what song you'd like to play. For example: 'Play a Coldplay song'"}, nil
	}

	found, err := s.providers.Videos.Search(ctx, query+" song", 3)

	switch {
	case errors.Is(err, provider.ErrNotConfigured):
		return &Reply{Message: "I'd love to play music for you, but the music service isn't configured yet."}, nil
	case err != nil:
		slog.Error("music search failed", "query", query, "error", err)
		return &Reply{Message: "I'm having trouble searching for music right now. Please try again later."}, nil
	case len(found) == 0:
		return &Reply{Message: fmt.Sprintf("I couldn't find any music for %q. Please try a different search.", query)}, nil
	}

	videos := make([]task.Video, len(found))
	for i, v := range found {
		videos[i] = task.Video{
			VideoID:      v.VideoID,
			Title:        v.Title,
			Description:  v.Description,
			Thumbnail:    v.Thumbnail,
			ChannelTitle: v.ChannelTitle,
			PublishedAt:  v.PublishedAt,
		}
	}

	payload := &task.VideoSearch{
		ID:            "youtube-" + uuid.NewString(),
		Type:          task.TypeVideo,
		SearchQuery:   query,
		Videos:        videos,
		SelectedVideo: &videos[0],
	}

	t, err := s.tasks.Create(ctx, userID, task.StatusDisplay, payload)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf("Found music for %q. Here are your options:", query),
		Task:    t,
	}, nil
}

func (s *Service) handleNews(ctx context.Context, userID int64, in string) (*Reply, error) {
	category := newsCategory(in)

	articles, err := s.providers.News.TopHeadlines(ctx, category, 3)

	switch {
	case errors.Is(err, provider.ErrNotConfigured):
		return &Reply{Message: "I'd love to get you the latest news, but the news service isn't configured yet."}, nil
	case err != nil:
		slog.Error("news fetch failed", "category", category, "error", err)
		return &Reply{Message: "I'm having trouble getting the latest news right now. Please try again later."}, nil
	case len(articles) == 0:
		return &Reply{Message: "I couldn't find any news articles right now. Please try again later."}, nil
	}

	digest := &task.NewsDigest{
		ID:       "news-" + uuid.NewString(),
		Type:     task.TypeNews,
		Category: category,
	}

	for _, a := range articles {
		digest.Articles = append(digest.Articles, task.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
			PublishedAt: a.PublishedAt,
			Source:      a.Source,
		})
	}

	t, err := s.tasks.Create(ctx, userID, task.StatusDisplay, digest)
	if err != nil {
		return nil, err
	}

	label := ""
	if category != "general" {
		label = category + " "
	}

	return &Reply{
		Message: fmt.Sprintf("Here are the latest %sheadlines:", label),
		Task:    t,
	}, nil
}

func (s *Service) handleDictionary(ctx context.Context, userID int64, in string) (*Reply, error) {
	word := dictionaryWord(in)
	if word == "" {
		return &Reply{Message: "Please tell me which word you'd like me to define. For example: 'define happiness' or 'what does beautiful mean?'"}, nil
	}

	entry, err := s.providers.Dictionary.Define(ctx, word)
	if err != nil {
		slog.Error("dictionary lookup failed", "word", word, "error", err)
		return &Reply{Message: fmt.Sprintf("I couldn't find a definition for %q. Please check the spelling and try again.", word)}, nil
	}

	payload := &task.DictionaryEntry{
		ID:       "dictionary-" + uuid.NewString(),
		Type:     task.TypeDictionary,
		Word:     entry.Word,
		Phonetic: entry.Phonetic,
		Meanings: toWordMeanings(entry.Meanings),
	}

	t, err := s.tasks.Create(ctx, userID, task.StatusDisplay, payload)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf("Here's the definition of %q:", word),
		Task:    t,
	}, nil
}

func (s *Service) handleTranslate(ctx context.Context, userID int64, in string) (*Reply, error) {
	text, code := translationRequest(in)
	if text == "" || code == "" {
		return &Reply{Message: "Please tell me what you'd like to translate and to which language. For example: 'translate hello to Hindi' or 'beautiful in Hindi'"}, nil
	}

	// Single words also get a dictionary entry alongside the translation.
	var entry *provider.DictionaryEntry

	if len(strings.Fields(text)) == 1 {
		if e, err := s.providers.Dictionary.Define(ctx, text); err == nil {
			entry = e
		}
	}

	translated, err := s.providers.Translator.Translate(ctx, text, code)
	if err != nil {
		slog.Error("translation failed", "text", text, "target", code, "error", err)
		return &Reply{Message: "I'm having trouble with the translation service right now. Please try again later."}, nil
	}

	langName := languageNames[code]

	translation := task.WordTranslation{
		Language:       code,
		LanguageName:   langName,
		TranslatedWord: translated,
	}

	payload := &task.DictionaryEntry{
		ID:   "dictionary-" + uuid.NewString(),
		Type: task.TypeDictionary,
		Word: text,
	}

	msg := fmt.Sprintf("Translation: %q in %s is %q", text, langName, translated)

	if entry != nil {
		payload.Word = entry.Word
		payload.Phonetic = entry.Phonetic

		if len(entry.Meanings) > 2 {
			entry.Meanings = entry.Meanings[:2]
		}

		payload.Meanings = toWordMeanings(entry.Meanings)

		for _, m := range payload.Meanings {
			for _, d := range m.Definitions {
				if len(translation.TranslatedDefinitions) == 3 {
					break
				}

				if td, err := s.providers.Translator.Translate(ctx, d.Definition, code); err == nil {
					translation.TranslatedDefinitions = append(translation.TranslatedDefinitions, td)
				}
			}
		}

		msg = fmt.Sprintf("Here's %q with translation to %s:", text, langName)
	}

	payload.Translations = []task.WordTranslation{translation}

	t, err := s.tasks.Create(ctx, userID, task.StatusDisplay, payload)
	if err != nil {
		return nil, err
	}

	return &Reply{Message: msg, Task: t}, nil
}

func toWordMeanings(meanings []provider.Meaning) []task.WordMeaning {
	out := make([]task.WordMeaning, 0, len(meanings))

	for _, m := range meanings {
		wm := task.WordMeaning{PartOfSpeech: m.PartOfSpeech}

		for _, d := range m.Definitions {
			wm.Definitions = append(wm.Definitions, task.WordDefinition{
				Definition: d.Definition,
				Example:    d.Example,
				Synonyms:   d.Synonyms,
				Antonyms:   d.Antonyms,
			})
		}

		out = append(out, wm)
	}

	return out
}

// handleConfirmOrder settles the earliest food order still awaiting
// confirmation.
func (s *Service) handleConfirmOrder(ctx context.Context, userID int64) (*Reply, error) {
	tasks, err := s.tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	var pending *task.Task

	for _, t := range tasks {
		if t.Type == task.TypeFood && t.Status == task.StatusPending {
			pending = t
			break
		}
	}

	if pending == nil {
		return &Reply{Message: "I don't see any pending food orders to confirm."}, nil
	}

	conf, err := s.settler.Confirm(ctx, userID, task.Ref{ID: pending.ID}, false)
	if errors.Is(err, wallet.ErrInsufficientFunds) {
		return &Reply{Message: "You don't have enough funds in your wallet to confirm this order. Please add money first."}, nil
	}

	if err != nil {
		return nil, err
	}

	return &Reply{
		Message:     conf.Message,
		Task:        conf.Task,
		Transaction: conf.Transaction,
	}, nil
}

func (s *Service) handleTrain(ctx context.Context, userID int64, in string) (*Reply, error) {
	ticket := buildTrainTicket(parseJourney(in, time.Now()))

	t, err := s.tasks.Create(ctx, userID, task.StatusPending, ticket)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Message: "I found a great train for your journey! Here are the details:",
		Task:    t,
	}, nil
}

func (s *Service) handleMovie(ctx context.Context, userID int64, in string) (*Reply, error) {
	booking := buildTicketBooking(movieTitle(in))

	t, err := s.tasks.Create(ctx, userID, task.StatusSelect, booking)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Message: "I'd be happy to book movie tickets for you tonight. Here are some movies playing nearby:",
		Task:    t,
	}, nil
}

func (s *Service) handleFood(ctx context.Context, userID int64, in string) (*Reply, error) {
	order := buildFoodOrder(foodType(in))

	t, err := s.tasks.Create(ctx, userID, task.StatusPending, order)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf("I can help you order from %s. Let me find some options nearby.", order.Restaurant),
		Task:    t,
	}, nil
}

func (s *Service) handleWeather(ctx context.Context, userID int64, in string) (*Reply, error) {
	location := weatherLocation(in)

	report, err := s.providers.Weather.Current(ctx, location)

	switch {
	case errors.Is(err, provider.ErrNotConfigured):
		return &Reply{Message: "I'd love to get you weather information, but the weather service isn't configured yet."}, nil
	case err != nil:
		slog.Error("weather fetch failed", "location", location, "error", err)
		return &Reply{Message: fmt.Sprintf("I couldn't find weather information for %q. Please try a different city name.", location)}, nil
	}

	payload := &task.WeatherReport{
		ID:          "weather-" + uuid.NewString(),
		Type:        task.TypeWeather,
		Location:    report.Location,
		Country:     report.Country,
		Temperature: report.Temperature,
		FeelsLike:   report.FeelsLike,
		Humidity:    report.Humidity,
		Pressure:    report.Pressure,
		Description: report.Description,
		Main:        report.Main,
		Icon:        report.Icon,
		WindSpeed:   report.WindSpeed,
		Visibility:  report.Visibility,
	}

	t, err := s.tasks.Create(ctx, userID, task.StatusDisplay, payload)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf("Current weather in %s:", report.Location),
		Task:    t,
	}, nil
}

func (s *Service) handleCurrency(ctx context.Context, userID int64, in string) (*Reply, error) {
	conv := parseConversion(in)

	rate, date, err := s.providers.Exchange.Rate(ctx, conv.From, conv.To)
	if err != nil {
		slog.Error("exchange rate fetch failed", "from", conv.From, "to", conv.To, "error", err)
		return &Reply{Message: fmt.Sprintf("I couldn't get exchange rates for %s to %s. Please try different currency codes.", conv.From, conv.To)}, nil
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	payload := &task.CurrencyConversion{
		ID:              "currency-" + uuid.NewString(),
		Type:            task.TypeCurrency,
		Amount:          conv.Amount,
		FromCurrency:    conv.From,
		ToCurrency:      conv.To,
		ExchangeRate:    fmt.Sprintf("%.4f", rate),
		ConvertedAmount: fmt.Sprintf("%.2f", conv.Amount*rate),
		LastUpdated:     date,
	}

	t, err := s.tasks.Create(ctx, userID, task.StatusDisplay, payload)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf("Currency conversion for %v %s:", conv.Amount, conv.From),
		Task:    t,
	}, nil
}

func (s *Service) handleEntertainment(ctx context.Context, userID int64, in string) (*Reply, error) {
	if containsAny(in, "joke", "funny", "laugh") {
		joke, err := s.providers.Entertainment.Joke(ctx)
		if err != nil {
			slog.Error("joke fetch failed", "error", err)
			return &Reply{Message: "I couldn't fetch a joke right now. Here's one for you: Why don't scientists trust atoms? Because they make up everything!"}, nil
		}

		payload := &task.EntertainmentPiece{
			ID:          "entertainment-" + uuid.NewString(),
			Type:        task.TypeEntertainment,
			ContentType: "joke",
			Content:     joke.Text,
			Category:    joke.Category,
		}

		t, err := s.tasks.Create(ctx, userID, task.StatusDisplay, payload)
		if err != nil {
			return nil, err
		}

		return &Reply{Message: "Here's a joke to brighten your day:", Task: t}, nil
	}

	quote, err := s.providers.Entertainment.Quote(ctx)
	if err != nil {
		slog.Error("quote fetch failed", "error", err)
		return &Reply{Message: "I couldn't fetch a quote right now. Here's one for you: 'The only way to do great work is to love what you do.' - Steve Jobs"}, nil
	}

	payload := &task.EntertainmentPiece{
		ID:          "entertainment-" + uuid.NewString(),
		Type:        task.TypeEntertainment,
		ContentType: "quote",
		Content:     quote.Text,
		Author:      quote.Author,
		Tags:        quote.Tags,
	}

	t, err := s.tasks.Create(ctx, userID, task.StatusDisplay, payload)
	if err != nil {
		return nil, err
	}

	return &Reply{Message: "Here's an inspirational quote for you:", Task: t}, nil
}

func (s *Service) handleEncyclopedia(ctx context.Context, userID int64, in string) (*Reply, error) {
	term := encyclopediaTerm(in)
	if term == "" {
		return &Reply{Message: "Please tell me what you'd like to know about. For example: 'tell me about Albert Einstein' or 'what is artificial intelligence?'"}, nil
	}

	summary, err := s.providers.Encyclopedia.Summary(ctx, term)
	if err != nil {
		slog.Error("encyclopedia lookup failed", "term", term, "error", err)
		return &Reply{Message: fmt.Sprintf("I couldn't find information about %q. Please try a different search term or check the spelling.", term)}, nil
	}

	payload := &task.EncyclopediaSummary{
		ID:         "wikipedia-" + uuid.NewString(),
		Type:       task.TypeEncyclopedia,
		Title:      summary.Title,
		Extract:    summary.Extract,
		Thumbnail:  summary.Thumbnail,
		PageURL:    summary.PageURL,
		Lang:       summary.Lang,
		SearchTerm: term,
	}

	t, err := s.tasks.Create(ctx, userID, task.StatusDisplay, payload)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf("Here's information about %s:", summary.Title),
		Task:    t,
	}, nil
}

func (s *Service) handleWallet(ctx context.Context, userID int64) (*Reply, error) {
	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Message: fmt.Sprintf("Your current wallet balance is $%s. You can add money to your wallet or view your transaction history.",
			balance.StringFixed(2)),
	}, nil
}

func (s *Service) handleChat(ctx context.Context, in string) (*Reply, error) {
	answer, err := s.providers.Chat.Reply(ctx, in)
	if err != nil {
		if !errors.Is(err, provider.ErrNotConfigured) {
			slog.Error("chat completion failed", "error", err)
		}

		return &Reply{Message: fallbackReply}, nil
	}

	return &Reply{Message: answer}, nil
}

// Command is the structured result of a voice command.
type Command struct {
	Intent   string
	Entities map[string]string
}

// Interpret performs lightweight intent detection for voice commands. It
// never touches storage; the client decides what to do with the intent.
func Interpret(command string) Command {
	in := strings.ToLower(command)

	switch {
	case strings.Contains(in, "order") && containsAny(in, "food", "pizza", "burger", "sushi"):
		c := Command{Intent: "order_food", Entities: map[string]string{}}

		for _, t := range []string{"pizza", "burger", "sushi", "salad", "pasta"} {
			if strings.Contains(in, t) {
				c.Entities["foodType"] = t
				break
			}
		}

		return c
	case strings.Contains(in, "book") && containsAny(in, "ticket", "movie", "show", "cinema"):
		return Command{Intent: "book_ticket", Entities: map[string]string{"movie": movieTitle(in)}}
	case containsAny(in, "wallet", "balance", "payment"):
		return Command{Intent: "check_wallet", Entities: map[string]string{}}
	case containsAny(in, "news", "headlines", "breaking"):
		return Command{Intent: "get_news", Entities: map[string]string{"category": newsCategory(in)}}
	default:
		return Command{Intent: "unknown", Entities: map[string]string{}}
	}
}

// FoodOrderOffer builds a food order preview without persisting a task.
func FoodOrderOffer(command string) (*task.FoodOrder, string) {
	order := buildFoodOrder(foodType(strings.ToLower(command)))
	order.Status = task.StatusPending

	return order, fmt.Sprintf("Here's a %s order from %s", order.Items[0].Name, order.Restaurant)
}

// TicketBookingOffer builds a ticket booking preview without persisting a task.
func TicketBookingOffer(command string) (*task.TicketBooking, string) {
	booking := buildTicketBooking(movieTitle(strings.ToLower(command)))
	booking.Status = task.StatusSelect

	return booking, fmt.Sprintf("Here are ticket options for %s at %s", booking.Options.Movie, booking.Venue)
}
