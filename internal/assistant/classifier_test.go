package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{name: "Music", message: "Play Shape of You song", want: IntentMusic},
		{name: "News", message: "What's the latest news?", want: IntentNews},
		{name: "Dictionary", message: "Define serendipity", want: IntentDictionary},
		{name: "DictionaryWhatDoes", message: "What does ephemeral mean?", want: IntentDictionary},
		// "what is" gets a definition, not an encyclopedia lookup.
		{name: "DictionaryWhatIs", message: "What is serendipity?", want: IntentDictionary},
		{name: "Translate", message: "Translate good morning to Hindi", want: IntentTranslate},
		{name: "ConfirmOrder", message: "Confirm my order", want: IntentConfirmOrder},
		{name: "TrainExplicit", message: "Book a train from Delhi to Mumbai", want: IntentTrain},
		{name: "TrainTicketWithCity", message: "Book tickets to Mumbai", want: IntentTrain},
		{name: "Movie", message: "Book movie tickets for Dune", want: IntentMovie},
		{name: "Food", message: "I'm hungry", want: IntentFood},
		{name: "FoodPizza", message: "Order a pizza", want: IntentFood},
		{name: "Weather", message: "What's the weather in London?", want: IntentWeather},
		{name: "Currency", message: "Convert 100 USD to INR", want: IntentCurrency},
		{name: "Entertainment", message: "Tell me a joke", want: IntentEntertain},
		{name: "Encyclopedia", message: "Tell me about Albert Einstein", want: IntentEncyclopedia},
		{name: "Wallet", message: "Show my wallet balance", want: IntentWallet},
		{name: "ChatFallback", message: "Good evening, how was your day?", want: IntentChat},
		// "play" alone is not enough; it needs a music word.
		{name: "PlayWithoutMusicWord", message: "Let's play chess", want: IntentChat},
		// "music news" stays music because rules run in order.
		{name: "MusicBeforeNews", message: "Play some music news", want: IntentMusic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestHasJourneyWords(t *testing.T) {
	// Whole-word matching: "tomorrow" and "history" contain "to" but name
	// no journey.
	assert.True(t, hasJourneyWords("ticket from delhi"))
	assert.True(t, hasJourneyWords("travel to mumbai"))
	assert.False(t, hasJourneyWords("ticket for tomorrow"))
	assert.False(t, hasJourneyWords("travel history"))
}
