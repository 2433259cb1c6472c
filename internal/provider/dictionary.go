package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FreeDictionary looks up words on dictionaryapi.dev. No API key required.
type FreeDictionary struct {
	client *http.Client
}

func NewFreeDictionary(timeout time.Duration) *FreeDictionary {
	return &FreeDictionary{client: newHTTPClient(timeout)}
}

func (p *FreeDictionary) Define(ctx context.Context, word string) (*DictionaryEntry, error) {
	endpoint := "https://api.dictionaryapi.dev/api/v2/entries/en/" + url.PathEscape(strings.ToLower(word))

	var body []struct {
		Word      string `json:"word"`
		Phonetic  string `json:"phonetic"`
		Phonetics []struct {
			Text string `json:"text"`
		} `json:"phonetics"`
		Meanings []struct {
			PartOfSpeech string `json:"partOfSpeech"`
			Definitions  []struct {
				Definition string   `json:"definition"`
				Example    string   `json:"example"`
				Synonyms   []string `json:"synonyms"`
				Antonyms   []string `json:"antonyms"`
			} `json:"definitions"`
		} `json:"meanings"`
	}

	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return nil, fmt.Errorf("fetching definition: %w", err)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("no definition for %q", word)
	}

	entry := body[0]

	result := &DictionaryEntry{
		Word:     entry.Word,
		Phonetic: entry.Phonetic,
	}

	if result.Phonetic == "" && len(entry.Phonetics) > 0 {
		result.Phonetic = entry.Phonetics[0].Text
	}

	for _, m := range entry.Meanings {
		meaning := Meaning{PartOfSpeech: m.PartOfSpeech}

		for i, d := range m.Definitions {
			if i == 3 {
				break
			}

			meaning.Definitions = append(meaning.Definitions, Definition{
				Definition: d.Definition,
				Example:    d.Example,
				Synonyms:   clip(d.Synonyms, 5),
				Antonyms:   clip(d.Antonyms, 5),
			})
		}

		result.Meanings = append(result.Meanings, meaning)
	}

	return result, nil
}

func clip(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}

	return s
}
