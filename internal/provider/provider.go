// Package provider wraps every external data source behind a small
// interface so the assistant handlers can be tested without network access.
// All implementations degrade to errors; turning a failure into an apology
// message is the handlers' job.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=provider

// ErrNotConfigured signals a provider whose API key is missing.
var ErrNotConfigured = errors.New("provider not configured")

type WeatherReport struct {
	Location    string
	Country     string
	Temperature int
	FeelsLike   int
	Humidity    int
	Pressure    int
	Description string
	Main        string
	Icon        string
	WindSpeed   float64
	Visibility  string
}

type Weather interface {
	Current(ctx context.Context, location string) (*WeatherReport, error)
}

type Article struct {
	Title       string
	Description string
	URL         string
	URLToImage  string
	PublishedAt string
	Source      string
}

type News interface {
	TopHeadlines(ctx context.Context, category string, limit int) ([]Article, error)
}

type Definition struct {
	Definition string
	Example    string
	Synonyms   []string
	Antonyms   []string
}

type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
}

type DictionaryEntry struct {
	Word     string
	Phonetic string
	Meanings []Meaning
}

type Dictionary interface {
	Define(ctx context.Context, word string) (*DictionaryEntry, error)
}

type Translator interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}

type Exchange interface {
	// Rate returns the conversion rate from base to target and the date the
	// rates were last updated.
	Rate(ctx context.Context, base, target string) (float64, string, error)
}

type Content struct {
	Text     string
	Category string
	Author   string
	Tags     []string
}

type Entertainment interface {
	Joke(ctx context.Context) (*Content, error)
	Quote(ctx context.Context) (*Content, error)
}

type Summary struct {
	Title     string
	Extract   string
	Thumbnail string
	PageURL   string
	Lang      string
}

type Encyclopedia interface {
	Summary(ctx context.Context, term string) (*Summary, error)
}

type Video struct {
	VideoID      string
	Title        string
	Description  string
	Thumbnail    string
	ChannelTitle string
	PublishedAt  string
}

type VideoSearch interface {
	Search(ctx context.Context, query string, limit int) ([]Video, error)
}

type Chat interface {
	Reply(ctx context.Context, message string) (string, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET request and decodes the JSON response body into out.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
