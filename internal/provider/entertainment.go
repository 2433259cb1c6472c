package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// JokesAndQuotes fetches jokes from jokeapi.dev and quotes from quotable.io.
// Both are free APIs with no key.
type JokesAndQuotes struct {
	client *http.Client
}

func NewJokesAndQuotes(timeout time.Duration) *JokesAndQuotes {
	return &JokesAndQuotes{client: newHTTPClient(timeout)}
}

func (p *JokesAndQuotes) Joke(ctx context.Context) (*Content, error) {
	endpoint := "https://v2.jokeapi.dev/joke/Any?blacklistFlags=nsfw,religious,political,racist,sexist,explicit&type=single"

	var body struct {
		Joke     string `json:"joke"`
		Category string `json:"category"`
	}

	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return nil, fmt.Errorf("fetching joke: %w", err)
	}

	if body.Joke == "" {
		return nil, fmt.Errorf("empty joke response")
	}

	category := body.Category
	if category == "" {
		category = "General"
	}

	return &Content{Text: body.Joke, Category: category}, nil
}

func (p *JokesAndQuotes) Quote(ctx context.Context) (*Content, error) {
	endpoint := "https://api.quotable.io/random?minLength=50&maxLength=200"

	var body struct {
		Content string   `json:"content"`
		Author  string   `json:"author"`
		Tags    []string `json:"tags"`
	}

	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return nil, fmt.Errorf("fetching quote: %w", err)
	}

	if body.Content == "" {
		return nil, fmt.Errorf("empty quote response")
	}

	return &Content{Text: body.Content, Author: body.Author, Tags: body.Tags}, nil
}
