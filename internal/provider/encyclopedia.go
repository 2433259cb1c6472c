package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const fallbackThumbnail = "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=250"

// Wikipedia fetches page summaries from the Wikipedia REST API.
type Wikipedia struct {
	client *http.Client
}

func NewWikipedia(timeout time.Duration) *Wikipedia {
	return &Wikipedia{client: newHTTPClient(timeout)}
}

func (p *Wikipedia) Summary(ctx context.Context, term string) (*Summary, error) {
	endpoint := "https://en.wikipedia.org/api/rest_v1/page/summary/" + url.PathEscape(term)

	var body struct {
		Title     string `json:"title"`
		Extract   string `json:"extract"`
		Lang      string `json:"lang"`
		Thumbnail struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
		ContentURLs struct {
			Desktop struct {
				Page string `json:"page"`
			} `json:"desktop"`
		} `json:"content_urls"`
	}

	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return nil, fmt.Errorf("fetching summary: %w", err)
	}

	if body.Extract == "" {
		return nil, fmt.Errorf("no article for %q", term)
	}

	summary := &Summary{
		Title:     body.Title,
		Extract:   body.Extract,
		Thumbnail: body.Thumbnail.Source,
		PageURL:   body.ContentURLs.Desktop.Page,
		Lang:      body.Lang,
	}

	if summary.Thumbnail == "" {
		summary.Thumbnail = fallbackThumbnail
	}

	if summary.Lang == "" {
		summary.Lang = "en"
	}

	return summary, nil
}
