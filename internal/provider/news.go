package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// NewsAPI serves top headlines from newsapi.org.
type NewsAPI struct {
	client *http.Client
	apiKey string
}

func NewNewsAPI(apiKey string, timeout time.Duration) *NewsAPI {
	return &NewsAPI{client: newHTTPClient(timeout), apiKey: apiKey}
}

func (p *NewsAPI) TopHeadlines(ctx context.Context, category string, limit int) ([]Article, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	if category == "" {
		category = "general"
	}

	endpoint := fmt.Sprintf("https://newsapi.org/v2/top-headlines?country=us&category=%s&pageSize=%d&apiKey=%s",
		category, limit, p.apiKey)

	var body struct {
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			URLToImage  string `json:"urlToImage"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}

	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return nil, fmt.Errorf("fetching headlines: %w", err)
	}

	articles := make([]Article, 0, len(body.Articles))

	for _, a := range body.Articles {
		// Headlines without a title or description render as empty cards.
		if a.Title == "" || a.Description == "" {
			continue
		}

		articles = append(articles, Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
		})
	}

	return articles, nil
}
