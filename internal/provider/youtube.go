package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// YouTube searches for music videos via the YouTube Data API v3.
type YouTube struct {
	client *http.Client
	apiKey string
}

func NewYouTube(apiKey string, timeout time.Duration) *YouTube {
	return &YouTube{client: newHTTPClient(timeout), apiKey: apiKey}
}

func (p *YouTube) Search(ctx context.Context, query string, limit int) ([]Video, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	// Category 10 restricts results to music.
	endpoint := fmt.Sprintf("https://www.googleapis.com/youtube/v3/search?part=snippet&maxResults=%d&q=%s&type=video&videoCategoryId=10&key=%s",
		limit, url.QueryEscape(query), p.apiKey)

	var body struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title        string `json:"title"`
				Description  string `json:"description"`
				ChannelTitle string `json:"channelTitle"`
				PublishedAt  string `json:"publishedAt"`
				Thumbnails   struct {
					Medium struct {
						URL string `json:"url"`
					} `json:"medium"`
				} `json:"thumbnails"`
			} `json:"snippet"`
		} `json:"items"`
	}

	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return nil, fmt.Errorf("searching videos: %w", err)
	}

	videos := make([]Video, 0, len(body.Items))

	for _, item := range body.Items {
		if item.ID.VideoID == "" {
			continue
		}

		videos = append(videos, Video{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}

	return videos, nil
}
