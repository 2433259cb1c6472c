package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// MyMemory translates text via the free MyMemory API. No API key required.
type MyMemory struct {
	client *http.Client
}

func NewMyMemory(timeout time.Duration) *MyMemory {
	return &MyMemory{client: newHTTPClient(timeout)}
}

func (p *MyMemory) Translate(ctx context.Context, text, targetCode string) (string, error) {
	endpoint := fmt.Sprintf("https://api.mymemory.translated.net/get?q=%s&langpair=en|%s",
		url.QueryEscape(text), targetCode)

	var body struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}

	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return "", fmt.Errorf("fetching translation: %w", err)
	}

	if body.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("no translation for %q", text)
	}

	return body.ResponseData.TranslatedText, nil
}
