package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ExchangeRateAPI serves currency rates from exchangerate-api.com's free
// endpoint. No API key required.
type ExchangeRateAPI struct {
	client *http.Client
}

func NewExchangeRateAPI(timeout time.Duration) *ExchangeRateAPI {
	return &ExchangeRateAPI{client: newHTTPClient(timeout)}
}

func (p *ExchangeRateAPI) Rate(ctx context.Context, base, target string) (float64, string, error) {
	endpoint := "https://api.exchangerate-api.com/v4/latest/" + base

	var body struct {
		Date  string             `json:"date"`
		Rates map[string]float64 `json:"rates"`
	}

	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return 0, "", fmt.Errorf("fetching rates: %w", err)
	}

	rate, ok := body.Rates[target]
	if !ok {
		return 0, "", fmt.Errorf("no rate for %s to %s", base, target)
	}

	return rate, body.Date, nil
}
