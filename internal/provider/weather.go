package provider

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

// OpenWeatherMap serves current conditions from the OpenWeatherMap API.
type OpenWeatherMap struct {
	client *http.Client
	apiKey string
}

func NewOpenWeatherMap(apiKey string, timeout time.Duration) *OpenWeatherMap {
	return &OpenWeatherMap{client: newHTTPClient(timeout), apiKey: apiKey}
}

func (p *OpenWeatherMap) Current(ctx context.Context, location string) (*WeatherReport, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("https://api.openweathermap.org/data/2.5/weather?q=%s&appid=%s&units=metric",
		url.QueryEscape(location), p.apiKey)

	var body struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Visibility int `json:"visibility"`
	}

	if err := getJSON(ctx, p.client, endpoint, &body); err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}

	if len(body.Weather) == 0 {
		return nil, fmt.Errorf("no weather data for %q", location)
	}

	report := &WeatherReport{
		Location:    body.Name,
		Country:     body.Sys.Country,
		Temperature: int(math.Round(body.Main.Temp)),
		FeelsLike:   int(math.Round(body.Main.FeelsLike)),
		Humidity:    body.Main.Humidity,
		Pressure:    body.Main.Pressure,
		Description: body.Weather[0].Description,
		Main:        body.Weather[0].Main,
		Icon:        fmt.Sprintf("https://openweathermap.org/img/wn/%s@2x.png", body.Weather[0].Icon),
		WindSpeed:   body.Wind.Speed,
	}

	if body.Visibility > 0 {
		report.Visibility = fmt.Sprintf("%.1f", float64(body.Visibility)/1000)
	}

	return report, nil
}
