package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Jarvish"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"jarvish"`
		MaxConns int    `envconfig:"DB_MAX_CONNS" default:"25"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" default:"your-secret-key-change-in-production"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	}

	Provider struct {
		Timeout       time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`
		WeatherAPIKey string        `envconfig:"WEATHER_API_KEY"`
		NewsAPIKey    string        `envconfig:"NEWS_API_KEY"`
		YouTubeAPIKey string        `envconfig:"YOUTUBE_API_KEY"`
		GeminiAPIKey  string        `envconfig:"GEMINI_API_KEY"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
