package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jarvish-app/jarvish/internal/assistant"
	"github.com/jarvish-app/jarvish/internal/auth"
	"github.com/jarvish-app/jarvish/internal/config"
	"github.com/jarvish-app/jarvish/internal/database"
	jarvishHttp "github.com/jarvish-app/jarvish/internal/http"
	assistantHandler "github.com/jarvish-app/jarvish/internal/http/assistant"
	authHandler "github.com/jarvish-app/jarvish/internal/http/auth"
	messageHandler "github.com/jarvish-app/jarvish/internal/http/message"
	taskHandler "github.com/jarvish-app/jarvish/internal/http/task"
	walletHandler "github.com/jarvish-app/jarvish/internal/http/wallet"
	"github.com/jarvish-app/jarvish/internal/message"
	messageStore "github.com/jarvish-app/jarvish/internal/message/store"
	"github.com/jarvish-app/jarvish/internal/paymentmethod"
	paymentMethodStore "github.com/jarvish-app/jarvish/internal/paymentmethod/store"
	"github.com/jarvish-app/jarvish/internal/provider"
	"github.com/jarvish-app/jarvish/internal/settlement"
	"github.com/jarvish-app/jarvish/internal/task"
	taskStore "github.com/jarvish-app/jarvish/internal/task/store"
	"github.com/jarvish-app/jarvish/internal/user"
	userStore "github.com/jarvish-app/jarvish/internal/user/store"
	"github.com/jarvish-app/jarvish/internal/wallet"
	walletStore "github.com/jarvish-app/jarvish/internal/wallet/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		userService          = user.NewService(userStore.New(db))
		walletService        = wallet.NewService(walletStore.New(db))
		taskService          = task.NewService(taskStore.New(db))
		messageService       = message.NewService(messageStore.New(db))
		paymentMethodService = paymentmethod.NewService(paymentMethodStore.New(db))
		settlementService    = settlement.NewService(walletService, taskService, userService)
	)

	timeout := cfg.Provider.Timeout
	providers := assistant.Providers{
		Weather:       provider.NewOpenWeatherMap(cfg.Provider.WeatherAPIKey, timeout),
		News:          provider.NewNewsAPI(cfg.Provider.NewsAPIKey, timeout),
		Dictionary:    provider.NewFreeDictionary(timeout),
		Translator:    provider.NewMyMemory(timeout),
		Exchange:      provider.NewExchangeRateAPI(timeout),
		Entertainment: provider.NewJokesAndQuotes(timeout),
		Encyclopedia:  provider.NewWikipedia(timeout),
		Videos:        provider.NewYouTube(cfg.Provider.YouTubeAPIKey, timeout),
		Chat:          provider.NewGemini(cfg.Provider.GeminiAPIKey, timeout),
	}

	assistantService := assistant.NewService(taskService, settlementService, walletService, messageService, providers)

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var (
		authH      = authHandler.NewHandler(userService, tokens, cfg.Auth.TokenTTL)
		assistantH = assistantHandler.NewHandler(assistantService, walletService)
		taskH      = taskHandler.NewHandler(settlementService, taskService, walletService)
		walletH    = walletHandler.NewHandler(walletService, settlementService, paymentMethodService)
		messageH   = messageHandler.NewHandler(messageService)
	)

	router := jarvishHttp.New(tokens, authH, assistantH, taskH, walletH, messageH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
