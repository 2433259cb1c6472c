package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	internalauth "github.com/jarvish-app/jarvish/internal/auth"
	"github.com/jarvish-app/jarvish/internal/http/assistant"
	"github.com/jarvish-app/jarvish/internal/http/auth"
	"github.com/jarvish-app/jarvish/internal/http/message"
	"github.com/jarvish-app/jarvish/internal/http/task"
	"github.com/jarvish-app/jarvish/internal/http/wallet"
)

func New(
	tokens *internalauth.Tokens,
	authV1 *auth.Handler,
	assistantV1 *assistant.Handler,
	tasksV1 *task.Handler,
	walletV1 *wallet.Handler,
	messagesV1 *message.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Use(tokens.Middleware)

		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Route("/assistant", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			assistantV1.Routes(r)
		})

		r.Route("/tasks", func(r chi.Router) {
			tasksV1.Routes(r)
		})

		r.Route("/wallet", func(r chi.Router) {
			walletV1.Routes(r)
		})

		r.Route("/messages", messagesV1.Routes)
	})

	return router
}
