package message

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jarvish-app/jarvish/internal/auth"
	"github.com/jarvish-app/jarvish/internal/http/respond"
	"github.com/jarvish-app/jarvish/internal/message"
)

type Handler struct {
	svc *message.Service
}

func NewHandler(svc *message.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type messageResponse struct {
	ID        int64        `json:"id"`
	Content   string       `json:"content"`
	Type      message.Role `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0

	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	history, err := h.svc.History(r.Context(), auth.UserID(r.Context()), limit)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	out := make([]messageResponse, len(history))
	for i, m := range history {
		out[i] = messageResponse{
			ID:        m.ID,
			Content:   m.Content,
			Type:      m.Type,
			CreatedAt: m.CreatedAt,
		}
	}

	respond.JSON(w, http.StatusOK, map[string]any{"messages": out})
}
