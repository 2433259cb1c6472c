package task

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jarvish-app/jarvish/internal/auth"
	"github.com/jarvish-app/jarvish/internal/http/respond"
	walletapi "github.com/jarvish-app/jarvish/internal/http/wallet"
	"github.com/jarvish-app/jarvish/internal/settlement"
	"github.com/jarvish-app/jarvish/internal/task"
	"github.com/jarvish-app/jarvish/internal/wallet"
)

type Handler struct {
	settler *settlement.Service
	tasks   *task.Service
	wallet  *wallet.Service
}

func NewHandler(settler *settlement.Service, tasks *task.Service, wallet *wallet.Service) *Handler {
	return &Handler{settler: settler, tasks: tasks, wallet: wallet}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/confirm", h.confirm)
	r.Post("/cancel", h.cancel)
}

type confirmRequest struct {
	TaskID    task.Ref `json:"taskId"`
	AutoTopUp bool     `json:"autoTopUp"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := auth.UserID(r.Context())

	conf, err := h.settler.Confirm(r.Context(), userID, req.TaskID, req.AutoTopUp)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, wallet.ErrInsufficientFunds):
			respond.JSON(w, http.StatusBadRequest, map[string]any{
				"message": "Insufficient funds. Enable auto top-up or add funds manually.",
				"success": false,
			})
		case errors.Is(err, settlement.ErrNotPayable):
			respond.Error(w, http.StatusBadRequest, "Task is not payable")
		case errors.Is(err, settlement.ErrNotConfirmable):
			respond.Error(w, http.StatusBadRequest, "Task cannot be confirmed in its current status")
		default:
			respond.Error(w, http.StatusInternalServerError, "Failed to confirm task")
		}

		return
	}

	transactions, err := h.wallet.Transactions(r.Context(), userID, 5)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to confirm task")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message":          conf.Message,
		"task":             conf.Task.Payload,
		"transaction":      walletapi.ToTransaction(conf.Transaction),
		"topUpTransaction": walletapi.ToTransaction(conf.TopUp),
		"autoTopUpApplied": conf.AutoTopUpApplied,
		"success":          true,
		"wallet": walletapi.WalletResponse{
			Balance:      conf.Balance.InexactFloat64(),
			Transactions: walletapi.ToTransactions(transactions),
		},
	})
}

type cancelRequest struct {
	TaskID task.Ref `json:"taskId"`
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := auth.UserID(r.Context())

	t, msg, err := h.settler.Cancel(r.Context(), userID, req.TaskID)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Task not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "Failed to cancel task")

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": msg,
		"task":    t.Payload,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to list tasks")
		return
	}

	payloads := make([]task.Payload, len(tasks))
	for i, t := range tasks {
		payloads[i] = t.Payload
	}

	respond.JSON(w, http.StatusOK, map[string]any{"tasks": payloads})
}
