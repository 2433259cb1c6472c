package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jarvish-app/jarvish/internal/assistant"
	"github.com/jarvish-app/jarvish/internal/auth"
	"github.com/jarvish-app/jarvish/internal/http/respond"
	walletapi "github.com/jarvish-app/jarvish/internal/http/wallet"
	"github.com/jarvish-app/jarvish/internal/task"
	"github.com/jarvish-app/jarvish/internal/wallet"
)

type Handler struct {
	svc    *assistant.Service
	wallet *wallet.Service
}

func NewHandler(svc *assistant.Service, wallet *wallet.Service) *Handler {
	return &Handler{svc: svc, wallet: wallet}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/message", h.message)
	r.Post("/process", h.process)
	r.Post("/food-order", h.foodOrder)
	r.Post("/ticket-booking", h.ticketBooking)
}

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message     string                         `json:"message"`
	Task        task.Payload                   `json:"task"`
	Transaction *walletapi.TransactionResponse `json:"transaction"`
	Wallet      walletapi.WalletResponse       `json:"wallet"`
}

func (h *Handler) message(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respond.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	userID := auth.UserID(r.Context())

	reply, err := h.svc.Process(r.Context(), userID, req.Message)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	balance, err := h.wallet.Balance(r.Context(), userID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	transactions, err := h.wallet.Transactions(r.Context(), userID, 0)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	resp := messageResponse{
		Message:     reply.Message,
		Transaction: walletapi.ToTransaction(reply.Transaction),
		Wallet: walletapi.WalletResponse{
			Balance:      balance.InexactFloat64(),
			Transactions: walletapi.ToTransactions(transactions),
		},
	}

	if reply.Task != nil {
		resp.Task = reply.Task.Payload
	}

	respond.JSON(w, http.StatusOK, resp)
}

type commandRequest struct {
	Command string `json:"command"`
}

func (req commandRequest) validate(w http.ResponseWriter) bool {
	if strings.TrimSpace(req.Command) == "" {
		respond.Error(w, http.StatusBadRequest, "command is required")
		return false
	}

	return true
}

func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !req.validate(w) {
		return
	}

	cmd := assistant.Interpret(req.Command)

	respond.JSON(w, http.StatusOK, map[string]any{
		"message":  "Voice command processed",
		"intent":   cmd.Intent,
		"entities": cmd.Entities,
	})
}

func (h *Handler) foodOrder(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !req.validate(w) {
		return
	}

	order, msg := assistant.FoodOrderOffer(req.Command)

	respond.JSON(w, http.StatusOK, map[string]any{
		"foodOrder": order,
		"message":   msg,
	})
}

func (h *Handler) ticketBooking(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !req.validate(w) {
		return
	}

	booking, msg := assistant.TicketBookingOffer(req.Command)

	respond.JSON(w, http.StatusOK, map[string]any{
		"ticketBooking": booking,
		"message":       msg,
	})
}
