package wallet

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jarvish-app/jarvish/internal/auth"
	"github.com/jarvish-app/jarvish/internal/http/respond"
	"github.com/jarvish-app/jarvish/internal/paymentmethod"
	"github.com/jarvish-app/jarvish/internal/settlement"
	"github.com/jarvish-app/jarvish/internal/wallet"
)

type Handler struct {
	svc     *wallet.Service
	settler *settlement.Service
	methods *paymentmethod.Service
}

func NewHandler(svc *wallet.Service, settler *settlement.Service, methods *paymentmethod.Service) *Handler {
	return &Handler{svc: svc, settler: settler, methods: methods}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/update", h.update)
	r.Post("/add-funds", h.addFunds)
	r.Post("/process-payment", h.processPayment)
	r.Get("/payment-methods", h.listPaymentMethods)
	r.Post("/payment-methods", h.addPaymentMethod)
	r.Post("/payment-methods/{id}/default", h.setDefaultPaymentMethod)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	balance, err := h.svc.Balance(r.Context(), userID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to load wallet")
		return
	}

	transactions, err := h.svc.Transactions(r.Context(), userID, 0)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to load wallet")
		return
	}

	respond.JSON(w, http.StatusOK, WalletResponse{
		Balance:      balance.InexactFloat64(),
		Transactions: ToTransactions(transactions),
	})
}

type updateRequest struct {
	Amount float64 `json:"amount"`
}

// update moves the balance by an arbitrary delta. Credits are recorded as
// top-ups, debits as plain balance adjustments.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := auth.UserID(r.Context())
	delta := decimal.NewFromFloat(req.Amount)

	var (
		balance decimal.Decimal
		err     error
	)

	if delta.IsPositive() {
		balance, _, err = h.svc.AddFunds(r.Context(), userID, delta)
	} else {
		balance, _, err = h.svc.Adjust(r.Context(), userID, delta, "Balance Adjustment", wallet.TypePayment)
	}

	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to update wallet")
		return
	}

	transactions, err := h.svc.Transactions(r.Context(), userID, 5)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to update wallet")
		return
	}

	respond.JSON(w, http.StatusOK, WalletResponse{
		Balance:      balance.InexactFloat64(),
		Transactions: ToTransactions(transactions),
	})
}

type addFundsRequest struct {
	Amount float64 `json:"amount"`
}

func (h *Handler) addFunds(w http.ResponseWriter, r *http.Request) {
	var req addFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Amount <= 0 {
		respond.Error(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	userID := auth.UserID(r.Context())

	balance, tx, err := h.svc.AddFunds(r.Context(), userID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to add funds")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"transaction": ToTransaction(tx),
		"balance":     balance.InexactFloat64(),
	})
}

type processPaymentRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	AutoTopUp   bool    `json:"autoTopUp"`
}

func (h *Handler) processPayment(w http.ResponseWriter, r *http.Request) {
	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Amount <= 0 {
		respond.Error(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	if req.Description == "" {
		respond.Error(w, http.StatusBadRequest, "description is required")
		return
	}

	userID := auth.UserID(r.Context())

	payment, err := h.settler.ProcessPayment(r.Context(), userID, decimal.NewFromFloat(req.Amount), req.Description, req.AutoTopUp)
	if err != nil {
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			respond.JSON(w, http.StatusBadRequest, map[string]any{
				"message": "Insufficient funds. Enable auto top-up or add funds manually.",
				"success": false,
			})

			return
		}

		respond.Error(w, http.StatusInternalServerError, "Failed to process payment")

		return
	}

	transactions, err := h.svc.Transactions(r.Context(), userID, 5)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to process payment")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"transaction":      ToTransaction(payment.Transaction),
		"topUpTransaction": ToTransaction(payment.TopUp),
		"balance":          payment.Balance.InexactFloat64(),
		"transactions":     ToTransactions(transactions),
		"autoTopUpApplied": payment.AutoTopUpApplied,
	})
}

type paymentMethodResponse struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	Last4      string `json:"last4"`
	ExpiryDate string `json:"expiryDate"`
	IsDefault  bool   `json:"isDefault"`
}

func toPaymentMethod(pm *paymentmethod.PaymentMethod) paymentMethodResponse {
	return paymentMethodResponse{
		ID:         pm.ID,
		Type:       pm.Type,
		Last4:      pm.Last4,
		ExpiryDate: pm.ExpiryDate,
		IsDefault:  pm.IsDefault,
	}
}

func (h *Handler) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.methods.List(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to list payment methods")
		return
	}

	out := make([]paymentMethodResponse, len(methods))
	for i, pm := range methods {
		out[i] = toPaymentMethod(pm)
	}

	respond.JSON(w, http.StatusOK, map[string]any{"paymentMethods": out})
}

type addPaymentMethodRequest struct {
	Type       string `json:"type"`
	Last4      string `json:"last4"`
	ExpiryDate string `json:"expiryDate"`
	IsDefault  bool   `json:"isDefault"`
}

func (h *Handler) addPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req addPaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Type == "" || len(req.Last4) != 4 {
		respond.Error(w, http.StatusBadRequest, "type and last4 are required")
		return
	}

	pm := &paymentmethod.PaymentMethod{
		UserID:     auth.UserID(r.Context()),
		Type:       req.Type,
		Last4:      req.Last4,
		ExpiryDate: req.ExpiryDate,
		IsDefault:  req.IsDefault,
	}

	if err := h.methods.Add(r.Context(), pm); err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to add payment method")
		return
	}

	respond.JSON(w, http.StatusCreated, toPaymentMethod(pm))
}

func (h *Handler) setDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	pm, err := h.methods.SetDefault(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		if errors.Is(err, paymentmethod.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Payment method not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "Failed to set default payment method")

		return
	}

	respond.JSON(w, http.StatusOK, toPaymentMethod(pm))
}
