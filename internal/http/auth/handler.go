package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jarvish-app/jarvish/internal/auth"
	"github.com/jarvish-app/jarvish/internal/http/respond"
	"github.com/jarvish-app/jarvish/internal/user"
)

type Handler struct {
	svc    *user.Service
	tokens *auth.Tokens
	ttl    time.Duration
}

func NewHandler(svc *user.Service, tokens *auth.Tokens, ttl time.Duration) *Handler {
	return &Handler{svc: svc, tokens: tokens, ttl: ttl}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/signin", h.signin)
	r.Post("/signout", h.signout)
	r.Get("/me", h.me)
}

type userResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (req signupRequest) validate() string {
	switch {
	case len(strings.TrimSpace(req.FirstName)) < 2:
		return "First name must be at least 2 characters"
	case len(strings.TrimSpace(req.LastName)) < 2:
		return "Last name must be at least 2 characters"
	case !strings.Contains(req.Email, "@"):
		return "Invalid email address"
	case len(req.Password) < 6:
		return "Password must be at least 6 characters"
	default:
		return ""
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if msg := req.validate(); msg != "" {
		respond.Error(w, http.StatusBadRequest, msg)
		return
	}

	u, err := h.svc.Signup(r.Context(), user.SignupParams{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			respond.Error(w, http.StatusBadRequest, "Email already registered")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "Registration failed")

		return
	}

	if err := h.startSession(w, u.ID); err != nil {
		respond.Error(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toUserResponse(u),
	})
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.Signin(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, user.ErrBadPassword) {
			respond.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "Sign in failed")

		return
	}

	if err := h.startSession(w, u.ID); err != nil {
		respond.Error(w, http.StatusInternalServerError, "Sign in failed")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toUserResponse(u),
	})
}

func (h *Handler) startSession(w http.ResponseWriter, userID int64) error {
	token, err := h.tokens.Issue(userID)
	if err != nil {
		return err
	}

	auth.SetCookie(w, token, h.ttl)

	return nil
}

func (h *Handler) signout(w http.ResponseWriter, r *http.Request) {
	auth.ClearCookie(w)

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Signed out successfully",
	})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	if !auth.Authenticated(r.Context()) {
		respond.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	u, err := h.svc.Get(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"user": toUserResponse(u)})
}
