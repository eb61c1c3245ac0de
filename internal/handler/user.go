package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/inkwell/inkwell/internal/handler/dto"
	"github.com/inkwell/inkwell/internal/service"
)

// UserSignup defines the account operations the user handler needs.
type UserSignup interface {
	Signup(ctx context.Context, input service.SignupInput) (string, error)
	Signin(ctx context.Context, input service.SigninInput) (string, error)
}

// UserHandler handles signup and signin requests.
type UserHandler struct {
	svc    UserSignup
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc UserSignup, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Signup handles POST /api/v1/user/signup.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Presence is the only input validation on this path.
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := h.svc.Signup(r.Context(), service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingSecret):
			h.logger.Error("signing secret missing", "endpoint", "signup")
			writeError(w, http.StatusInternalServerError, "Server misconfigured")
		case errors.Is(err, service.ErrEmailTaken):
			// The wire contract answers 400 here, not 409.
			writeError(w, http.StatusBadRequest, "User already exists")
		default:
			h.logger.Error("signup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to sign up")
		}
		return
	}

	h.logger.Info("user_signed_up", "email", req.Email)

	writeJSON(w, http.StatusOK, dto.TokenResponse{JWT: token})
}

// Signin handles POST /api/v1/user/signin.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusForbidden, "user not found")
		return
	}

	token, err := h.svc.Signin(r.Context(), service.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// 403 with this exact body is the signin-miss contract.
			writeError(w, http.StatusForbidden, "user not found")
			return
		}
		h.logger.Error("signin failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	h.logger.Info("user_signed_in", "email", req.Email)

	writeJSON(w, http.StatusOK, dto.TokenResponse{JWT: token})
}
