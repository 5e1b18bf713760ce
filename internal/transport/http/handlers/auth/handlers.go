package authhandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/domain/auth"
	"jobboard/internal/domain/employers"
	"jobboard/internal/platform/requestctx"
	"jobboard/internal/transport/http/api"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/signup", h.handleSignup)
		r.Post("/verify-email", h.handleVerifyEmail)
		r.Post("/forgot-password", h.handleForgotPassword)
		r.Post("/reset-password", h.handleResetPassword)
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	result, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var payload employers.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	uid, verifyToken, err := h.Service.Signup(r.Context(), payload)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}

	// The verification link would go out by email; until a mailer is
	// wired up it lands in the server log.
	slog.Info("verification token issued", "uid", uid, "token", verifyToken)

	api.Created(w, map[string]string{"uid": uid}, requestctx.GetRequestID(r.Context()))
}

type tokenRequest struct {
	Token string `json:"token"`
}

func (h *Handler) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var payload tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.VerifyEmail(r.Context(), payload.Token); err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "verified"}, requestctx.GetRequestID(r.Context()))
}

type forgotRequest struct {
	Email string `json:"email"`
}

func (h *Handler) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload forgotRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	token, err := h.Service.RequestPasswordReset(r.Context(), payload.Email)
	if err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	if token != "" {
		slog.Info("password reset token issued", "token", token)
	}

	// Same response whether or not the email exists.
	api.Success(w, map[string]string{"status": "reset_requested"}, requestctx.GetRequestID(r.Context()))
}

type resetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var payload resetRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.ResetPassword(r.Context(), payload.Token, payload.NewPassword); err != nil {
		api.FailErr(w, err, requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "password_reset"}, requestctx.GetRequestID(r.Context()))
}
