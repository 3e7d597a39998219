// Package handler exposes the auth flows over HTTP. Tokens travel only as
// HttpOnly cookies scoped to the site root, never in response bodies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"classroom/internal/auth/models"
	"classroom/internal/auth/token"
	"classroom/pkg/platform/httputil"
	"classroom/pkg/requestcontext"
)

const (
	// AccessCookie and RefreshCookie are the cookie names the client holds
	// its session in.
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// Service defines the auth flow operations the handler delegates to.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, email, secret string) (token.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (token.Pair, error)
	Logout(ctx context.Context)
}

// Handler wires the auth endpoints to the auth service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an auth handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the auth endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)
	r.Post("/refresh", h.HandleRefresh)
	r.Post("/logout", h.HandleLogout)
}

// sessionCookie builds a token-bearing cookie with the fixed attributes
// every session cookie carries.
func sessionCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	}
}

// expiredCookie forces client-side deletion: empty value, expiry in the
// past. Cookies cannot be deleted outright, only outlived.
func expiredCookie(name string) *http.Cookie {
	c := sessionCookie(name, "")
	c.Expires = time.Unix(0, 0)
	return c
}

func setPair(w http.ResponseWriter, pair token.Pair) {
	http.SetCookie(w, sessionCookie(AccessCookie, pair.Access))
	http.SetCookie(w, sessionCookie(RefreshCookie, pair.Refresh))
}

// HandleRegister handles POST /register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signUpRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Register(ctx, req.toModel()); err != nil {
		h.logger.ErrorContext(ctx, "registration failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleLogin handles POST /login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signInRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	pair, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	setPair(w, pair)
	w.WriteHeader(http.StatusOK)
}

// HandleRefresh handles POST /refresh. A missing refresh_token cookie is
// treated exactly like an invalid one.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var presented string
	if c, err := r.Cookie(RefreshCookie); err == nil {
		presented = c.Value
	}

	pair, err := h.service.Refresh(ctx, presented)
	if err != nil {
		h.logger.WarnContext(ctx, "token refresh failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	setPair(w, pair)
	w.WriteHeader(http.StatusOK)
}

// HandleLogout handles POST /logout. Always succeeds, logged in or not.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())

	http.SetCookie(w, expiredCookie(AccessCookie))
	http.SetCookie(w, expiredCookie(RefreshCookie))
	w.WriteHeader(http.StatusOK)
}
