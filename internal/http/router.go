// Package httpapi assembles the HTTP surface: public auth routes, the
// token-guarded resource routes, and the operational endpoints.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "classroom/internal/auth/handler"
	"classroom/internal/course"
	"classroom/internal/discipline"
	"classroom/internal/platform/middleware"
)

// Deps carries everything the router mounts.
type Deps struct {
	Auth        *authhandler.Handler
	Courses     *course.Handler
	Disciplines *discipline.Handler
	Validator   middleware.TokenValidator
	Registry    *prometheus.Registry
	Logger      *slog.Logger
}

// NewRouter wires all endpoints. The auth routes are public; the resource
// routes require a valid access token.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	d.Auth.Register(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(d.Validator, d.Logger))
		r.Route("/courses", d.Courses.Register)
		r.Route("/disciplines", d.Disciplines.Register)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	return r
}
