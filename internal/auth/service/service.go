// Package service orchestrates the register, login, refresh, and logout
// flows. The service is stateless: a client's session lives entirely in the
// token pair it holds, never in server memory.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"classroom/internal/auth/metrics"
	"classroom/internal/auth/models"
	"classroom/internal/auth/token"
	"classroom/internal/platform/audit"
)

// UserStore is the persistence capability consumed by the flows.
type UserStore interface {
	Create(ctx context.Context, u models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// TokenIssuer mints and validates signed token pairs.
type TokenIssuer interface {
	Pair(subject string) (token.Pair, error)
	Validate(tokenString string, expected token.Use) (*token.Claims, error)
}

// Hasher covers the credential hashing capability, including the dummy
// computation used for timing symmetry.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) bool
	Dummy(secret string)
}

// Service adapts the auth flows into a callable façade, keeping transport
// concerns out of business logic.
type Service struct {
	users   UserStore
	tokens  TokenIssuer
	hasher  Hasher
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   audit.Publisher
	tracer  trace.Tracer
}

func New(users UserStore, tokens TokenIssuer, hasher Hasher, logger *slog.Logger, m *metrics.Metrics, publisher audit.Publisher) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		hasher:  hasher,
		logger:  logger,
		metrics: m,
		audit:   publisher,
		tracer:  otel.Tracer("classroom/internal/auth/service"),
	}
}

func (s *Service) emit(ctx context.Context, action, subject, outcome string) {
	e := audit.Event{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Subject:   subject,
		Outcome:   outcome,
	}
	if err := s.audit.Emit(ctx, e); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
}
