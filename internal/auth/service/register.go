package service

import (
	"context"

	"github.com/google/uuid"

	"classroom/internal/auth/models"
)

// Register hashes the secret and persists the user. A taken email surfaces
// as conflict; everything else from the store is internal.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) error {
	ctx, span := s.tracer.Start(ctx, "auth.Register")
	defer span.End()

	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "password hashing failed", "error", err)
		return err
	}

	u := models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		Surname:      req.Surname,
		Patronymic:   req.Patronymic,
		Role:         req.Role,
		PasswordHash: []byte(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "could not persist user", "error", err)
		return err
	}

	s.metrics.IncRegistrations()
	s.emit(ctx, "auth.register", req.Email, "success")
	s.logger.InfoContext(ctx, "user registered", "role", req.Role)
	return nil
}
