package service

import (
	"context"
	"errors"

	"classroom/internal/auth/token"
	dErrors "classroom/pkg/domain-errors"
)

// Login verifies the credentials and mints a fresh token pair keyed on the
// user's email. Unknown identifier and wrong password are deliberately
// indistinguishable: both return wrong_credentials, and the unknown-user
// path burns a dummy hash so its latency matches a real verification.
func (s *Service) Login(ctx context.Context, email, secret string) (token.Pair, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Login")
	defer span.End()

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			s.hasher.Dummy(secret)
			s.metrics.IncLogins("failure")
			s.emit(ctx, "auth.login", email, "failure")
			return token.Pair{}, dErrors.New(dErrors.CodeWrongCredentials, "unknown email or wrong password")
		}
		s.metrics.IncLogins("error")
		s.logger.ErrorContext(ctx, "user lookup failed", "error", err)
		return token.Pair{}, dErrors.Wrap(err, dErrors.CodeInternal, "user lookup failed")
	}

	// A corrupt stored hash verifies as a mismatch; the client learns
	// nothing about storage internals.
	if !s.hasher.Verify(secret, string(u.PasswordHash)) {
		s.metrics.IncLogins("failure")
		s.emit(ctx, "auth.login", email, "failure")
		return token.Pair{}, dErrors.New(dErrors.CodeWrongCredentials, "unknown email or wrong password")
	}

	pair, err := s.tokens.Pair(u.Email)
	if err != nil {
		s.metrics.IncLogins("error")
		s.logger.ErrorContext(ctx, "token pair minting failed", "error", err)
		return token.Pair{}, ensureInternal(err)
	}

	s.metrics.IncLogins("success")
	s.emit(ctx, "auth.login", email, "success")
	s.logger.InfoContext(ctx, "user logged in")
	return pair, nil
}

// ensureInternal collapses unclassified issuer failures to internal while
// keeping already-coded errors intact.
func ensureInternal(err error) error {
	var coded *dErrors.Error
	if errors.As(err, &coded) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "token issuance failed")
}
