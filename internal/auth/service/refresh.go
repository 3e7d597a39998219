package service

import (
	"context"

	"classroom/internal/auth/token"
)

// Refresh validates the presented refresh token and mints a brand-new pair
// for its subject. Rotation is unconditional and nothing is invalidated
// server-side: the old refresh token stays valid until its own expiry.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (token.Pair, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Refresh")
	defer span.End()

	// An absent token arrives here as the empty string and fails validation
	// like any other bad token; the client sees one invalid_token kind.
	claims, err := s.tokens.Validate(refreshToken, token.UseRefresh)
	if err != nil {
		s.metrics.IncRefreshes("failure")
		return token.Pair{}, err
	}

	pair, err := s.tokens.Pair(claims.Subject)
	if err != nil {
		s.metrics.IncRefreshes("error")
		s.logger.ErrorContext(ctx, "token pair minting failed", "error", err)
		return token.Pair{}, ensureInternal(err)
	}

	s.metrics.IncRefreshes("success")
	s.emit(ctx, "auth.refresh", claims.Subject, "success")
	return pair, nil
}
