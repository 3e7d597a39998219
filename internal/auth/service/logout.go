package service

import "context"

// Logout is stateless and idempotent: no token is validated and nothing is
// revoked. The transport layer clears the client's cookies; the service only
// accounts for the request.
func (s *Service) Logout(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "auth.Logout")
	defer span.End()

	s.metrics.IncLogouts()
}
