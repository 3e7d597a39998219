package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"classroom/internal/auth/token"
	dErrors "classroom/pkg/domain-errors"
	"classroom/pkg/platform/httputil"
	"classroom/pkg/requestcontext"
)

// TokenValidator is the slice of the token codec the guard needs.
type TokenValidator interface {
	Validate(tokenString string, expected token.Use) (*token.Claims, error)
}

// RequireAuth guards a route subtree with the access token. The token is
// read from the access_token cookie, with an Authorization bearer header as
// fallback for non-browser clients. On success the subject is placed in the
// request context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			presented := ""
			if c, err := r.Cookie("access_token"); err == nil {
				presented = c.Value
			} else if after, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
				presented = after
			}

			claims, err := validator.Validate(presented, token.UseAccess)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized request",
					"request_id", requestcontext.RequestID(ctx),
					"path", r.URL.Path,
					"error", err,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidToken, "missing or invalid access token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithSubject(ctx, claims.Subject)))
		})
	}
}
