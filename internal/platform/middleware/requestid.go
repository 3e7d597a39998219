// Package middleware holds the HTTP middleware shared across routes.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"classroom/pkg/requestcontext"
)

// RequestIDHeader is echoed back so clients can correlate responses with
// server-side logs.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns every request a correlation ID, honoring one supplied
// by the caller.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
