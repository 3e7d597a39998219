package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"classroom/internal/auth/token"
	"classroom/internal/platform/middleware"
	"classroom/pkg/requestcontext"
)

func guardedRouter(t *testing.T, codec *token.Codec) (chi.Router, *string) {
	t.Helper()
	var seenSubject string
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(codec, slog.New(slog.NewTextHandler(io.Discard, nil))))
		r.Get("/protected", func(w http.ResponseWriter, req *http.Request) {
			seenSubject = requestcontext.Subject(req.Context())
			w.WriteHeader(http.StatusOK)
		})
	})
	return r, &seenSubject
}

func TestRequireAuthCookie(t *testing.T) {
	codec := token.NewCodec("mw-secret", time.Minute, time.Hour)
	r, subject := guardedRouter(t, codec)

	access, err := codec.AccessToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: access})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-42", *subject)
}

func TestRequireAuthBearerFallback(t *testing.T) {
	codec := token.NewCodec("mw-secret", time.Minute, time.Hour)
	r, subject := guardedRouter(t, codec)

	access, err := codec.AccessToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-42", *subject)
}

func TestRequireAuthRejections(t *testing.T) {
	codec := token.NewCodec("mw-secret", time.Minute, time.Hour)
	other := token.NewCodec("different-secret", time.Minute, time.Hour)
	r, _ := guardedRouter(t, codec)

	refresh, err := codec.RefreshToken("user-42")
	require.NoError(t, err)
	foreign, err := other.AccessToken("user-42")
	require.NoError(t, err)

	cases := map[string]*http.Cookie{
		"no token":          nil,
		"refresh as access": {Name: "access_token", Value: refresh},
		"foreign signature": {Name: "access_token", Value: foreign},
		"garbage token":     {Name: "access_token", Value: "not.a.jwt"},
	}
	for name, cookie := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, name)
		require.JSONEq(t, `{"error":"invalid_token"}`, rec.Body.String(), name)
	}
}
