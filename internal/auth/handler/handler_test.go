package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"classroom/internal/auth/handler"
	"classroom/internal/auth/metrics"
	"classroom/internal/auth/password"
	"classroom/internal/auth/service"
	userstore "classroom/internal/auth/store/user"
	"classroom/internal/auth/token"
	"classroom/internal/platform/audit"
)

// HandlerSuite drives the auth endpoints end to end over httptest with real
// components behind them: in-memory user store, real bcrypt, real JWT codec.
type HandlerSuite struct {
	suite.Suite

	router chi.Router
	codec  *token.Codec
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hasher, err := password.New(bcrypt.MinCost)
	s.Require().NoError(err)

	s.codec = token.NewCodec("handler-suite-secret", 15*time.Minute, 30*24*time.Hour)

	svc := service.New(
		userstore.NewInMemoryStore(),
		s.codec,
		hasher,
		logger,
		metrics.New(prometheus.NewRegistry()),
		audit.Nop{},
	)

	s.router = chi.NewRouter()
	handler.New(svc, logger).Register(s.router)
}

func (s *HandlerSuite) post(path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(http.MethodPost, path, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) register(email, pass string) {
	rec := s.post("/register", map[string]string{
		"email":    email,
		"name":     "Ivan",
		"surname":  "Petrov",
		"role":     "teacher",
		"password": pass,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
}

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func (s *HandlerSuite) TestRegisterReturnsEmptyCreated() {
	rec := s.post("/register", map[string]string{
		"email":    "a@b.c",
		"name":     "Ivan",
		"surname":  "Petrov",
		"role":     "student",
		"password": "secret",
	})
	s.Equal(http.StatusCreated, rec.Code)
	s.Empty(rec.Body.String())
	s.Empty(rec.Result().Cookies())
}

func (s *HandlerSuite) TestRegisterDuplicateEmailConflicts() {
	s.register("a@b.c", "secret")
	rec := s.post("/register", map[string]string{
		"email":    "a@b.c",
		"name":     "Other",
		"surname":  "Person",
		"role":     "student",
		"password": "secret2",
	})
	s.Equal(http.StatusConflict, rec.Code)
	s.JSONEq(`{"error":"conflict"}`, rec.Body.String())
}

func (s *HandlerSuite) TestLoginSetsSessionCookies() {
	s.register("a@b.c", "secret")

	rec := s.post("/login", map[string]string{"email": "a@b.c", "password": "secret"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())

	for _, name := range []string{handler.AccessCookie, handler.RefreshCookie} {
		c := cookieByName(s.T(), rec, name)
		s.True(c.HttpOnly, name)
		s.Equal("/", c.Path, name)
		s.NotEmpty(c.Value, name)
	}

	access := cookieByName(s.T(), rec, handler.AccessCookie)
	claims, err := s.codec.Validate(access.Value, token.UseAccess)
	s.Require().NoError(err)
	s.NotEmpty(claims.Subject)
}

func (s *HandlerSuite) TestLoginWrongPassword() {
	s.register("a@b.c", "secret")

	rec := s.post("/login", map[string]string{"email": "a@b.c", "password": "nope"})
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.JSONEq(`{"error":"wrong_credentials"}`, rec.Body.String())
	s.Empty(rec.Result().Cookies())
}

func (s *HandlerSuite) TestLoginUnknownUser() {
	rec := s.post("/login", map[string]string{"email": "ghost@b.c", "password": "secret"})
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.JSONEq(`{"error":"wrong_credentials"}`, rec.Body.String())
}

func (s *HandlerSuite) TestRefreshWithoutCookie() {
	rec := s.post("/refresh", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.JSONEq(`{"error":"invalid_token"}`, rec.Body.String())
}

func (s *HandlerSuite) TestRefreshRejectsAccessToken() {
	s.register("a@b.c", "secret")
	login := s.post("/login", map[string]string{"email": "a@b.c", "password": "secret"})
	access := cookieByName(s.T(), login, handler.AccessCookie)

	rec := s.post("/refresh", nil, &http.Cookie{Name: handler.RefreshCookie, Value: access.Value})
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.JSONEq(`{"error":"invalid_token"}`, rec.Body.String())
}

func (s *HandlerSuite) TestRefreshRotatesPair() {
	s.register("a@b.c", "secret")
	login := s.post("/login", map[string]string{"email": "a@b.c", "password": "secret"})
	refresh := cookieByName(s.T(), login, handler.RefreshCookie)

	rec := s.post("/refresh", nil, refresh)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())

	newAccess := cookieByName(s.T(), rec, handler.AccessCookie)
	newRefresh := cookieByName(s.T(), rec, handler.RefreshCookie)

	claims, err := s.codec.Validate(newAccess.Value, token.UseAccess)
	s.Require().NoError(err)
	s.NotEmpty(claims.Subject)

	_, err = s.codec.Validate(newRefresh.Value, token.UseRefresh)
	s.NoError(err)
}

func (s *HandlerSuite) TestLogoutExpiresCookies() {
	rec := s.post("/logout", nil)
	s.Equal(http.StatusOK, rec.Code)

	for _, name := range []string{handler.AccessCookie, handler.RefreshCookie} {
		c := cookieByName(s.T(), rec, name)
		s.Empty(c.Value, name)
		s.Equal("/", c.Path, name)
		s.True(c.HttpOnly, name)
		s.True(c.Expires.Before(time.Unix(1, 0)), name)
	}
}

// Logout needs no session. A second call behaves exactly like the first.
func (s *HandlerSuite) TestLogoutIdempotent() {
	first := s.post("/logout", nil)
	second := s.post("/logout", nil)
	s.Equal(http.StatusOK, first.Code)
	s.Equal(http.StatusOK, second.Code)
	s.Len(second.Result().Cookies(), 2)
}

func (s *HandlerSuite) TestMalformedBody() {
	for _, path := range []string{"/register", "/login"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{broken"))
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code, path)
		s.JSONEq(`{"error":"bad_request"}`, rec.Body.String(), path)
	}
}

func (s *HandlerSuite) TestRegisterValidation() {
	cases := map[string]map[string]string{
		"missing email":    {"name": "A", "surname": "B", "role": "student", "password": "x"},
		"missing password": {"email": "a@b.c", "name": "A", "surname": "B", "role": "student"},
		"bad role":         {"email": "a@b.c", "name": "A", "surname": "B", "role": "wizard", "password": "x"},
	}
	for name, body := range cases {
		rec := s.post("/register", body)
		s.Equal(http.StatusBadRequest, rec.Code, name)
	}
}
