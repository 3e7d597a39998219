// Package token mints and validates the signed claims tokens that carry a
// session between requests. Access and refresh tokens share one claims shape
// and differ by lifetime and an explicit token_use tag.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	dErrors "classroom/pkg/domain-errors"
)

// Use tags what a token may be presented for. Validation enforces the tag,
// so an access token cannot stand in for a refresh token or vice versa.
type Use string

const (
	UseAccess  Use = "access"
	UseRefresh Use = "refresh"
)

// Leeway tolerated on expiry checks to absorb clock skew between hosts.
const Leeway = 5 * time.Second

// Claims is the payload embedded in every signed token. Subject holds the
// user's stable identifier (email).
type Claims struct {
	TokenUse Use `json:"token_use"`
	jwt.RegisteredClaims
}

// Pair bundles the two tokens issued together on login and refresh.
type Pair struct {
	Access  string
	Refresh string
}

// Codec signs and verifies tokens with a process-wide HS256 secret. The
// secret and lifetimes are fixed at construction and never change while the
// process runs.
type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec builds a codec from the configured secret and lifetimes.
func NewCodec(secret string, accessTTL, refreshTTL time.Duration, opts ...Option) *Codec {
	c := &Codec{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccessToken mints a short-lived token for the subject.
func (c *Codec) AccessToken(subject string) (string, error) {
	return c.mint(subject, UseAccess, c.accessTTL)
}

// RefreshToken mints a long-lived token for the subject.
func (c *Codec) RefreshToken(subject string) (string, error) {
	return c.mint(subject, UseRefresh, c.refreshTTL)
}

// Pair mints an access and a refresh token together. If either signing step
// fails the whole pair fails; callers never see a partial pair.
func (c *Codec) Pair(subject string) (Pair, error) {
	access, err := c.AccessToken(subject)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := c.RefreshToken(subject)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

func (c *Codec) mint(subject string, use Use, ttl time.Duration) (string, error) {
	now := c.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		TokenUse: use,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign token")
	}
	return signed, nil
}

// Validate decodes the token, checks its HS256 signature and expiry (with
// leeway), and enforces the expected token_use tag. Every failure collapses
// to invalid_token: the caller has no use for finer distinctions and the
// client should see none.
func (c *Codec) Validate(tokenString string, expected Use) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (any, error) {
			// WithValidMethods already pins HS256; keep the explicit check so
			// a future option change cannot silently widen the set.
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenUnverifiable
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(Leeway),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidToken, "token has expired")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidToken, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeInvalidToken, "invalid token claims")
	}
	if claims.TokenUse != expected {
		return nil, dErrors.New(dErrors.CodeInvalidToken, "unexpected token use")
	}
	if claims.Subject == "" {
		return nil, dErrors.New(dErrors.CodeInvalidToken, "token has no subject")
	}
	return claims, nil
}
