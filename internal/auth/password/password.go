// Package password wraps bcrypt hashing for stored credentials.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	dErrors "classroom/pkg/domain-errors"
)

// DefaultCost is expensive enough to make offline guessing slow without
// stalling interactive logins.
const DefaultCost = bcrypt.DefaultCost

// Hasher hashes and verifies secrets at a fixed cost factor.
type Hasher struct {
	cost int
	fake []byte
}

// New validates the cost factor once so Hash can never fail on it later,
// and precomputes the fake hash Dummy verifies against.
func New(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, dErrors.New(dErrors.CodeInternal, "bcrypt cost out of range")
	}
	fake, err := bcrypt.GenerateFromPassword([]byte("classroom-fake-credential"), cost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not precompute fake hash")
	}
	return &Hasher{cost: cost, fake: fake}, nil
}

// Hash produces a salted bcrypt hash of the secret. The salt and cost are
// embedded in the output, so no extra bookkeeping is stored.
func (h *Hasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeBadRequest, "password is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password")
	}
	return string(hashed), nil
}

// Verify reports whether secret matches the stored hash. A mismatch and a
// corrupt or non-decodable stored hash both come back false; callers treat
// either as a credential failure rather than surfacing hash internals.
func (h *Hasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// Dummy verifies the secret against the precomputed fake hash and discards
// the result. Login runs it when the identifier is unknown so that path does
// the same work as a genuine password mismatch. Verification is used rather
// than hashing because GenerateFromPassword fast-fails on secrets over 72
// bytes while CompareHashAndPassword always pays the full cost.
func (h *Hasher) Dummy(secret string) {
	_ = bcrypt.CompareHashAndPassword(h.fake, []byte(secret))
}
