// Package password hashes and verifies member passwords with bcrypt.
package password

import (
	"errors"

	internal_errors "github.com/tglkwon/api.board.aquaco.work/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for stored member passwords.
const DefaultCost = 11

type Hasher struct {
	cost  int
	dummy []byte
}

// New returns a Hasher with the given bcrypt cost. Costs outside bcrypt's
// range fall back to DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	// hash for unknown ids, so a miss costs the same as a wrong password
	dummy, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), cost)
	if err != nil {
		panic("bcrypt: " + err.Error())
	}
	return &Hasher{cost: cost, dummy: dummy}
}

// Hash returns an encoded bcrypt hash with a fresh salt.
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", internal_errors.Validation("Password is too long")
		}
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash. Malformed hashes never match.
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// VerifyDummy spends one comparison against a throwaway hash and always
// reports false.
func (h *Hasher) VerifyDummy(plain string) bool {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
	return false
}
