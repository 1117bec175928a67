// Package password hashes and verifies account passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/unidict-shared/pkg/types"
)

// DefaultCost is used when Hash is given a cost of 0.
const DefaultCost = bcrypt.DefaultCost

// Hash returns the bcrypt hash of password. A cost of 0 means DefaultCost.
// Passwords longer than types.MaxHashablePasswordLen bytes are rejected
// with a *types.ValidationError.
func Hash(password string, cost int) (string, error) {
	if len(password) > types.MaxHashablePasswordLen {
		return "", types.NewValidationError("password", "too long")
	}
	if cost == 0 {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Compare checks password against hash. A wrong password returns an error
// wrapping types.ErrUnauthorized; a malformed hash returns any other error.
func Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fmt.Errorf("password: %w", types.ErrUnauthorized)
	}
	return fmt.Errorf("password: compare: %w", err)
}

// NeedsRehash reports whether hash was made with a cost below cost, or
// cannot be read at all.
func NeedsRehash(hash string, cost int) bool {
	if cost == 0 {
		cost = DefaultCost
	}
	got, err := bcrypt.Cost([]byte(hash))
	return err != nil || got < cost
}
