package password

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used when nothing is configured.
	// Matches the historical deployment value of 10 rounds.
	DefaultCost = bcrypt.DefaultCost

	// CostEnvKey configures the work factor.
	CostEnvKey = "DEFAULT_HASH_COST"

	// maxPasswordBytes is bcrypt's hard input limit.
	maxPasswordBytes = 72
)

// CostFromEnv returns the configured bcrypt cost, clamped to bcrypt's valid
// range. Unset or unparsable values fall back to DefaultCost.
func CostFromEnv() int {
	raw := strings.TrimSpace(os.Getenv(CostEnvKey))
	if raw == "" {
		return DefaultCost
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultCost
	}
	return clampCost(n)
}

// Hash returns a self-contained bcrypt hash of plain. The salt is random, so
// two calls on the same input yield different strings. Fails only when the
// hasher itself cannot run (entropy exhaustion, oversized input).
func Hash(plain string, cost int) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plain), clampCost(cost))
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(out), nil
}

// Verify recomputes plain under the parameters embedded in stored and compares
// in constant time. A mismatch returns (false, nil); an error is returned only
// when stored is not a parseable bcrypt hash.
func Verify(plain, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
}

func clampCost(cost int) int {
	if cost < bcrypt.MinCost {
		return DefaultCost
	}
	if cost > bcrypt.MaxCost {
		return bcrypt.MaxCost
	}
	return cost
}
