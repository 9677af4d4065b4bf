package token

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// SecretEnvKey is the env var holding the HMAC signing secret.
	// #nosec G101 -- not a credential; it's an environment variable name.
	SecretEnvKey = "JWT_SECRET"

	// TTLEnvKey is the env var holding the token lifetime as a Go duration.
	TTLEnvKey = "JWT_EXPIRES"

	// DefaultTTL applies when JWT_EXPIRES is unset.
	DefaultTTL = time.Hour
)

// Config bundles the signing secret and token lifetime.
type Config struct {
	Secret []byte
	TTL    time.Duration
}

// FromEnv loads token configuration. A missing or empty JWT_SECRET yields
// ErrSecretMissing; startup must fail rather than serve unsigned identity.
func FromEnv() (Config, error) {
	secret := strings.TrimSpace(os.Getenv(SecretEnvKey))
	if secret == "" {
		return Config{}, fmt.Errorf("%s: %w", SecretEnvKey, ErrSecretMissing)
	}

	ttl := DefaultTTL
	if raw := strings.TrimSpace(os.Getenv(TTLEnvKey)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%s: invalid duration %q", TTLEnvKey, raw)
		}
		ttl = d
	}

	return Config{Secret: []byte(secret), TTL: ttl}, nil
}
