package app

import (
	"fmt"

	"accountd/cmd/security/token"
)

// LoadTokenConfig reads the signing configuration from the environment.
// A missing JWT secret is a startup failure: the process must refuse to run
// rather than issue unverifiable tokens.
func LoadTokenConfig() (token.Config, error) {
	cfg, err := token.FromEnv()
	if err != nil {
		return token.Config{}, fmt.Errorf("token config: %w", err)
	}
	return cfg, nil
}
