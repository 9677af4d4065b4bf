package token

import "errors"

// Sentinel error kinds (stable for errors.Is and for mapping to API status codes).
var (
	// ErrSecretMissing reports an absent or empty signing secret. Callers
	// treat this as a fatal configuration error, never a per-request failure.
	ErrSecretMissing = errors.New("signing secret missing")

	// ErrMalformed reports a token that cannot be parsed at all.
	ErrMalformed = errors.New("token malformed")

	// ErrBadSignature reports a token whose signature does not verify under
	// the configured secret (tampering, corruption, or wrong key).
	ErrBadSignature = errors.New("token signature invalid")

	// ErrExpired reports a structurally valid, correctly signed token whose
	// expiry has passed.
	ErrExpired = errors.New("token expired")
)
