package password

import "errors"

var (
	// ErrInvalidHash reports a stored hash that bcrypt cannot parse
	// (truncated, wrong prefix, unknown version).
	ErrInvalidHash = errors.New("invalid bcrypt hash")

	// ErrPasswordTooLong reports input beyond bcrypt's 72-byte limit.
	// Hashing would silently truncate; we refuse instead.
	ErrPasswordTooLong = errors.New("password too long")
)
