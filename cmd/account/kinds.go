package account

import "errors"

// Sentinel error kinds (stable for errors.Is and for mapping to API status codes).
var (
	ErrInvalidInput = errors.New("invalid_input")
	ErrNotFound     = errors.New("not_found")
	ErrConflict     = errors.New("conflict")

	// ErrInvalidCredentials is the uniform login failure. It deliberately
	// carries no distinction between an unknown username and a wrong
	// password, so responses cannot be used for user enumeration.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrInternal covers hasher, signer, and unexpected faults. Clients see a
	// generic message; detail stays in server logs.
	ErrInternal = errors.New("internal_error")
)
