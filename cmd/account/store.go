package account

import (
	"context"
	"time"
)

// User is the persisted account row. PasswordHash is opaque output of the
// password package; the plaintext it came from is gone by the time a User
// exists.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string

	// Profile fields the core passes through unchanged.
	DisplayName *string
	Bio         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserInput describes a new row. PasswordHash must already be hashed;
// the store never sees plaintext.
type CreateUserInput struct {
	Username string
	Email    string

	PasswordHash string

	DisplayName *string
	Bio         *string

	// Now stamps created_at/updated_at; zero means time.Now.
	Now time.Time
}

// UpdateUserInput is a partial update keyed by user id. Nil pointers leave the
// column untouched; PasswordHash is always replaced (updates re-hash).
type UpdateUserInput struct {
	Username *string
	Email    *string

	PasswordHash string

	DisplayName *string
	Bio         *string

	Now time.Time
}

// Store is the account persistence boundary.
//
// GetByUsername distinguishes zero rows (ErrNotFound) from a failed query
// (any other error); callers depend on that split to map the former to a
// uniform credential failure and the latter to an internal fault.
type Store interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, in CreateUserInput) (User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
