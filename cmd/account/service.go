package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"accountd/cmd/security/password"
	"accountd/cmd/security/token"
)

// Service orchestrates the account operations: create/update (hash then
// persist) and login (fetch, verify, issue). It holds no mutable state of its
// own.
type Service struct {
	store    Store
	hashCost int
	tokenCfg token.Config

	// dummyHash is verified against when a login names an unknown user, so
	// the miss costs the same bcrypt work as a wrong password.
	dummyHash string
}

// NewService wires a Service. hashCost is clamped by the password package;
// tokenCfg must carry a non-empty secret (enforced at startup, not here).
func NewService(store Store, hashCost int, tokenCfg token.Config) *Service {
	s := &Service{
		store:    store,
		hashCost: hashCost,
		tokenCfg: tokenCfg,
	}
	if hash, err := password.Hash("dummy-password-for-timing-only", hashCost); err == nil {
		s.dummyHash = hash
	}
	return s
}

// CreateAccountInput is a new account with its plaintext password. The
// plaintext never leaves the Create call.
type CreateAccountInput struct {
	Username string
	Email    string
	Password string

	DisplayName *string
	Bio         *string
}

// UpdateAccountInput is a partial update plus the plaintext password, which is
// always re-hashed.
type UpdateAccountInput struct {
	Username *string
	Email    *string
	Password string

	DisplayName *string
	Bio         *string
}

// LoginResult is a successful authentication: the signed bearer token and the
// account it authenticates.
type LoginResult struct {
	Token string
	User  User
}

// List returns all account rows. Store failures surface as PersistenceError.
func (s *Service) List(ctx context.Context) ([]User, error) {
	const op = "account.Service.List"

	users, err := s.store.List(ctx)
	if err != nil {
		return nil, PersistenceError{Op: op, Err: err}
	}
	return users, nil
}

// Create hashes the password and persists a new row. Nothing is persisted when
// hashing fails.
func (s *Service) Create(ctx context.Context, in CreateAccountInput) (User, error) {
	const op = "account.Service.Create"

	if strings.TrimSpace(in.Username) == "" {
		return User{}, OpError{Op: op, Kind: ErrInvalidInput, Msg: "username is required"}
	}
	if in.Password == "" {
		return User{}, OpError{Op: op, Kind: ErrInvalidInput, Msg: "password is required"}
	}

	hash, err := password.Hash(in.Password, s.hashCost)
	if err != nil {
		return User{}, OpError{Op: op, Kind: ErrInternal, Msg: "hashing failed"}
	}

	u, err := s.store.Create(ctx, CreateUserInput{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		DisplayName:  in.DisplayName,
		Bio:          in.Bio,
		Now:          time.Now().UTC(),
	})
	if err != nil {
		return User{}, PersistenceError{Op: op, Err: err}
	}
	return u, nil
}

// Update re-hashes the password and applies a keyed partial update.
func (s *Service) Update(ctx context.Context, id int64, in UpdateAccountInput) (User, error) {
	const op = "account.Service.Update"

	if in.Password == "" {
		return User{}, OpError{Op: op, Kind: ErrInvalidInput, Msg: "password is required"}
	}

	hash, err := password.Hash(in.Password, s.hashCost)
	if err != nil {
		return User{}, OpError{Op: op, Kind: ErrInternal, Msg: "hashing failed"}
	}

	u, err := s.store.Update(ctx, id, UpdateUserInput{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		DisplayName:  in.DisplayName,
		Bio:          in.Bio,
		Now:          time.Now().UTC(),
	})
	if err != nil {
		return User{}, PersistenceError{Op: op, Err: err}
	}
	return u, nil
}

// Login authenticates username+password and issues a bearer token.
//
// An unknown username and a wrong password both come back as
// ErrInvalidCredentials, with a dummy hash verification on the miss so the two
// take comparable time. A store lookup *failure* is not a credential problem
// and surfaces as ErrInternal.
func (s *Service) Login(ctx context.Context, username, plaintext string) (LoginResult, error) {
	const op = "account.Service.Login"

	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if IsNotFound(err) {
			if s.dummyHash != "" {
				_, _ = password.Verify(plaintext, s.dummyHash)
			}
			return LoginResult{}, OpError{Op: op, Kind: ErrInvalidCredentials}
		}
		return LoginResult{}, OpError{Op: op, Kind: ErrInternal, Msg: fmt.Sprintf("lookup failed: %v", err)}
	}

	ok, err := password.Verify(plaintext, u.PasswordHash)
	if err != nil {
		// Stored hash is unreadable; that is corruption, not bad credentials.
		return LoginResult{}, OpError{Op: op, Kind: ErrInternal, Msg: "stored hash malformed"}
	}
	if !ok {
		return LoginResult{}, OpError{Op: op, Kind: ErrInvalidCredentials}
	}

	signed, err := token.Issue(s.tokenCfg.Secret, u.ID, u.Username, u.Email, s.tokenCfg.TTL, time.Now())
	if err != nil {
		return LoginResult{}, OpError{Op: op, Kind: ErrInternal, Msg: "token issuance failed"}
	}

	return LoginResult{Token: signed, User: u}, nil
}
