package account

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// InMemoryStore is a dev-only fallback when DB is not configured, and the
// test double for the service and HTTP layers. It mirrors PostgresStore
// semantics: monotonic ids, username uniqueness, not-found on keyed misses.
type InMemoryStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]User

	// failWith, when set, makes every call fail. Tests use it to exercise
	// the persistence-error paths.
	failWith error
}

// NewInMemoryStore constructs an empty in-memory Store implementation.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		nextID: 1,
		users:  make(map[int64]User),
	}
}

// FailWith forces every subsequent call to return err (nil restores normal
// operation).
func (s *InMemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *InMemoryStore) List(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryStore) Create(ctx context.Context, in CreateUserInput) (User, error) {
	const op = "account.Create"

	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	if strings.TrimSpace(in.Username) == "" {
		return User{}, OpError{Op: op, Kind: ErrInvalidInput, Msg: "username is required"}
	}
	if in.PasswordHash == "" {
		return User{}, OpError{Op: op, Kind: ErrInvalidInput, Msg: "password hash is required"}
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return User{}, s.failWith
	}

	for _, u := range s.users {
		if u.Username == in.Username {
			return User{}, ConflictError{Op: op, Field: "username"}
		}
	}

	u := User{
		ID:           s.nextID,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		DisplayName:  in.DisplayName,
		Bio:          in.Bio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.nextID++
	s.users[u.ID] = u
	return u, nil
}

func (s *InMemoryStore) Update(ctx context.Context, id int64, in UpdateUserInput) (User, error) {
	const op = "account.Update"

	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	if in.PasswordHash == "" {
		return User{}, OpError{Op: op, Kind: ErrInvalidInput, Msg: "password hash is required"}
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return User{}, s.failWith
	}

	u, ok := s.users[id]
	if !ok {
		return User{}, NotFoundError{Op: op, Resource: "user"}
	}

	if in.Username != nil {
		for _, other := range s.users {
			if other.ID != id && other.Username == *in.Username {
				return User{}, ConflictError{Op: op, Field: "username"}
			}
		}
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.DisplayName != nil {
		u.DisplayName = in.DisplayName
	}
	if in.Bio != nil {
		u.Bio = in.Bio
	}
	u.PasswordHash = in.PasswordHash
	u.UpdatedAt = now

	s.users[id] = u
	return u, nil
}

func (s *InMemoryStore) GetByUsername(ctx context.Context, username string) (User, error) {
	const op = "account.GetByUsername"

	if err := ctx.Err(); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return User{}, s.failWith
	}

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, NotFoundError{Op: op, Resource: "user"}
}
