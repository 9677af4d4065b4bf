package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreAssignsMonotonicIDs(t *testing.T) {
	t.Parallel()

	s := NewInMemoryStore()
	ctx := context.Background()

	a, err := s.Create(ctx, CreateUserInput{Username: "a", PasswordHash: "h"})
	require.NoError(t, err)
	b, err := s.Create(ctx, CreateUserInput{Username: "b", PasswordHash: "h"})
	require.NoError(t, err)

	assert.Equal(t, a.ID+1, b.ID)

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].Username)
	assert.Equal(t, "b", users[1].Username)
}

func TestInMemoryStoreGetByUsername(t *testing.T) {
	t.Parallel()

	s := NewInMemoryStore()
	ctx := context.Background()

	created, err := s.Create(ctx, CreateUserInput{Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := s.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.GetByUsername(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStoreUpdateConflict(t *testing.T) {
	t.Parallel()

	s := NewInMemoryStore()
	ctx := context.Background()

	_, err := s.Create(ctx, CreateUserInput{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	bob, err := s.Create(ctx, CreateUserInput{Username: "bob", PasswordHash: "h"})
	require.NoError(t, err)

	taken := "alice"
	_, err = s.Update(ctx, bob.ID, UpdateUserInput{Username: &taken, PasswordHash: "h2"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestInMemoryStoreContextCancellation(t *testing.T) {
	t.Parallel()

	s := NewInMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
