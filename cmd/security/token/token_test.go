package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret-0123456789abcdef")

func TestIssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	signed, err := Issue(testSecret, 42, "alice", "a@x.com", time.Hour, now)
	require.NoError(t, err)

	claims, err := Verify(testSecret, signed, now)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestIssueIncludesTimestamp(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a, err := Issue(testSecret, 1, "alice", "a@x.com", time.Hour, t0)
	require.NoError(t, err)
	b, err := Issue(testSecret, 1, "alice", "a@x.com", time.Hour, t0)
	require.NoError(t, err)
	c, err := Issue(testSecret, 1, "alice", "a@x.com", time.Hour, t0.Add(time.Second))
	require.NoError(t, err)

	assert.Equal(t, a, b, "same identity and instant must sign identically")
	assert.NotEqual(t, a, c, "a later instant must change the token")
}

func TestIssueRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := Issue(nil, 1, "alice", "a@x.com", time.Hour, time.Time{})
	require.ErrorIs(t, err, ErrSecretMissing)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 10 * time.Minute

	signed, err := Issue(testSecret, 7, "bob", "b@x.com", ttl, issuedAt)
	require.NoError(t, err)

	_, err = Verify(testSecret, signed, issuedAt.Add(ttl-time.Second))
	require.NoError(t, err, "one second before expiry must verify")

	_, err = Verify(testSecret, signed, issuedAt.Add(ttl+time.Second))
	require.ErrorIs(t, err, ErrExpired, "one second past expiry must fail as expired")
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	signed, err := Issue(testSecret, 7, "bob", "b@x.com", time.Hour, now)
	require.NoError(t, err)

	_, err = Verify([]byte("a-different-secret-entirely-xxxxx"), signed, now)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyTamperedToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	signed, err := Issue(testSecret, 7, "bob", "b@x.com", time.Hour, now)
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = Verify(testSecret, tampered, now)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "not-a-jwt", "a.b", "....."} {
		_, err := Verify(testSecret, tok, time.Time{})
		assert.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("missing secret is fatal", func(t *testing.T) {
		t.Setenv(SecretEnvKey, "")
		_, err := FromEnv()
		require.ErrorIs(t, err, ErrSecretMissing)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(SecretEnvKey, "s3cret")
		t.Setenv(TTLEnvKey, "")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, []byte("s3cret"), cfg.Secret)
		assert.Equal(t, DefaultTTL, cfg.TTL)
	})

	t.Run("explicit ttl", func(t *testing.T) {
		t.Setenv(SecretEnvKey, "s3cret")
		t.Setenv(TTLEnvKey, "90m")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, cfg.TTL)
	})

	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv(SecretEnvKey, "s3cret")
		t.Setenv(TTLEnvKey, "soon")
		_, err := FromEnv()
		require.Error(t, err)
	})
}
