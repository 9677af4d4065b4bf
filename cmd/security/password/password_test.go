package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt.MinCost keeps the suite fast; production cost is configured via env.
const testCost = bcrypt.MinCost

func TestHashVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, plain := range []string{"hunter2", "", "pässwörd ütf8", strings.Repeat("a", 72)} {
		hash, err := Hash(plain, testCost)
		require.NoError(t, err)
		require.NotEqual(t, plain, hash)

		ok, err := Verify(plain, hash)
		require.NoError(t, err)
		assert.True(t, ok, "plaintext %q must verify against its own hash", plain)

		ok, err = Verify(plain+"x", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	h1, err := Hash("hunter2", testCost)
	require.NoError(t, err)
	h2, err := Hash("hunter2", testCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "same plaintext must produce distinct hashes")
}

func TestHashRejectsOversizedInput(t *testing.T) {
	t.Parallel()

	_, err := Hash(strings.Repeat("a", 73), testCost)
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "not a hash", stored: "plainly-not-bcrypt"},
		{name: "truncated", stored: "$2a$10$abc"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ok, err := Verify("hunter2", tc.stored)
			assert.False(t, ok)
			require.ErrorIs(t, err, ErrInvalidHash)
		})
	}
}

func TestCostFromEnv(t *testing.T) {
	cases := []struct {
		name string
		env  string
		want int
	}{
		{name: "unset", env: "", want: DefaultCost},
		{name: "explicit", env: "12", want: 12},
		{name: "below minimum", env: "1", want: DefaultCost},
		{name: "above maximum", env: "99", want: bcrypt.MaxCost},
		{name: "garbage", env: "ten", want: DefaultCost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.env == "" {
				t.Setenv(CostEnvKey, "")
			} else {
				t.Setenv(CostEnvKey, tc.env)
			}
			assert.Equal(t, tc.want, CostFromEnv())
		})
	}
}
