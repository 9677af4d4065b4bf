package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity facts embedded in a signed token.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Issue signs a bearer token for the given identity. Expiry is now+ttl; the
// issued-at claim makes two issuances for the same user at different instants
// distinct. A zero now means time.Now.
func Issue(secret []byte, userID int64, username, email string, ttl time.Duration, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", ErrSecretMissing
	}
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	claims := Claims{
		UserID:   userID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks tokenString's signature against secret and its expiry against
// now, returning the embedded claims. Failures map onto exactly one of
// ErrMalformed, ErrBadSignature, ErrExpired. A zero now means time.Now.
func Verify(secret []byte, tokenString string, now time.Time) (Claims, error) {
	if len(secret) == 0 {
		return Claims{}, ErrSecretMissing
	}
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(_ *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS384.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, classifyParseError(err)
	}
	return claims, nil
}

// classifyParseError collapses jwt/v5's error tree onto the package's three
// verification kinds. Anything that is neither a parse failure nor an expiry
// is treated as a signature problem: an alg-confusion or unverifiable token
// must look exactly like a forged one.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
}
