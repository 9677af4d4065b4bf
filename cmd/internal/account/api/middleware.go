package accountapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"accountd/cmd/security/token"
)

type claimsContextKey struct{}

// ClaimsFromContext returns the verified token claims the guard attached to
// the request.
func ClaimsFromContext(ctx context.Context) (token.Claims, bool) {
	c, ok := ctx.Value(claimsContextKey{}).(token.Claims)
	return c, ok
}

// RequireToken guards a route behind bearer-token verification.
//
// Every failure — missing token, malformed, bad signature, expired — produces
// the same 401 body, so the response is not an oracle for why a token was
// rejected. The precise kind is still logged server-side. (The system this
// replaces answered 500 here; that was a misclassification of a client error
// and is deliberately not preserved.)
func (h *Handler) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			h.auditTokenRejected(r, "missing")
			writeError(w, http.StatusUnauthorized, "invalid_token", "missing or invalid token")
			return
		}

		claims, err := token.Verify(h.secret, raw, time.Now())
		if err != nil {
			h.auditTokenRejected(r, rejectReason(err))
			writeError(w, http.StatusUnauthorized, "invalid_token", "missing or invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the presented token: "Authorization: Bearer <tok>"
// first, then a bare "token" header for callers of the original surface.
func bearerToken(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return strings.TrimSpace(r.Header.Get("token"))
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, token.ErrMalformed):
		return "malformed"
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrBadSignature):
		return "bad_signature"
	default:
		return "invalid"
	}
}
