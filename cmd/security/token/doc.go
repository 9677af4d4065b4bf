// Package token issues and verifies the bearer tokens handed out at login.
//
// Tokens are compact JWTs signed with HMAC-SHA-384 over a process-wide shared
// secret. Claims carry the account identity (user id, username, email) plus
// issued-at/expiry timestamps; there is no server-side session state and no
// revocation list — a token is valid iff its signature checks out and it has
// not expired.
//
// Verify is a pure function of (token, secret, now) and is safe for
// unbounded concurrent use.
package token
