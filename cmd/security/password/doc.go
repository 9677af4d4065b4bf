// Package password is the single source of truth for credential hashing.
//
// It wraps bcrypt behind a small surface:
//   - Hash: salted, self-contained hash strings (cost embedded)
//   - Verify: constant-time comparison, mismatch is not an error
//   - CostFromEnv: work factor configuration with a safe default
//
// Other packages must not call bcrypt directly; policy (cost bounds,
// byte-length limits) lives here.
package password
