// Package account owns the user-account domain: the User record, the
// persistence boundary (Store), and the Service that orchestrates credential
// hashing, persistence, and token issuance.
//
// The Service is stateless; the only shared mutable resource is the injected
// store, so every operation is safe under unbounded concurrent invocation.
// Plaintext passwords exist only inside a single call: they are hashed before
// anything is persisted and are never logged or returned.
package account
