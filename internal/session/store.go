// Package session owns the persisted bearer token that identifies the
// current session. The token is opaque; nothing in the client inspects it.
package session

// Store holds at most one bearer token. Its presence is the sole signal the
// API client uses to decide whether to attach an Authorization header, and
// the sole signal bootstrap uses to decide whether to call the backend at
// all. No expiry is enforced client-side; expiry is discovered when the
// server rejects a request.
type Store interface {
	// Get returns the stored token, or ok=false when no session exists.
	Get() (token string, ok bool)
	// Set replaces the stored token.
	Set(token string) error
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}
