// Package credentials persists the bearer token in durable client storage.
// The store is a dumb slot: presence or absence is the only structure it
// knows about. No validation, no expiry tracking.
package credentials

import "context"

// Repository is the single-slot credential store.
//
// Contract:
//   - Save: replace the stored token.
//   - Token: return the stored token, or "" if the slot is empty.
//   - Clear: empty the slot.
type Repository interface {
	Save(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
