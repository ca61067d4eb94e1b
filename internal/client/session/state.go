// Package session owns the client's in-memory authentication state. The
// Manager is the single writer; every other component reads immutable
// snapshots or subscribes to transitions.
package session

import "github.com/dberezin/bankcli/internal/client/models"

// Phase names a position in the session lifecycle.
type Phase string

const (
	// PhaseUnknown: startup restoration has not resolved yet.
	PhaseUnknown Phase = "unknown"
	// PhaseAnonymous: no credential, nobody logged in.
	PhaseAnonymous Phase = "anonymous"
	// PhasePendingProfile: credential present, profile fetch not yet landed.
	PhasePendingProfile Phase = "pending-profile"
	// PhaseAuthenticated: credential and profile both present.
	PhaseAuthenticated Phase = "authenticated"
)

// State is a snapshot of the session.
//
// Invariant: Authenticated implies a credential exists in the store; the
// converse need not hold transiently while a fetch is in flight. Loading is
// true only during startup restoration, never for per-action spinners.
type State struct {
	Authenticated bool
	User          *models.UserProfile
	Loading       bool
}

// Phase derives the lifecycle position from the snapshot fields.
func (s State) Phase() Phase {
	switch {
	case s.Loading && !s.Authenticated:
		return PhaseUnknown
	case !s.Authenticated:
		return PhaseAnonymous
	case s.User == nil:
		return PhasePendingProfile
	default:
		return PhaseAuthenticated
	}
}

// clone returns a deep copy so subscribers cannot mutate shared state.
func (s State) clone() State {
	c := s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	return c
}
