package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dberezin/bankcli/internal/client/credentials"
	"github.com/dberezin/bankcli/internal/client/gateway"
	"github.com/dberezin/bankcli/internal/client/models"
	"github.com/dberezin/bankcli/internal/logging"
)

// Manager drives login, registration, logout and profile refresh against the
// gateway, and publishes the resulting SessionState. All mutation funnels
// through its named methods; there is no in-flight request deduplication.
type Manager struct {
	gw    gateway.Client
	creds credentials.Repository
	log   logging.Logger

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

// NewManager returns a Manager in the Unknown phase (loading), waiting for
// Restore to resolve it.
func NewManager(gw gateway.Client, creds credentials.Repository, log logging.Logger) *Manager {
	return &Manager{
		gw:    gw,
		creds: creds,
		log:   log,
		state: State{Loading: true},
		subs:  make(map[int]func(State)),
	}
}

// State returns an immutable snapshot of the current session.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// Subscribe registers fn to be called with a snapshot after every transition.
// The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// set replaces the state and notifies subscribers with snapshots. Callbacks
// run outside the lock so a subscriber may call back into the Manager.
func (m *Manager) set(next State) {
	m.mu.Lock()
	m.state = next
	subs := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(next.clone())
	}
}

// Restore resolves the Unknown startup phase. A stored token moves the
// session to pending-profile and triggers a profile fetch; a rejected fetch
// is treated as an invalid or expired credential, so the store is cleared and
// the session ends Anonymous. This teardown is deliberate and applies to the
// startup path only; compare Login.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.creds.Token(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored credential, starting anonymous", "error", err)
		m.set(State{})
		return nil
	}

	if token == "" {
		m.set(State{})
		return nil
	}

	m.set(State{Authenticated: true, Loading: true})

	profile, err := m.gw.FetchUserDetails(ctx)
	if err != nil {
		m.log.Warn(ctx, "stored credential rejected, logging out", "error", err)
		if clearErr := m.creds.Clear(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to clear credential", "error", clearErr)
		}
		m.set(State{})
		return nil
	}

	m.set(State{Authenticated: true, User: profile})
	m.log.Info(ctx, "session restored", "account", profile.AccountNum)
	return nil
}

// Login authenticates against the gateway, persists the token, and marks the
// session authenticated immediately. The subsequent profile fetch is best
// effort: if it fails the user stays logged in with an absent profile and the
// failure is only logged. A transient hiccup right after login must not force
// a re-login loop, unlike the startup path in Restore.
func (m *Manager) Login(ctx context.Context, email, password string) (string, error) {
	token, err := m.gw.Login(ctx, email, password)
	if err != nil {
		return "", err
	}

	if err := m.creds.Save(ctx, token); err != nil {
		return "", fmt.Errorf("failed to persist credential: %w", err)
	}

	m.set(State{Authenticated: true})

	profile, err := m.gw.FetchUserDetails(ctx)
	if err != nil {
		m.log.Warn(ctx, "profile fetch failed after login, staying logged in", "error", err)
		return token, nil
	}

	m.set(State{Authenticated: true, User: profile})
	return token, nil
}

// Register creates a new user. It is a pure pass-through and does not
// establish a session.
func (m *Manager) Register(ctx context.Context, reg models.Registration) error {
	return m.gw.Register(ctx, reg)
}

// Logout clears the credential store and resets the session. No network call.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.creds.Clear(ctx)
	m.set(State{})
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

// RefreshProfile re-fetches the profile of the authenticated user. On failure
// the cached profile and the session are left unchanged.
func (m *Manager) RefreshProfile(ctx context.Context) error {
	profile, err := m.gw.FetchUserDetails(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	authenticated := m.state.Authenticated
	m.mu.Unlock()
	if !authenticated {
		return nil
	}

	m.set(State{Authenticated: true, User: profile})
	return nil
}

// TokenInfo returns display-only claims of the stored token, or ErrNotAToken
// when the slot is empty or the token is not decodable.
func (m *Manager) TokenInfo(ctx context.Context) (*TokenInfo, error) {
	token, err := m.creds.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotAToken
	}
	return InspectToken(token)
}

// UpdateProfile sends a partial update and replaces the cached profile with
// the server's response. The profile is never mutated speculatively.
func (m *Manager) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.UserProfile, error) {
	profile, err := m.gw.UpdateUserDetails(ctx, upd)
	if err != nil {
		return nil, err
	}

	m.set(State{Authenticated: true, User: profile})
	return profile, nil
}
