// Package session implements the passphrase gate in front of the
// dashboard.
//
// The gate is a convenience lock for a prototype, not a security
// boundary: the secret is compared as-is and the authenticated flag is a
// stored marker that never expires.
package session

import (
	"crypto/subtle"
	"errors"

	"github.com/ziadkadry99/mission-control/internal/nav"
	"github.com/ziadkadry99/mission-control/internal/prefs"
)

// ErrInvalidCredential is returned when the candidate does not match.
var ErrInvalidCredential = errors.New("invalid credential")

// State of the gate.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Gate decides which top-level view is reachable. The navigation state is
// owned by the authenticated session and discarded on logout.
type Gate struct {
	store  *prefs.Store
	secret []byte
	state  State
	nav    *nav.State
}

// NewGate returns an unauthenticated gate. Call Initialize before use.
func NewGate(store *prefs.Store, secret string) *Gate {
	return &Gate{store: store, secret: []byte(secret)}
}

// Initialize restores the state from the stored auth flag.
func (g *Gate) Initialize() {
	if v, ok := g.store.Get(prefs.KeyAuth); ok && v == prefs.AuthMarker {
		g.enter()
		return
	}
	g.leave()
}

// State returns the current state.
func (g *Gate) State() State { return g.state }

// Authenticated reports whether the dashboard is reachable.
func (g *Gate) Authenticated() bool { return g.state == Authenticated }

// AttemptLogin compares candidate byte for byte with the configured
// secret. On success the flag is persisted; on failure the state is left
// untouched and ErrInvalidCredential is returned.
func (g *Gate) AttemptLogin(candidate string) error {
	if len(g.secret) == 0 || subtle.ConstantTimeCompare([]byte(candidate), g.secret) != 1 {
		return ErrInvalidCredential
	}
	g.store.Set(prefs.KeyAuth, prefs.AuthMarker)
	if g.state != Authenticated {
		g.enter()
	}
	return nil
}

// Logout clears the stored flag and drops the navigation state.
func (g *Gate) Logout() {
	g.store.Remove(prefs.KeyAuth)
	g.leave()
}

// Navigation returns the session's navigation state, present only while
// authenticated.
func (g *Gate) Navigation() (*nav.State, bool) {
	return g.nav, g.nav != nil
}

func (g *Gate) enter() {
	g.state = Authenticated
	g.nav = nav.New()
}

func (g *Gate) leave() {
	g.state = Unauthenticated
	g.nav = nil
}
