// Package app is the application root: one Mount per live view of a
// client, holding the theme, the session gate and the login form state.
package app

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/ziadkadry99/mission-control/internal/nav"
	"github.com/ziadkadry99/mission-control/internal/prefs"
	"github.com/ziadkadry99/mission-control/internal/provider"
	"github.com/ziadkadry99/mission-control/internal/session"
	"github.com/ziadkadry99/mission-control/internal/theme"
	"github.com/ziadkadry99/mission-control/internal/view"
)

// ErrNotAuthenticated is returned by Select while the gate is closed.
var ErrNotAuthenticated = errors.New("not authenticated")

// LoginErrorMessage is shown under the passphrase field after a mismatch.
const LoginErrorMessage = "Incorrect password."

// State is a point-in-time copy of a mount's state cells.
type State struct {
	Authenticated bool        `json:"authenticated"`
	Theme         theme.Theme `json:"theme"`
	Section       nav.Section `json:"section,omitempty"`
	LoginError    string      `json:"login_error,omitempty"`
}

// Mount is one mounted view. Its methods are the user events; each one
// holds the mount lock so events apply strictly one after another.
type Mount struct {
	mu         sync.Mutex
	store      *prefs.Store
	root       *theme.Root
	theme      *theme.Controller
	gate       *session.Gate
	loginError string
}

// NewMount wires a mount to store and runs the initialization effects,
// theme first and then the session gate, before any event can reach it.
func NewMount(store *prefs.Store, secret string) *Mount {
	root := &theme.Root{}
	m := &Mount{
		store: store,
		root:  root,
		theme: theme.NewController(store, root),
		gate:  session.NewGate(store, secret),
	}
	m.theme.Initialize()
	m.gate.Initialize()
	return m
}

// ClientID identifies the client installation the mount belongs to.
func (m *Mount) ClientID() string { return m.store.ClientID() }

// ToggleTheme flips the theme.
func (m *Mount) ToggleTheme() theme.Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme.Toggle()
}

// Login submits the passphrase form. On mismatch the inline error is set
// and session.ErrInvalidCredential returned.
func (m *Mount) Login(candidate string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.gate.AttemptLogin(candidate); err != nil {
		m.loginError = LoginErrorMessage
		return err
	}
	m.loginError = ""
	return nil
}

// EditPassword records that the user changed the passphrase input, which
// clears a previously shown error.
func (m *Mount) EditPassword() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loginError = ""
}

// Logout closes the gate and forgets the navigation.
func (m *Mount) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gate.Logout()
	m.loginError = ""
}

// Select changes the active section.
func (m *Mount) Select(s nav.Section) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.gate.Navigation()
	if !ok {
		return ErrNotAuthenticated
	}
	n.Select(s)
	return nil
}

// State returns a copy of the state cells.
func (m *Mount) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

// Compose builds the view tree for the current state.
func (m *Mount) Compose(data *provider.Snapshot) view.Tree {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.stateLocked()
	return view.Compose(view.Input{
		Authenticated: st.Authenticated,
		Theme:         st.Theme,
		Section:       st.Section,
		LoginError:    st.LoginError,
		Data:          data,
	})
}

// DarkApplied reports the document's display-mode flag.
func (m *Mount) DarkApplied() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.root.Dark()
}

func (m *Mount) stateLocked() State {
	st := State{
		Authenticated: m.gate.Authenticated(),
		Theme:         m.theme.Current(),
		LoginError:    m.loginError,
	}
	if n, ok := m.gate.Navigation(); ok {
		st.Section = n.Active()
	}
	return st
}

// Factory creates mounts for client IDs against one backend.
type Factory struct {
	backend prefs.Backend
	secret  string
	logger  *zap.Logger
}

// NewFactory returns a Factory. secret is the configured passphrase.
func NewFactory(backend prefs.Backend, secret string, logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{backend: backend, secret: secret, logger: logger}
}

// Mount creates a fresh, initialized mount for clientID.
func (f *Factory) Mount(clientID string) *Mount {
	return NewMount(prefs.NewStore(f.backend, clientID, f.logger), f.secret)
}
