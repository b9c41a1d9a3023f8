package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ziadkadry99/mission-control/internal/app"
	"github.com/ziadkadry99/mission-control/internal/session"
)

// handleIndex renders a fresh mount, which is exactly what a reload shows.
func (d *Dashboard) handleIndex(w http.ResponseWriter, r *http.Request) {
	m := d.factory.Mount(ensureClient(w, r))
	d.renderPage(w, m, http.StatusOK)
}

// handleLogin is the form fallback for browsers without the live channel.
func (d *Dashboard) handleLogin(w http.ResponseWriter, r *http.Request) {
	m := d.factory.Mount(ensureClient(w, r))

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if err := m.Login(r.PostForm.Get("password")); err != nil {
		if !errors.Is(err, session.ErrInvalidCredential) {
			d.logger.Error("login failed", zap.String("client_id", m.ClientID()), zap.Error(err))
		}
		d.renderPage(w, m, http.StatusUnauthorized)
		return
	}

	d.logger.Info("client authenticated", zap.String("client_id", m.ClientID()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (d *Dashboard) handleLogout(w http.ResponseWriter, r *http.Request) {
	m := d.factory.Mount(ensureClient(w, r))
	m.Logout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (d *Dashboard) handleTheme(w http.ResponseWriter, r *http.Request) {
	m := d.factory.Mount(ensureClient(w, r))
	m.ToggleTheme()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleState reports what a fresh mount for the caller would show.
func (d *Dashboard) handleState(w http.ResponseWriter, r *http.Request) {
	m := d.factory.Mount(ensureClient(w, r))
	writeJSON(w, http.StatusOK, m.State())
}

func (d *Dashboard) renderPage(w http.ResponseWriter, m *app.Mount, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := d.renderer.Page(w, m.Compose(d.data.Snapshot())); err != nil {
		d.logger.Error("rendering page", zap.String("client_id", m.ClientID()), zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
