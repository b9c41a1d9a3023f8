package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/mission-control/internal/app"
	"github.com/ziadkadry99/mission-control/internal/nav"
	"github.com/ziadkadry99/mission-control/internal/session"
)

// Event types sent by the page.
const (
	eventToggleTheme = "toggle_theme"
	eventLogin       = "login"
	eventEdit        = "edit"
	eventLogout      = "logout"
	eventSelect      = "select"
)

// event is the incoming WebSocket message format.
type event struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// message is the outgoing WebSocket message format.
type message struct {
	Type    string     `json:"type"` // "render" or "error"
	State   *app.State `json:"state,omitempty"`
	HTML    string     `json:"html,omitempty"`
	Content string     `json:"content,omitempty"`
}

// handleWebSocket runs one mount for the lifetime of the connection. The
// read loop is the mount's only event source, so events apply in order.
func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id, fresh := clientID(r)
	var header http.Header
	if fresh != nil {
		header = http.Header{"Set-Cookie": {fresh.String()}}
	}

	conn, err := d.upgrader.Upgrade(w, r, header)
	if err != nil {
		d.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	m := d.factory.Mount(id)
	log := d.logger.With(
		zap.String("client_id", id),
		zap.String("mount_id", uuid.NewString()),
	)
	log.Debug("mount opened", zap.Bool("authenticated", m.State().Authenticated))
	defer log.Debug("mount closed")

	if !d.sendRender(conn, m, log) {
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var ev event
		if err := json.Unmarshal(msg, &ev); err != nil {
			d.sendError(conn, "invalid message format", log)
			continue
		}

		if err := d.apply(m, ev, log); err != nil {
			d.sendError(conn, err.Error(), log)
			continue
		}

		if !d.sendRender(conn, m, log) {
			return
		}
	}
}

// apply dispatches one event to the mount. A returned error is reported
// to the page and the state is left as it was.
func (d *Dashboard) apply(m *app.Mount, ev event, log *zap.Logger) error {
	switch ev.Type {
	case eventToggleTheme:
		t := m.ToggleTheme()
		log.Debug("theme toggled", zap.Stringer("theme", t))
	case eventLogin:
		if err := m.Login(ev.Value); err != nil {
			if !errors.Is(err, session.ErrInvalidCredential) {
				return err
			}
			// The inline error travels with the next render.
			log.Info("login rejected")
			return nil
		}
		log.Info("client authenticated")
	case eventEdit:
		m.EditPassword()
	case eventLogout:
		m.Logout()
		log.Info("client logged out")
	case eventSelect:
		s, err := nav.ParseSection(ev.Value)
		if err != nil {
			return err
		}
		if err := m.Select(s); err != nil {
			return err
		}
	default:
		return errors.New("unknown message type: " + ev.Type)
	}
	return nil
}

func (d *Dashboard) sendRender(conn *websocket.Conn, m *app.Mount, log *zap.Logger) bool {
	tree := m.Compose(d.data.Snapshot())
	html, err := d.renderer.Fragment(tree)
	if err != nil {
		log.Error("rendering fragment", zap.Error(err))
		d.sendError(conn, "render failed", log)
		return true
	}

	st := m.State()
	if err := conn.WriteJSON(message{Type: "render", State: &st, HTML: html}); err != nil {
		log.Warn("websocket write", zap.Error(err))
		return false
	}
	return true
}

func (d *Dashboard) sendError(conn *websocket.Conn, content string, log *zap.Logger) {
	if err := conn.WriteJSON(message{Type: "error", Content: content}); err != nil {
		log.Warn("websocket write error", zap.Error(err))
	}
}
