package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/mission-control/internal/app"
	"github.com/ziadkadry99/mission-control/internal/provider"
	"github.com/ziadkadry99/mission-control/internal/view"
)

// Dashboard serves the Mission Control page and its live event channel.
type Dashboard struct {
	factory  *app.Factory
	data     provider.Provider
	renderer *view.Renderer
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates a new Dashboard.
func New(factory *app.Factory, data provider.Provider, renderer *view.Renderer, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		factory:  factory,
		data:     data,
		renderer: renderer,
		logger:   logger,
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.handleIndex)
	r.Post("/login", d.handleLogin)
	r.Post("/logout", d.handleLogout)
	r.Post("/theme", d.handleTheme)
	r.Get("/api/state", d.handleState)
	r.Get("/ws", d.handleWebSocket)
}
