// Package theme owns the dark/light presentation preference.
package theme

import "github.com/ziadkadry99/mission-control/internal/prefs"

// Theme is one of two mutually exclusive presentation modes.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is used when nothing valid is stored.
const Default = Dark

// Parse reports whether s names a theme.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), true
	}
	return "", false
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string { return string(t) }

// Document receives the presentation side effect of a theme change.
type Document interface {
	SetDarkMode(dark bool)
}

// Root is the root-level display-mode flag consumed by the renderer.
type Root struct {
	dark bool
}

func (r *Root) SetDarkMode(dark bool) { r.dark = dark }

// Dark reports whether the dark mode flag is applied.
func (r *Root) Dark() bool { return r.dark }

// Controller keeps the current theme, the stored preference and the
// document flag equal after every mutation.
type Controller struct {
	store       *prefs.Store
	doc         Document
	current     Theme
	initialized bool
}

// NewController returns a controller in the default state. Call
// Initialize before handling user input.
func NewController(store *prefs.Store, doc Document) *Controller {
	return &Controller{store: store, doc: doc, current: Default}
}

// Initialize loads the stored theme, falling back to Default, and applies
// it. Only the first call has an effect.
func (c *Controller) Initialize() {
	if c.initialized {
		return
	}
	c.initialized = true

	t := Default
	if v, ok := c.store.Get(prefs.KeyTheme); ok {
		if parsed, valid := Parse(v); valid {
			t = parsed
		}
	}
	c.current = t
	c.doc.SetDarkMode(t == Dark)
}

// Current returns the active theme.
func (c *Controller) Current() Theme { return c.current }

// Toggle flips the theme and returns the new value.
func (c *Controller) Toggle() Theme {
	c.Set(c.current.Opposite())
	return c.current
}

// Set applies t, persists it and updates the document in one step.
func (c *Controller) Set(t Theme) {
	if _, ok := Parse(string(t)); !ok {
		t = Default
	}
	c.current = t
	c.store.Set(prefs.KeyTheme, string(t))
	c.doc.SetDarkMode(t == Dark)
}
