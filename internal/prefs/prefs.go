// Package prefs persists the two per-client flags the dashboard needs:
// the theme choice and the authentication marker.
package prefs

import (
	"context"
	"errors"
)

// Fixed preference keys. They match the browser storage keys used by the
// first version of the dashboard so exported data stays readable.
const (
	KeyTheme = "mc_theme"
	KeyAuth  = "mc_auth"
)

// AuthMarker is the stored value meaning "authenticated".
const AuthMarker = "1"

// ErrStorageUnavailable wraps every failure of a Backend.
var ErrStorageUnavailable = errors.New("preference storage unavailable")

// Backend is a durable key/value mechanism partitioned by client ID.
type Backend interface {
	Get(ctx context.Context, clientID, key string) (string, bool, error)
	Set(ctx context.Context, clientID, key, value string) error
	Remove(ctx context.Context, clientID, key string) error
	List(ctx context.Context, clientID string) (map[string]string, error)
	Clear(ctx context.Context, clientID string) error
}
