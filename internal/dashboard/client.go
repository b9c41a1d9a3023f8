package dashboard

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ClientCookie names the cookie that identifies a client installation.
const ClientCookie = "mc_client"

const clientCookieMaxAge = 365 * 24 * time.Hour

// clientID returns the installation ID carried by r. When the request has
// none, or a malformed one, a new ID is minted and the cookie to set is
// returned alongside it.
func clientID(r *http.Request) (string, *http.Cookie) {
	if c, err := r.Cookie(ClientCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String(), nil
		}
	}

	id := uuid.NewString()
	return id, &http.Cookie{
		Name:     ClientCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(clientCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	}
}

// ensureClient is clientID for plain HTTP handlers: a fresh cookie is
// written to w.
func ensureClient(w http.ResponseWriter, r *http.Request) string {
	id, fresh := clientID(r)
	if fresh != nil {
		http.SetCookie(w, fresh)
	}
	return id
}
