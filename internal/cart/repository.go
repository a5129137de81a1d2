package cart

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

// Repository is the persistence capability handed to the HTTP layer, so the
// cookie-session backing can be swapped for server-side storage later.
type Repository interface {
	Load(r *http.Request) (*Cart, error)
	Save(w http.ResponseWriter, r *http.Request, c *Cart) error
}

const sessionName = "cart-session"

// SessionRepository persists the cart as JSON inside a cookie session. The
// cart is written on every mutation and rebuilt from the cookie on load.
type SessionRepository struct {
	Store *sessions.CookieStore
}

func NewSessionRepository(store *sessions.CookieStore) *SessionRepository {
	return &SessionRepository{Store: store}
}

func (sr *SessionRepository) Load(r *http.Request) (*Cart, error) {
	session, err := sr.Store.Get(r, sessionName)
	if err != nil {
		// A tampered or stale cookie decodes to a fresh session; start empty.
		slog.Warn("Cart session could not be decoded, starting fresh", "error", err)
		return &Cart{}, nil
	}
	raw, ok := session.Values["cart"].(string)
	if !ok || raw == "" {
		return &Cart{}, nil
	}
	c, err := Decode(raw)
	if err != nil {
		slog.Warn("Stored cart is not valid JSON, starting fresh", "error", err)
		return &Cart{}, nil
	}
	return c, nil
}

func (sr *SessionRepository) Save(w http.ResponseWriter, r *http.Request, c *Cart) error {
	session, _ := sr.Store.Get(r, sessionName)
	raw, err := c.Encode()
	if err != nil {
		return err
	}
	session.Values["cart"] = raw
	return session.Save(r, w)
}
