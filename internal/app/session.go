package app

import "net/http"

type sessionKey string

const (
	SessionKeyGuest = sessionKey("guest")
)

type contextKey string

const contextKeyLogger = contextKey("logger")

func (s sessionKey) String() string {
	return string(s)
}

// sessionToken returns the scs token identifying the current browser session.
// The ensureGuestSession middleware guarantees one exists.
func (app *Application) sessionToken(r *http.Request) string {
	return app.sessionManager.Token(r.Context())
}
