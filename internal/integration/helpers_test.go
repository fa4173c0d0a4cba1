package integration_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func (app *TestApp) doRequest(method, url string, body io.Reader, cookies []http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, c := range cookies {
		req.AddCookie(&c)
	}

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec
}

// guestSessionCookies issues a first request so the guest-session middleware
// commits a session into Redis, and returns the session cookie it set.
func (app *TestApp) guestSessionCookies(t testing.TB) []http.Cookie {
	t.Helper()

	rec := app.doRequest(http.MethodGet, "/health", nil, nil)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_id" {
			return []http.Cookie{*c}
		}
	}

	t.Fatal("no session cookie issued")
	return nil
}
