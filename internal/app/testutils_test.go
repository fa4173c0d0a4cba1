package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/api"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/domain"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/mocks"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/selection"
	appvalidator "github.com/phihocnguyen/movie-ticket-booking-sub000/internal/validator"
	"github.com/shopspring/decimal"
)

func testInventorySeats() []domain.Seat {
	standard := domain.SeatType{ID: 1, Kind: domain.Standard, Multiplier: decimal.NewFromInt(1), Active: true}
	couple := domain.SeatType{ID: 3, Kind: domain.Couple, Multiplier: decimal.NewFromFloat(1.5), Active: true}

	return []domain.Seat{
		{ID: 1, Code: "A1", Active: true, Available: true, Type: standard},
		{ID: 3, Code: "B5", Active: true, Available: true, Type: couple},
		{ID: 4, Code: "B6", Active: true, Available: true, Type: couple},
		{ID: 6, Code: "C3", Active: true, Available: false, Type: standard},
	}
}

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator:      appvalidator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		inventory: &mocks.MockInventory{
			SeatsByScreenFunc: func(ctx context.Context, screenID int) ([]domain.Seat, error) {
				return testInventorySeats(), nil
			},
		},
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.selections == nil {
		app.selections = selection.NewManager(app.inventory, time.Minute, app.logger)
	}

	return app
}

// newSessionToken mints a committed guest session so multiple requests in a
// test can share it, the way a browser would.
func newSessionToken(t *testing.T, app *Application) string {
	t.Helper()

	ctx, err := app.sessionManager.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyGuest.String(), true)

	token, _, err := app.sessionManager.Commit(ctx)
	if err != nil {
		t.Fatalf("Failed to commit session: %v", err)
	}

	return token
}

func withSession(t *testing.T, app *Application, r *http.Request, token string) *http.Request {
	t.Helper()

	ctx, err := app.sessionManager.Load(r.Context(), token)
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 || wantErrMessage == "" {
		return
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if errorResp.Message != wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
	}
}

func checkValidationError(t *testing.T, w *httptest.ResponseRecorder, wantIssue string) {
	t.Helper()

	var validationResp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
		t.Fatalf("Failed to decode validation error response: %v", err)
	}

	for _, vErr := range validationResp.ValidationErrors {
		if vErr.Issue == wantIssue {
			return
		}
	}

	t.Errorf("Expected validation error message '%s' not found in response", wantIssue)
}
