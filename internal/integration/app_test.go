package integration_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/app"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/inventory"
	appvalidator "github.com/phihocnguyen/movie-ticket-booking-sub000/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	RedisClient *redis.Client
	Upstream    *httptest.Server
}

// newTestApp wires the application against a real Redis-backed session store
// and an in-process fake of the booking backend's seat inventory endpoint.
func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	upstream := newUpstreamServer()
	inventoryClient := inventory.NewClient(upstream.URL, 5*time.Second)

	application := app.NewApp(
		cfg,
		logger,
		redisClient,
		validator,
		sessionManager,
		inventoryClient,
	)

	return &TestApp{
		App:         application,
		RedisClient: redisClient,
		Upstream:    upstream,
	}, nil
}

// newUpstreamServer serves the booking backend's seat inventory wire format
// for one screen: two standard seats, a couple pair and one sold seat.
func newUpstreamServer() *httptest.Server {
	r := chi.NewRouter()

	r.Get("/screens/{screenId}/seats", func(w http.ResponseWriter, req *http.Request) {
		standard := map[string]any{"id": 1, "name": "Standard", "priceMultiplier": 1.0, "isActive": true}
		couple := map[string]any{"id": 3, "name": "Couple", "priceMultiplier": 1.5, "isActive": true}

		seats := []map[string]any{
			{"id": 1, "seatCode": "A1", "isActive": true, "isAvailable": true, "seatType": standard},
			{"id": 2, "seatCode": "A2", "isActive": true, "isAvailable": true, "seatType": standard},
			{"id": 3, "seatCode": "B5", "isActive": true, "isAvailable": true, "seatType": couple},
			{"id": 4, "seatCode": "B6", "isActive": true, "isAvailable": true, "seatType": couple},
			{"id": 5, "seatCode": "C3", "isActive": true, "isAvailable": false, "seatType": standard},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(seats)
	})

	return httptest.NewServer(r)
}
