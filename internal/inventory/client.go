// Package inventory is the REST client for the booking backend's seat
// inventory endpoint. The backend is an external collaborator; this client
// fetches the flat seat list once per screen context and maps it to the
// domain model.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type seatTypePayload struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	PriceMultiplier float64 `json:"priceMultiplier"`
	IsActive        bool    `json:"isActive"`
}

type seatPayload struct {
	ID          int             `json:"id"`
	SeatCode    string          `json:"seatCode"`
	IsActive    bool            `json:"isActive"`
	IsAvailable bool            `json:"isAvailable"`
	SeatType    seatTypePayload `json:"seatType"`
}

// SeatsByScreen fetches the seat list for one screen. The request is bound to
// ctx so a caller that goes away cancels its own load; a stale response is
// never applied to a newer screen context.
func (c *Client) SeatsByScreen(ctx context.Context, screenID int) ([]domain.Seat, error) {
	url := fmt.Sprintf("%s/screens/%d/seats", c.baseURL, screenID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build seat inventory request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seat inventory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seat inventory returned unexpected status %d", resp.StatusCode)
	}

	var payload []seatPayload

	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode seat inventory response: %w", err)
	}

	seats := make([]domain.Seat, len(payload))
	for i, p := range payload {
		seats[i] = toDomainSeat(p)
	}

	return seats, nil
}

func toDomainSeat(p seatPayload) domain.Seat {
	return domain.Seat{
		ID:        p.ID,
		Code:      p.SeatCode,
		Active:    p.IsActive,
		Available: p.IsAvailable,
		Type: domain.SeatType{
			ID:         p.SeatType.ID,
			Kind:       domain.SeatKindFromName(p.SeatType.Name),
			Multiplier: decimal.NewFromFloat(p.SeatType.PriceMultiplier),
			Active:     p.SeatType.IsActive,
		},
	}
}
