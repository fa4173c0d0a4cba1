package mocks

import (
	"context"

	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/domain"
)

type MockInventory struct {
	SeatsByScreenFunc func(ctx context.Context, screenID int) ([]domain.Seat, error)
}

func (m *MockInventory) SeatsByScreen(ctx context.Context, screenID int) ([]domain.Seat, error) {
	return m.SeatsByScreenFunc(ctx, screenID)
}
