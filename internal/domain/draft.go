package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShowContext carries the scalar showtime context handed in by the caller of
// the selection flow. The base price arrives pre-parsed (see ParseBasePrice).
type ShowContext struct {
	MovieTitle  string
	TheaterName string
	TheaterID   int
	ShowtimeID  int
	Showtime    string
	Date        string
	ScreenName  string
	BasePrice   decimal.Decimal
}

// DraftSeat is one seat entry of a booking draft. Seats of a couple pair each
// carry the shared pair label, so the label always shows both column numbers.
type DraftSeat struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// BookingDraft is the serialized selection handed to the next step of the
// booking funnel (food selection). It is built exactly once per successful
// continue action and not retained here afterwards.
type BookingDraft struct {
	ID          string
	MovieTitle  string
	TheaterName string
	TheaterID   int
	ShowtimeID  int
	Showtime    string
	Date        string
	Seats       []DraftSeat
}

// NewBookingDraft packages the selected seats with the showtime context.
// Proceeding with an empty selection is a precondition failure, not a draft.
func NewBookingDraft(show ShowContext, seats []SelectedSeat) (BookingDraft, error) {
	if len(seats) == 0 {
		return BookingDraft{}, ErrEmptySelection
	}

	draftSeats := make([]DraftSeat, len(seats))
	for i, seat := range seats {
		draftSeats[i] = DraftSeat{
			ID:    seat.ID,
			Label: seat.Label,
			Price: seat.Price,
		}
	}

	return BookingDraft{
		ID:          uuid.New().String(),
		MovieTitle:  show.MovieTitle,
		TheaterName: show.TheaterName,
		TheaterID:   show.TheaterID,
		ShowtimeID:  show.ShowtimeID,
		Showtime:    show.Showtime,
		Date:        show.Date,
		Seats:       draftSeats,
	}, nil
}

// Encode serializes the draft as URL query parameters with the seat list
// JSON-encoded, the shape the next booking step consumes.
func (d BookingDraft) Encode() (string, error) {
	seats, err := json.Marshal(d.Seats)
	if err != nil {
		return "", fmt.Errorf("failed to encode draft seats: %w", err)
	}

	values := url.Values{}
	values.Set("draftId", d.ID)
	values.Set("movieTitle", d.MovieTitle)
	values.Set("theaterName", d.TheaterName)
	values.Set("theaterId", strconv.Itoa(d.TheaterID))
	values.Set("showtimeId", strconv.Itoa(d.ShowtimeID))
	values.Set("showtime", d.Showtime)
	values.Set("date", d.Date)
	values.Set("seats", string(seats))

	return values.Encode(), nil
}

// DecodeBookingDraft is the receiving side of Encode. Encoding a draft and
// decoding the payload reproduces the same seat triples in the same order.
func DecodeBookingDraft(payload string) (BookingDraft, error) {
	values, err := url.ParseQuery(payload)
	if err != nil {
		return BookingDraft{}, fmt.Errorf("failed to parse draft payload: %w", err)
	}

	var seats []DraftSeat
	if raw := values.Get("seats"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &seats); err != nil {
			return BookingDraft{}, fmt.Errorf("failed to decode draft seats: %w", err)
		}
	}

	theaterID, _ := strconv.Atoi(values.Get("theaterId"))
	showtimeID, _ := strconv.Atoi(values.Get("showtimeId"))

	return BookingDraft{
		ID:          values.Get("draftId"),
		MovieTitle:  values.Get("movieTitle"),
		TheaterName: values.Get("theaterName"),
		TheaterID:   theaterID,
		ShowtimeID:  showtimeID,
		Showtime:    values.Get("showtime"),
		Date:        values.Get("date"),
		Seats:       seats,
	}, nil
}
