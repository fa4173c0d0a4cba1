package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SelectedSeat carries the attributes derived for a seat at the moment it was
// toggled on. Price is cached here but stays re-derivable from the base price
// and the seat type at any time.
type SelectedSeat struct {
	ID    int
	Row   string
	Col   int
	Kind  SeatKind
	Label string
	Price int64
}

// Selection is the set of seats picked for one showtime. It is the only
// writer of its own state; callers serialize access (one logical writer per
// session).
type Selection struct {
	basePrice decimal.Decimal
	grid      *SeatGrid
	chosen    map[int]SelectedSeat
	order     []int
}

func NewSelection(basePrice decimal.Decimal, grid *SeatGrid) *Selection {
	return &Selection{
		basePrice: basePrice,
		grid:      grid,
		chosen:    make(map[int]SelectedSeat),
	}
}

// Toggle flips a seat's membership in the selection. A couple seat and its
// pair partner are always toggled together: selecting either selects both,
// deselecting either removes both. An orphaned couple seat (no partner on the
// grid) toggles alone at its own couple price. Unavailable seats never toggle.
func (s *Selection) Toggle(seatID int) error {
	seat, ok := s.grid.Seat(seatID)
	if !ok {
		return ErrSeatNotFound
	}

	if !seat.Available {
		return ErrSeatUnavailable
	}

	partner, paired := s.grid.Partner(seatID)
	if !paired {
		s.flip(seat, s.label(seat))
		return nil
	}

	if !partner.Available {
		// Half a pair can never be sold, so the whole cell is off limits.
		return ErrSeatUnavailable
	}

	label := s.label(seat)

	_, seatChosen := s.chosen[seat.ID]
	_, partnerChosen := s.chosen[partner.ID]

	if seatChosen || partnerChosen {
		s.remove(seat.ID)
		s.remove(partner.ID)
		return nil
	}

	// Keep grid order within the pair so drafts list the left seat first.
	if partner.Col < seat.Col {
		seat, partner = partner, seat
	}

	s.add(seat, label)
	s.add(partner, label)

	return nil
}

func (s *Selection) flip(seat Seat, label string) {
	if _, ok := s.chosen[seat.ID]; ok {
		s.remove(seat.ID)
		return
	}

	s.add(seat, label)
}

func (s *Selection) add(seat Seat, label string) {
	s.chosen[seat.ID] = SelectedSeat{
		ID:    seat.ID,
		Row:   seat.Row,
		Col:   seat.Col,
		Kind:  seat.Type.Kind,
		Label: label,
		Price: SeatPrice(s.basePrice, seat.Type),
	}
	s.order = append(s.order, seat.ID)
}

func (s *Selection) remove(seatID int) {
	delete(s.chosen, seatID)

	for i, id := range s.order {
		if id == seatID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// label formats the display label for a seat, showing both column numbers when
// the seat belongs to a couple pair.
func (s *Selection) label(seat Seat) string {
	partner, ok := s.grid.Partner(seat.ID)
	if !ok {
		return fmt.Sprintf("%s%d", seat.Row, seat.Col)
	}

	left, right := seat, partner
	if right.Col < left.Col {
		left, right = right, left
	}

	return fmt.Sprintf("%s%d-%d", left.Row, left.Col, right.Col)
}

// Seats returns the selected seats in the order they were toggled on.
func (s *Selection) Seats() []SelectedSeat {
	seats := make([]SelectedSeat, 0, len(s.order))
	for _, id := range s.order {
		seats = append(seats, s.chosen[id])
	}

	return seats
}

func (s *Selection) Contains(seatID int) bool {
	_, ok := s.chosen[seatID]
	return ok
}

func (s *Selection) Empty() bool {
	return len(s.order) == 0
}

// Total sums the cached per-seat prices over exactly the selected set.
func (s *Selection) Total() int64 {
	var total int64
	for _, id := range s.order {
		total += s.chosen[id].Price
	}

	return total
}

// Clear drops every selected seat. Used when the hold window expires.
func (s *Selection) Clear() {
	s.chosen = make(map[int]SelectedSeat)
	s.order = nil
}
