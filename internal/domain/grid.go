package domain

import (
	"fmt"
	"sort"
)

// SeatCell is a render-ready unit of the seat map: a single seat, or two
// couple seats merged into one atomic cell.
type SeatCell struct {
	Seats []Seat
}

func (c SeatCell) Paired() bool {
	return len(c.Seats) == 2
}

// Label formats the cell for display: "A12" for a single seat, "A12-13" for a
// couple pair. A pair label always carries both column numbers.
func (c SeatCell) Label() string {
	if c.Paired() {
		return fmt.Sprintf("%s%d-%d", c.Seats[0].Row, c.Seats[0].Col, c.Seats[1].Col)
	}

	return fmt.Sprintf("%s%d", c.Seats[0].Row, c.Seats[0].Col)
}

// Available reports whether every seat in the cell can still be sold.
func (c SeatCell) Available() bool {
	for _, seat := range c.Seats {
		if !seat.Available {
			return false
		}
	}

	return true
}

type SeatRow struct {
	Row   string
	Cells []SeatCell
}

// SeatGrid is the seat map of one screen: rows sorted lexicographically, seats
// within a row sorted by column, couple seats paired into cells. The grid is
// the single source of truth for pairing; the selection state machine consults
// it instead of re-deriving partners from the flat list.
type SeatGrid struct {
	Rows []SeatRow

	// Malformed lists seat codes that failed the row+column parse. Such seats
	// are excluded from the grid rather than rendered at row ""/column 0.
	Malformed []string

	seats    map[int]Seat
	partners map[int]int
}

// BuildGrid assembles a seat grid from the flat inventory list. Inactive seats
// are not rendered. Two couple seats that follow each other in a row's sorted
// order are merged into one paired cell; a trailing unpaired couple seat stays
// a single cell and is sellable on its own.
func BuildGrid(seats []Seat) *SeatGrid {
	grid := &SeatGrid{
		seats:    make(map[int]Seat),
		partners: make(map[int]int),
	}

	rows := make(map[string][]Seat)

	for _, seat := range seats {
		if !seat.Active {
			continue
		}

		row, col, ok := ParseSeatCode(seat.Code)
		if !ok {
			grid.Malformed = append(grid.Malformed, seat.Code)
			continue
		}

		seat.Row = row
		seat.Col = col
		rows[row] = append(rows[row], seat)
	}

	rowLetters := make([]string, 0, len(rows))
	for row := range rows {
		rowLetters = append(rowLetters, row)
	}
	sort.Strings(rowLetters)

	for _, row := range rowLetters {
		rowSeats := rows[row]
		sort.Slice(rowSeats, func(i, j int) bool {
			return rowSeats[i].Col < rowSeats[j].Col
		})

		seatRow := SeatRow{Row: row}

		for i := 0; i < len(rowSeats); {
			seat := rowSeats[i]
			grid.seats[seat.ID] = seat

			if seat.Type.Kind == Couple && i+1 < len(rowSeats) && rowSeats[i+1].Type.Kind == Couple {
				partner := rowSeats[i+1]
				grid.seats[partner.ID] = partner
				grid.partners[seat.ID] = partner.ID
				grid.partners[partner.ID] = seat.ID

				seatRow.Cells = append(seatRow.Cells, SeatCell{Seats: []Seat{seat, partner}})
				i += 2
				continue
			}

			seatRow.Cells = append(seatRow.Cells, SeatCell{Seats: []Seat{seat}})
			i++
		}

		grid.Rows = append(grid.Rows, seatRow)
	}

	return grid
}

func (g *SeatGrid) Seat(id int) (Seat, bool) {
	seat, ok := g.seats[id]
	return seat, ok
}

// Partner returns the other half of a couple pair, if the seat has one.
func (g *SeatGrid) Partner(id int) (Seat, bool) {
	partnerID, ok := g.partners[id]
	if !ok {
		return Seat{}, false
	}

	return g.seats[partnerID], true
}

// SeatCount reports the number of seats placed on the grid, excluding seats
// dropped as inactive or malformed.
func (g *SeatGrid) SeatCount() int {
	return len(g.seats)
}
