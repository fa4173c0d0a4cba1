package app

import (
	"fmt"
	"net/http"

	"github.com/phihocnguyen/movie-ticket-booking-sub000/api"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) GetSeatMapByScreen(
	w http.ResponseWriter,
	r *http.Request,
	screenID int) {

	logger := app.contextGetLogger(r)

	if screenID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("screen ID must be greater than zero"))
		return
	}

	seats, err := app.inventory.SeatsByScreen(r.Context(), screenID)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	grid := domain.BuildGrid(seats)

	if len(grid.Malformed) > 0 {
		logger.Warn("excluded seats with malformed codes from seat map",
			"screen_id", screenID, "seat_codes", grid.Malformed)
	}

	if grid.SeatCount() == 0 {
		logger.Warn("seat map not found for screen", "screen_id", screenID)
		app.notFoundResponse(w, r)
		return
	}

	basePrice := domain.ParseBasePrice(r.URL.Query().Get("basePrice"))

	resp := api.SeatMapResponse{
		ScreenId: screenID,
		SeatRows: toSeatRows(grid, basePrice),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatRows(grid *domain.SeatGrid, basePrice decimal.Decimal) []api.SeatRow {
	seatRows := make([]api.SeatRow, len(grid.Rows))

	for i, row := range grid.Rows {
		seatRow := api.SeatRow{Row: row.Row}

		for _, cell := range row.Cells {
			seatRow.Cells = append(seatRow.Cells, toSeatCell(cell, basePrice))
		}

		seatRows[i] = seatRow
	}

	return seatRows
}

func toSeatCell(cell domain.SeatCell, basePrice decimal.Decimal) api.SeatCell {
	apiCell := api.SeatCell{
		Label:     cell.Label(),
		Type:      api.SeatType(cell.Seats[0].Type.Kind.String()),
		Available: cell.Available(),
	}

	for _, seat := range cell.Seats {
		price := domain.SeatPrice(basePrice, seat.Type)
		apiCell.Price += price

		apiCell.Seats = append(apiCell.Seats, api.Seat{
			Id:        seat.ID,
			Code:      seat.Code,
			Row:       seat.Row,
			Column:    seat.Col,
			Type:      api.SeatType(seat.Type.Kind.String()),
			TypeLabel: seat.Type.Kind.Label(),
			Price:     price,
			Available: seat.Available,
		})
	}

	return apiCell
}
