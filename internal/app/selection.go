package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/phihocnguyen/movie-ticket-booking-sub000/api"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/domain"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/selection"
)

func (app *Application) CreateSelectionHandler(w http.ResponseWriter, r *http.Request, screenID int) {
	logger := app.contextGetLogger(r)

	if screenID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("screen ID must be greater than zero"))
		return
	}

	var input api.CreateSelectionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	show := domain.ShowContext{
		MovieTitle:  input.MovieTitle,
		TheaterName: input.TheaterName,
		TheaterID:   input.TheaterId,
		ShowtimeID:  input.ShowtimeId,
		Showtime:    input.Showtime,
		Date:        input.Date.Format(time.DateOnly),
		BasePrice:   domain.ParseBasePrice(input.BasePrice),
	}

	if input.ScreenName != nil {
		show.ScreenName = *input.ScreenName
	}

	snap, err := app.selections.Start(r.Context(), app.sessionToken(r), screenID, show)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptySeatMap):
			logger.Warn("seat map not found for screen", "screen_id", screenID)
			app.notFoundResponse(w, r)
		default:
			app.badGatewayResponse(w, r, err)
		}

		return
	}

	resp := toSelectionResponse(snap)
	seatRows := toSeatRows(snap.Grid, snap.Show.BasePrice)
	resp.SeatRows = &seatRows

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSelectionHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := app.selections.Get(app.sessionToken(r))
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	if snap.Expired {
		app.holdExpiredResponse(w, r, domain.ErrHoldExpired)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSelectionResponse(snap), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ToggleSeatHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.ToggleSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	snap, err := app.selections.Toggle(app.sessionToken(r), input.SeatId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelectionNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrHoldExpired):
			app.holdExpiredResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSeatUnavailable):
			logger.Warn("toggle rejected for unavailable seat", "seat_id", input.SeatId)
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toSelectionResponse(snap), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteSelectionHandler(w http.ResponseWriter, r *http.Request) {
	err := app.selections.Abandon(app.sessionToken(r))
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) CreateDraftHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	draft, payload, err := app.selections.Draft(app.sessionToken(r))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelectionNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrHoldExpired):
			app.holdExpiredResponse(w, r, err)
		case errors.Is(err, domain.ErrEmptySelection):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("booking draft created", "draft_id", draft.ID, "seat_count", len(draft.Seats))

	resp := toDraftResponse(draft, payload)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSelectionResponse(snap selection.Snapshot) api.SelectionResponse {
	seats := make([]api.SelectedSeat, len(snap.Seats))

	for i, seat := range snap.Seats {
		seats[i] = api.SelectedSeat{
			Id:     seat.ID,
			Label:  seat.Label,
			Row:    seat.Row,
			Column: seat.Col,
			Type:   api.SeatType(seat.Kind.String()),
			Price:  seat.Price,
		}
	}

	return api.SelectionResponse{
		ScreenId:    snap.ScreenID,
		MovieTitle:  snap.Show.MovieTitle,
		TheaterName: snap.Show.TheaterName,
		ShowtimeId:  snap.Show.ShowtimeID,
		Seats:       seats,
		TotalPrice:  snap.Total,
		Hold: api.HoldTime{
			Minutes: snap.HoldMinutes,
			Seconds: snap.HoldSeconds,
		},
		Expired: snap.Expired,
	}
}

func toDraftResponse(draft domain.BookingDraft, payload string) api.DraftResponse {
	resp := api.DraftResponse{
		DraftId: draft.ID,
		Payload: payload,
	}

	for _, seat := range draft.Seats {
		resp.Seats = append(resp.Seats, api.DraftSeat{
			Id:    seat.ID,
			Label: seat.Label,
			Price: seat.Price,
		})
		resp.TotalPrice += seat.Price
	}

	return resp
}
