package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/phihocnguyen/movie-ticket-booking-sub000/api"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/domain"
	"github.com/stretchr/testify/suite"
)

type SelectionLifecycleSuite struct {
	BaseSuite
}

func TestSelectionLifecycleSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(SelectionLifecycleSuite))
}

func createSelectionBody() string {
	return fmt.Sprintf(
		`{"movieTitle":"Dune: Part Two","theaterName":"Galaxy Nguyen Du","theaterId":7,"showtimeId":42,"showtime":"19:30","date":%q,"basePrice":"100000"}`,
		time.Now().AddDate(0, 0, 2).Format(time.DateOnly),
	)
}

func (s *SelectionLifecycleSuite) TestSessionIsStoredInRedis() {
	cookies := s.app.guestSessionCookies(s.T())

	exists, err := s.app.RedisClient.Exists(context.Background(), "scs:session:"+cookies[0].Value).Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists, "the guest session lives in the Redis-backed store")
}

func (s *SelectionLifecycleSuite) TestSelectionLifecycle() {
	cookies := s.app.guestSessionCookies(s.T())

	// Start a selection session; the seat map comes from the fake backend.
	rec := s.app.doRequest(http.MethodPost, "/screens/9/selection", strings.NewReader(createSelectionBody()), cookies)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created api.SelectionResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&created))
	s.Equal(9, created.ScreenId)
	s.Empty(created.Seats)
	s.Require().NotNil(created.SeatRows)
	s.Len(*created.SeatRows, 3)

	// Toggling one half of the couple pair selects both seats.
	rec = s.app.doRequest(http.MethodPost, "/selection/seats", strings.NewReader(`{"seatId":3}`), cookies)
	s.Require().Equal(http.StatusOK, rec.Code)

	var toggled api.SelectionResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&toggled))
	s.Len(toggled.Seats, 2)
	s.Equal(int64(300000), toggled.TotalPrice)

	// The session token carried by the cookie keys the state across requests.
	rec = s.app.doRequest(http.MethodGet, "/selection", nil, cookies)
	s.Require().Equal(http.StatusOK, rec.Code)

	var current api.SelectionResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&current))
	s.Len(current.Seats, 2)

	// A different browser session sees no selection.
	otherCookies := s.app.guestSessionCookies(s.T())
	rec = s.app.doRequest(http.MethodGet, "/selection", nil, otherCookies)
	s.Equal(http.StatusNotFound, rec.Code)

	// The draft consumes the session.
	rec = s.app.doRequest(http.MethodPost, "/selection/draft", nil, cookies)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var draft api.DraftResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&draft))
	s.Equal(int64(300000), draft.TotalPrice)

	decoded, err := domain.DecodeBookingDraft(draft.Payload)
	s.Require().NoError(err)
	s.Len(decoded.Seats, 2)
	s.Equal("Dune: Part Two", decoded.MovieTitle)

	rec = s.app.doRequest(http.MethodGet, "/selection", nil, cookies)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *SelectionLifecycleSuite) TestAbandonSelection() {
	cookies := s.app.guestSessionCookies(s.T())

	rec := s.app.doRequest(http.MethodPost, "/screens/9/selection", strings.NewReader(createSelectionBody()), cookies)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.app.doRequest(http.MethodDelete, "/selection", nil, cookies)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.app.doRequest(http.MethodGet, "/selection", nil, cookies)
	s.Equal(http.StatusNotFound, rec.Code)
}
