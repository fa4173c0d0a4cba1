// Package selection owns the in-memory selection sessions: one per browser
// session token, each bound to a hold-window countdown. Seat-lock arbitration
// across customers stays with the booking backend; this layer only tracks what
// a single session has picked.
package selection

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/domain"
)

type session struct {
	screenID int
	show     domain.ShowContext
	grid     *domain.SeatGrid
	sel      *domain.Selection
	hold     *domain.Countdown
	cancel   context.CancelFunc
	expired  bool
}

// Snapshot is a point-in-time copy of one session's state, safe to read after
// the manager lock is released.
type Snapshot struct {
	ScreenID    int
	Show        domain.ShowContext
	Grid        *domain.SeatGrid
	Seats       []domain.SelectedSeat
	Total       int64
	HoldMinutes int
	HoldSeconds int
	Expired     bool
}

type Manager struct {
	inventory  domain.SeatInventory
	holdWindow time.Duration
	logger     *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

func NewManager(inventory domain.SeatInventory, holdWindow time.Duration, logger *slog.Logger) *Manager {
	if holdWindow <= 0 {
		holdWindow = domain.DefaultHoldWindow
	}

	return &Manager{
		inventory:  inventory,
		holdWindow: holdWindow,
		logger:     logger,
		sessions:   make(map[string]*session),
	}
}

// Start loads the seat inventory for a screen and opens a fresh selection
// session for the given token, replacing any previous one. The inventory load
// uses the caller's context, so an abandoned request cancels its own in-flight
// load instead of applying a stale response later.
func (m *Manager) Start(ctx context.Context, token string, screenID int, show domain.ShowContext) (Snapshot, error) {
	seats, err := m.inventory.SeatsByScreen(ctx, screenID)
	if err != nil {
		return Snapshot{}, err
	}

	grid := domain.BuildGrid(seats)

	if len(grid.Malformed) > 0 {
		m.logger.Warn("excluded seats with malformed codes from seat map",
			"screen_id", screenID, "seat_codes", grid.Malformed)
	}

	if grid.SeatCount() == 0 {
		return Snapshot{}, domain.ErrEmptySeatMap
	}

	hold := domain.NewCountdown(m.holdWindow)
	holdCtx, cancel := context.WithCancel(context.Background())

	sess := &session{
		screenID: screenID,
		show:     show,
		grid:     grid,
		sel:      domain.NewSelection(show.BasePrice, grid),
		hold:     hold,
		cancel:   cancel,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.sessions[token]; ok {
		prev.cancel()
	}
	m.sessions[token] = sess

	go hold.Run(holdCtx, func() {
		m.expire(token, sess)
	})

	return m.snapshot(sess), nil
}

// expire implements the hold-expiry policy: the selection is cleared and the
// session becomes terminal, forcing the client to start over with a fresh
// inventory load.
func (m *Manager) expire(token string, sess *session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessions[token] != sess {
		return
	}

	sess.sel.Clear()
	sess.expired = true

	m.logger.Info("seat hold expired, selection cleared", "screen_id", sess.screenID)
}

// Toggle flips a seat in the session's selection, with couple-pair atomicity
// applied by the selection state machine.
func (m *Manager) Toggle(token string, seatID int) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return Snapshot{}, domain.ErrSelectionNotFound
	}

	if sess.expired {
		return Snapshot{}, domain.ErrHoldExpired
	}

	if err := sess.sel.Toggle(seatID); err != nil {
		return Snapshot{}, err
	}

	return m.snapshot(sess), nil
}

func (m *Manager) Get(token string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return Snapshot{}, domain.ErrSelectionNotFound
	}

	return m.snapshot(sess), nil
}

// Abandon cancels the hold countdown and drops the session.
func (m *Manager) Abandon(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return domain.ErrSelectionNotFound
	}

	sess.cancel()
	delete(m.sessions, token)

	return nil
}

// Draft builds and encodes the booking draft from the session's current
// selection. The session is consumed only once the payload exists, so a failed
// draft leaves the selection intact and the draft is handed off exactly once.
func (m *Manager) Draft(token string) (domain.BookingDraft, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return domain.BookingDraft{}, "", domain.ErrSelectionNotFound
	}

	if sess.expired {
		return domain.BookingDraft{}, "", domain.ErrHoldExpired
	}

	draft, err := domain.NewBookingDraft(sess.show, sess.sel.Seats())
	if err != nil {
		return domain.BookingDraft{}, "", err
	}

	payload, err := draft.Encode()
	if err != nil {
		return domain.BookingDraft{}, "", err
	}

	sess.cancel()
	delete(m.sessions, token)

	return draft, payload, nil
}

// Shutdown cancels every live countdown. Called on server teardown so no
// ticker outlives the process's accept loop.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, sess := range m.sessions {
		sess.cancel()
		delete(m.sessions, token)
	}
}

func (m *Manager) snapshot(sess *session) Snapshot {
	minutes, seconds := sess.hold.Remaining()

	return Snapshot{
		ScreenID:    sess.screenID,
		Show:        sess.show,
		Grid:        sess.grid,
		Seats:       sess.sel.Seats(),
		Total:       sess.sel.Total(),
		HoldMinutes: minutes,
		HoldSeconds: seconds,
		Expired:     sess.expired,
	}
}
