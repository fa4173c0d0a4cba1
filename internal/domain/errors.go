package domain

import "errors"

var (
	ErrSeatNotFound      = errors.New("seat does not exist in the current seat map")
	ErrSeatUnavailable   = errors.New("seat is not available")
	ErrSelectionNotFound = errors.New("no active selection for this session")
	ErrHoldExpired       = errors.New("seat hold has expired, please select your seats again")
	ErrEmptySelection    = errors.New("at least one seat must be selected")
	ErrEmptySeatMap      = errors.New("no seats found for screen")
)
