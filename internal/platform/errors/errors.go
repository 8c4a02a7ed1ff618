package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNoCurrentJourney = errors.New("no current journey")
	ErrInvalidSlot      = errors.New("slot out of range")
)
