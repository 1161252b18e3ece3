package reservation

import "hotel-registry/internal/pkg/errs"

var (
	ErrIDEmpty   = errs.Validation("reservation ID cannot be empty")
	ErrIDInvalid = errs.Validation("invalid reservation ID: expected 6 digits")

	ErrAlreadyExists   = errs.Conflict("reservation already created")
	ErrNotFound        = errs.NotFound("reservation does not exist")
	ErrLedgerEmpty     = errs.NotFound("no active reservations")
	ErrRoomUnavailable = errs.Conflict("room not available for reservation")
	ErrRoomNotHeld     = errs.Conflict("reserved room is no longer held")
)
