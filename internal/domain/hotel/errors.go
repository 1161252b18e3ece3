package hotel

import "hotel-registry/internal/pkg/errs"

var (
	ErrNameEmpty         = errs.Validation("hotel name cannot be empty")
	ErrLocationEmpty     = errs.Validation("location name cannot be empty")
	ErrLocationInvalid   = errs.Validation("location name is invalid")
	ErrRoomNumberInvalid = errs.Validation("invalid room number: expected 3 digits")
	ErrRoomStatusInvalid = errs.Validation("invalid room status")
	ErrRoomTypeInvalid   = errs.Validation("invalid room type")

	ErrAlreadyExists = errs.Conflict("hotel already exists")
	ErrNotFound      = errs.NotFound("hotel does not exist")

	ErrRoomAlreadyExists = errs.Conflict("room already exists")
	ErrRoomNotFound      = errs.NotFound("room does not exist")
	ErrRoomNotAvailable  = errs.Conflict("room is not available")
	ErrRoomNotReserved   = errs.Conflict("room is already available")

	ErrLocationUnchanged = errs.NoOp("location was not updated")
)
