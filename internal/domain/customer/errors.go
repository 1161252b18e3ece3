package customer

import "hotel-registry/internal/pkg/errs"

var (
	ErrIDEmpty      = errs.Validation("customer ID cannot be empty")
	ErrIDInvalid    = errs.Validation("invalid customer ID: expected 4 digits")
	ErrNameEmpty    = errs.Validation("customer name cannot be empty")
	ErrNameInvalid  = errs.Validation("customer name is invalid")
	ErrEmailEmpty   = errs.Validation("customer email cannot be empty")
	ErrEmailInvalid = errs.Validation("customer email is invalid")
	ErrPhoneEmpty   = errs.Validation("customer phone cannot be empty")
	ErrPhoneInvalid = errs.Validation("invalid customer phone: expected 10 digits")

	ErrAlreadyExists = errs.Conflict("customer already exists")
	ErrNotFound      = errs.NotFound("customer does not exist")

	ErrNameUnchanged  = errs.NoOp("name was not updated")
	ErrEmailUnchanged = errs.NoOp("e-mail was not updated")
	ErrPhoneUnchanged = errs.NoOp("phone number was not updated")
)
