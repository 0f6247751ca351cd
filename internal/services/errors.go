package services

import "errors"

// Sentinel errors the handler layer maps onto the HTTP taxonomy.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidJobType     = errors.New("invalid job type")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrSlotTaken          = errors.New("time slot already booked")
	ErrAlreadyCancelled   = errors.New("meeting already cancelled")
	ErrAlreadyCompleted   = errors.New("meeting already completed")
	ErrMissingReason      = errors.New("cancellation reason is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin with this username or email already exists")
)
