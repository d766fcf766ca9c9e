package entity

import "errors"

var (
	// Reference data errors
	ErrStationNotFound   = errors.New("station not found")
	ErrTrainNotFound     = errors.New("train not found")
	ErrClassNotAvailable = errors.New("travel class not available on this train")

	// Booking errors
	ErrPNRNotFound       = errors.New("pnr not found")
	ErrInvalidPNR        = errors.New("pnr must be a 10-digit number")
	ErrAlreadyCancelled  = errors.New("booking already cancelled")
	ErrDuplicatePNR      = errors.New("pnr already allocated")
	ErrTooManyPassengers = errors.New("too many passengers for one booking")
	ErrPastDate          = errors.New("journey date cannot be in the past")

	// General errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("booking store unavailable")
)
