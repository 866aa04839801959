package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Hotel / room errors
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation conflict")
	ErrInvalidStayDates    = errors.New("invalid stay dates")
	ErrCapacityExceeded    = errors.New("capacity exceeded")

	// Review errors
	ErrReviewNotFound = errors.New("review not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
