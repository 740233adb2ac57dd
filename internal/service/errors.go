package service

import "errors"

var (
	// ErrMissingAddress is returned when the address step is submitted
	// without both a pickup and a drop-off address.
	ErrMissingAddress = errors.New("pickup and drop-off addresses are required")

	// ErrMissingCoordinates is returned when an address has no resolved
	// coordinate. Coordinates are required: fare cannot be computed without
	// them.
	ErrMissingCoordinates = errors.New("pickup and drop-off coordinates are required")

	// ErrInvalidCoordinates is returned when a coordinate is outside the
	// valid latitude/longitude range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInvalidSchedule is returned when the schedule step is submitted
	// without a pickup time.
	ErrInvalidSchedule = errors.New("invalid pickup time")

	// ErrInvalidPassengerType is returned when the passenger category is
	// not one of the known values.
	ErrInvalidPassengerType = errors.New("invalid passenger type")

	// ErrNoDraft is returned when an operation needs a draft but none has
	// been started.
	ErrNoDraft = errors.New("no booking draft in progress")

	// ErrDraftIncomplete is returned on confirmation when required wizard
	// steps have not been completed.
	ErrDraftIncomplete = errors.New("booking draft is incomplete")

	// ErrNotAuthenticated is returned when an operation requires a
	// logged-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSubmissionInProgress is returned when a confirmation is already in
	// flight for the same user.
	ErrSubmissionInProgress = errors.New("booking submission already in progress")

	// ErrInvalidPaymentMethod is returned when the payment method is invalid.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidBookingID is returned when a booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidUserID is returned when a user ID is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrBookingNotOwned is returned when a user addresses someone else's
	// booking.
	ErrBookingNotOwned = errors.New("booking does not belong to user")

	// ErrBookingAlreadyCancelled is returned when cancelling an already
	// cancelled booking.
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")

	// ErrBookingNotCancellable is returned when the booking is in a state
	// that cannot be cancelled.
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled in current state")

	// ErrBookingNotCompletable is returned when the booking is in a state
	// that cannot be completed.
	ErrBookingNotCompletable = errors.New("booking cannot be completed in current state")

	// ErrPlaceNotFound is returned when neither the hospital directory nor
	// the geocoder can resolve a query.
	ErrPlaceNotFound = errors.New("location not found")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid phone or password")
)
