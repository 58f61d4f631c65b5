package booking

import "errors"

// Client-input errors: nothing is persisted and no slot is touched when one
// of these is returned.
var (
	ErrPoojaNotFound   = errors.New("pooja not found")
	ErrZoneNotFound    = errors.New("zone not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidTime     = errors.New("invalid booking time")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

// User-facing outcome messages. Confirmed and deferred bookings share the
// same HTTP success semantics; only the status field and message differ.
const (
	MsgConfirmed = "Your booking is confirmed. We'll share priest details soon."
	MsgDeferred  = "Your booking request is received. Our team will confirm availability shortly."
)
