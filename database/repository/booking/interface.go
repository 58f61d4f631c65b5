package bookingRepo

import (
	"context"
	"errors"

	"poojaconnect/models"
)

// ErrNotFound is returned when no booking matches the lookup.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll(ctx context.Context) ([]models.Booking, error)
	// Update applies an administrative update and returns the updated record.
	Update(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error)
}
