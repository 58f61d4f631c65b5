package booking

import (
	"context"

	bookingRepo "poojaconnect/database/repository/booking"
	poojaRepo "poojaconnect/database/repository/pooja"
	priestRepo "poojaconnect/database/repository/priest"
	slotRepo "poojaconnect/database/repository/slot"
	zoneRepo "poojaconnect/database/repository/zone"
	"poojaconnect/models"
)

// BookingService is the booking-assignment engine plus the booking CRUD the
// API layer needs.
type BookingService interface {
	// CreateBooking runs the assignment algorithm and persists the booking.
	// The returned string is the user-facing message (confirmed vs deferred).
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, string, error)
	// GetBookingDetail returns a booking with its resolved pooja and zone.
	GetBookingDetail(ctx context.Context, id string) (*models.BookingDetail, error)
	// ListBookings returns all bookings, newest first.
	ListBookings(ctx context.Context) ([]models.Booking, error)
	// UpdateBooking applies an administrative status/assignment update.
	UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Poojas   poojaRepo.PoojaRepository
	Zones    zoneRepo.ZoneRepository
	Priests  priestRepo.PriestRepository
	Slots    slotRepo.SlotRepository
	Bookings bookingRepo.BookingRepository
}
