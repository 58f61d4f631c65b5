package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	bookingRepo "poojaconnect/database/repository/booking"
	"poojaconnect/models"
	"poojaconnect/utils"
)

// GetBookingDetail returns a booking with its pooja and zone resolved. A
// reference that fails to resolve leaves the field nil rather than failing
// the whole lookup.
func (s *DefaultBookingService) GetBookingDetail(ctx context.Context, id string) (*models.BookingDetail, error) {
	record, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}

	detail := &models.BookingDetail{Booking: *record}
	if pooja, err := s.Poojas.GetByID(ctx, record.PoojaID); err == nil {
		detail.Pooja = pooja
	}
	if zone, err := s.Zones.GetByID(ctx, record.ZoneID); err == nil {
		detail.Zone = zone
	}
	return detail, nil
}

// ListBookings returns all bookings for the admin dashboard.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.GetAll(ctx)
}

// UpdateBooking applies an administrative status and/or assignment change.
// Any of the three recognized statuses may be written in any order; there is
// no enforced transition graph. Cancelling a booking does not release its
// reserved slot.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	if update.Status != nil && !update.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *update.Status)
	}

	record, err := s.Bookings.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}

	utils.GetLogger().Info("Booking updated by admin",
		zap.String("bookingId", id),
		zap.String("status", string(record.Status)))
	return record, nil
}
