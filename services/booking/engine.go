package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	poojaRepo "poojaconnect/database/repository/pooja"
	slotRepo "poojaconnect/database/repository/slot"
	zoneRepo "poojaconnect/database/repository/zone"
	"poojaconnect/models"
	"poojaconnect/utils"
)

// CreateBooking runs the first-fit assignment: resolve the pooja, derive the
// end time, filter eligible priests, and reserve the first covering slot.
// When no priest/slot pair fits, the booking is persisted as
// pending_confirmation for manual follow-up. At most one slot is reserved
// per request.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, string, error) {
	logger := utils.GetLogger()

	pooja, err := s.Poojas.GetByID(ctx, req.PoojaID)
	if err != nil {
		if errors.Is(err, poojaRepo.ErrNotFound) {
			return nil, "", ErrPoojaNotFound
		}
		return nil, "", fmt.Errorf("failed to resolve pooja %s: %w", req.PoojaID, err)
	}

	if _, err := s.Zones.GetByID(ctx, req.ZoneID); err != nil {
		if errors.Is(err, zoneRepo.ErrNotFound) {
			return nil, "", ErrZoneNotFound
		}
		return nil, "", fmt.Errorf("failed to resolve zone %s: %w", req.ZoneID, err)
	}

	endTime, err := ComputeEndTime(req.BookingStartTime, pooja.DurationMinutes)
	if err != nil {
		return nil, "", err
	}

	requestedStart, err := CombineDateTime(req.BookingDate, req.BookingStartTime)
	if err != nil {
		return nil, "", err
	}
	requestedEnd, err := CombineDateTime(req.BookingDate, endTime)
	if err != nil {
		return nil, "", err
	}
	// A wrapped end clock time means the window crosses midnight: the end
	// instant belongs to the next calendar day even though the stored
	// BookingEndTime keeps the wrapped clock value. Without the advance the
	// interval would be inverted and match slots it does not fit in.
	if !requestedEnd.After(requestedStart) {
		requestedEnd = requestedEnd.AddDate(0, 0, 1)
	}

	priests, err := s.Priests.GetActive(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load active priests: %w", err)
	}

	linksByPriest, err := s.loadZoneLinks(ctx, priests)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load priest zone links: %w", err)
	}

	eligible := FilterEligiblePriests(priests, linksByPriest, req.ZoneID, req.PreferredLanguage)

	status := models.BookingStatusPending
	message := MsgDeferred
	assignedPriestID := ""

candidates:
	for _, priest := range eligible {
		slots, err := s.Slots.GetByPriestID(ctx, priest.ID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load slots for priest %s: %w", priest.ID, err)
		}
		for {
			slot := FindCoveringSlot(slots, requestedStart, requestedEnd)
			if slot == nil {
				continue candidates
			}
			_, err := s.Slots.Reserve(ctx, slot.ID)
			if err == nil {
				assignedPriestID = priest.ID
				status = models.BookingStatusConfirmed
				message = MsgConfirmed
				logger.Info("Booking auto-confirmed",
					zap.String("priestId", priest.ID),
					zap.String("slotId", slot.ID))
				break candidates
			}
			if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) || errors.Is(err, slotRepo.ErrSlotNotFound) {
				// Lost the race for this slot; skip it locally and rescan.
				slot.IsBooked = true
				continue
			}
			return nil, "", fmt.Errorf("failed to reserve slot %s: %w", slot.ID, err)
		}
	}

	if status == models.BookingStatusPending {
		logger.Info("Booking deferred to manual confirmation",
			zap.String("zoneId", req.ZoneID),
			zap.Int("eligiblePriests", len(eligible)))
	}

	booking := &models.Booking{
		PoojaID:           req.PoojaID,
		ZoneID:            req.ZoneID,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		CustomerEmail:     req.CustomerEmail,
		AddressLine1:      req.AddressLine1,
		AddressLine2:      req.AddressLine2,
		Landmark:          req.Landmark,
		Pincode:           req.Pincode,
		PreferredLanguage: req.PreferredLanguage,
		WithKit:           req.WithKit,
		BookingDate:       req.BookingDate,
		BookingStartTime:  req.BookingStartTime,
		BookingEndTime:    endTime,
		Status:            status,
		AssignedPriestID:  assignedPriestID,
	}

	// A failed write here leaves the reserved slot consumed with no booking
	// on record; the store is trusted for single-operation durability.
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, "", fmt.Errorf("failed to persist booking: %w", err)
	}

	return booking, message, nil
}
