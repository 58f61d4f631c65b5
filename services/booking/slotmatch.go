package booking

import (
	"time"

	"poojaconnect/models"
)

// FindCoveringSlot returns the first unbooked slot, in collection order,
// that fully contains [requestedStart, requestedEnd]. Partial overlap does
// not qualify. Returns nil when no slot qualifies. It never mutates the
// slots; reservation is a separate explicit step.
func FindCoveringSlot(slots []models.AvailabilitySlot, requestedStart, requestedEnd time.Time) *models.AvailabilitySlot {
	for i := range slots {
		slot := &slots[i]
		if slot.IsBooked {
			continue
		}
		if slot.Covers(requestedStart, requestedEnd) {
			return slot
		}
	}
	return nil
}
