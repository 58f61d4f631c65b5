package slotRepo

import (
	"context"
	"errors"
	"time"

	"poojaconnect/models"
)

var (
	// ErrSlotNotFound is returned when no slot exists for the given ID.
	ErrSlotNotFound = errors.New("availability slot not found")
	// ErrSlotAlreadyBooked is returned when a reservation loses the race for
	// a slot another request already consumed.
	ErrSlotAlreadyBooked = errors.New("availability slot already booked")
)

// SlotRepository defines data access for priest availability slots.
type SlotRepository interface {
	// GetByPriestID retrieves all slots belonging to a priest.
	GetByPriestID(ctx context.Context, priestID string) ([]models.AvailabilitySlot, error)
	// CreateMany inserts a batch of slots.
	CreateMany(ctx context.Context, slots []models.AvailabilitySlot) error
	// Reserve atomically flips an unbooked slot to booked. The unbooked
	// check and the flip are a single compare-and-set: of two concurrent
	// reservations for the same slot exactly one succeeds, the other gets
	// ErrSlotAlreadyBooked.
	Reserve(ctx context.Context, slotID string) (*models.AvailabilitySlot, error)
	// CountUpcoming returns the number of slots for a priest starting at or
	// after the given instant.
	CountUpcoming(ctx context.Context, priestID string, from time.Time) (int64, error)
}
