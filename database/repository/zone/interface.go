package zoneRepo

import (
	"context"
	"errors"

	"poojaconnect/models"
)

// ErrNotFound is returned when no zone matches the lookup.
var ErrNotFound = errors.New("zone not found")

// ZoneRepository defines data access for service zones.
type ZoneRepository interface {
	// GetAllActive retrieves all active zones.
	GetAllActive(ctx context.Context) ([]models.Zone, error)
	// GetByID retrieves a zone by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Zone, error)
	// Create inserts a new zone record.
	Create(ctx context.Context, zone *models.Zone) error
	// Count returns the total number of zone records.
	Count(ctx context.Context) (int64, error)
}
