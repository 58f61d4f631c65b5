package priestRepo

import (
	"context"
	"errors"

	"poojaconnect/models"
)

// ErrNotFound is returned when no priest matches the lookup.
var ErrNotFound = errors.New("priest not found")

// PriestRepository defines data access for priests and their zone coverage
// links.
type PriestRepository interface {
	// GetActive retrieves all active priests.
	GetActive(ctx context.Context) ([]models.Priest, error)
	// GetAll retrieves all priests regardless of active flag.
	GetAll(ctx context.Context) ([]models.Priest, error)
	// GetByID retrieves a priest by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Priest, error)
	// Create inserts a new priest record.
	Create(ctx context.Context, priest *models.Priest) error

	// CreateZoneLink records that a priest serves a zone.
	CreateZoneLink(ctx context.Context, link *models.PriestZone) error
	// GetZoneLinks retrieves the zone coverage links for a priest.
	GetZoneLinks(ctx context.Context, priestID string) ([]models.PriestZone, error)
}
