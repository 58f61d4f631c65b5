package poojaRepo

import (
	"context"
	"errors"

	"poojaconnect/models"
)

// ErrNotFound is returned when no pooja matches the lookup.
var ErrNotFound = errors.New("pooja not found")

// PoojaRepository defines data access for the pooja catalog.
type PoojaRepository interface {
	// GetAllActive retrieves all active poojas.
	GetAllActive(ctx context.Context) ([]models.Pooja, error)
	// GetByID retrieves a pooja by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Pooja, error)
	// GetBySlug retrieves a pooja by its URL slug.
	GetBySlug(ctx context.Context, slug string) (*models.Pooja, error)
	// Create inserts a new pooja record.
	Create(ctx context.Context, pooja *models.Pooja) error
}
