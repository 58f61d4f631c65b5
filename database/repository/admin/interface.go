package adminRepo

import (
	"context"

	"poojaconnect/models"
)

// AdminRepository defines data access for operator accounts. Admins are
// passive records in this service.
type AdminRepository interface {
	// Create inserts a new admin record.
	Create(ctx context.Context, admin *models.Admin) error
	// GetByEmail retrieves an admin by email address.
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}
