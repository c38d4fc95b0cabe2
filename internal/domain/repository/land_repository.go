package repository

import (
	"context"
	"errors"

	"landhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLandNotFound is a domain-specific error returned when a land listing is not found.
var ErrLandNotFound = errors.New("land not found")

// LandRepository defines the standard operations for land listing persistence.
type LandRepository interface {
	// FindAll retrieves land listings newest-created first, optionally
	// restricted to a single company.
	FindAll(ctx context.Context, companyID *uuid.UUID) ([]*entity.Land, error)

	// FindByID retrieves a single land listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Land, error)

	// Create persists a new land listing and fills in the generated ID and timestamps.
	Create(ctx context.Context, land *entity.Land) error

	// Update merges the supplied column changes onto an existing record and
	// returns the updated listing. Omitted columns are left untouched.
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.Land, error)

	// Delete removes a land listing.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCompany returns the number of listings per company ID.
	CountByCompany(ctx context.Context) (map[uuid.UUID]int64, error)
}
