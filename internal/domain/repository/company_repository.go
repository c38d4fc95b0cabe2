// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"landhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is a domain-specific error returned when a company is not found.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines the standard operations for company persistence.
// The application layer depends on this interface, not the concrete implementation.
type CompanyRepository interface {
	// FindAll retrieves every company, newest-created first.
	FindAll(ctx context.Context) ([]*entity.Company, error)

	// FindByID retrieves a single company by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// FindByIDs retrieves the companies whose IDs are in the given set.
	// Missing IDs are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Company, error)

	// Create persists a new company and fills in the generated ID and timestamps.
	Create(ctx context.Context, company *entity.Company) error

	// Update merges the supplied column changes onto an existing record and
	// returns the updated company. Omitted columns are left untouched.
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.Company, error)

	// Delete removes a company. Land listings referencing it are not touched.
	Delete(ctx context.Context, id uuid.UUID) error
}
