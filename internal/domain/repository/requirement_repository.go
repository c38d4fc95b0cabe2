package repository

import (
	"context"
	"errors"

	"landhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRequirementNotFound is a domain-specific error returned when a requirement is not found.
var ErrRequirementNotFound = errors.New("requirement not found")

// RequirementRepository defines the operations for buyer inquiry persistence.
// Inquiries are append-only; only the status field is ever updated.
type RequirementRepository interface {
	// FindAll retrieves every requirement, newest-created first.
	FindAll(ctx context.Context) ([]*entity.Requirement, error)

	// Create persists a new requirement and fills in the generated ID and timestamps.
	Create(ctx context.Context, requirement *entity.Requirement) error

	// UpdateStatus sets the administrative status annotation and returns the
	// updated requirement.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) (*entity.Requirement, error)
}
