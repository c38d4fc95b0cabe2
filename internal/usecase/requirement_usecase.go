package usecase

import (
	"context"

	"landhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RangeInput is a structured numeric range. Pointers distinguish a missing
// bound from an explicit zero.
type RangeInput struct {
	Min *float64 `json:"min" validate:"required"`
	Max *float64 `json:"max" validate:"required"`
}

// CreateRequirementInput defines the data of a public buyer inquiry.
type CreateRequirementInput struct {
	Name         string      `json:"name" validate:"required"`
	Email        string      `json:"email" validate:"required"`
	Phone        string      `json:"phone" validate:"required"`
	PropertyType string      `json:"propertyType" validate:"required,oneof=residential commercial agricultural industrial"`
	ListingType  string      `json:"listingType" validate:"required,oneof=buy rent lease"`
	Budget       *RangeInput `json:"budget" validate:"required"`
	Location     string      `json:"location" validate:"required"`
	Area         *RangeInput `json:"area"`
	Message      string      `json:"message"`
}

// UpdateRequirementStatusInput sets the administrative status annotation.
type UpdateRequirementStatusInput struct {
	ID     uuid.UUID `json:"id" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=pending contacted matched closed"`
}

// RequirementUsecase defines the interface for buyer inquiry operations.
// Inquiries are append-only; status is the only mutable field and only
// through the administrative surface.
type RequirementUsecase interface {
	List(ctx context.Context) ([]*entity.Requirement, error)
	Create(ctx context.Context, input *CreateRequirementInput) (*entity.Requirement, error)
	UpdateStatus(ctx context.Context, input *UpdateRequirementStatusInput) (*entity.Requirement, error)
}
