package usecase

import (
	"context"

	"landhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateLandInput defines the data required to publish a land listing.
// CompanyID is stored as supplied; its existence is not validated.
type CreateLandInput struct {
	CompanyID        uuid.UUID           `json:"companyId" validate:"required"`
	Title            string              `json:"title" validate:"required"`
	Description      string              `json:"description" validate:"required"`
	PriceRange       string              `json:"priceRange"`
	Area             *float64            `json:"area"`
	Unit             string              `json:"unit" validate:"omitempty,oneof=sqft acres hectares"`
	Location         string              `json:"location" validate:"required"`
	Coordinates      *entity.Coordinates `json:"coordinates"`
	Images           []string            `json:"images"`
	PropertyType     *string             `json:"propertyType" validate:"omitempty,oneof=residential commercial agricultural industrial"`
	ListingType      *string             `json:"listingType" validate:"omitempty,oneof=sale rent lease"`
	Amenities        []string            `json:"amenities"`
	NearbyFacilities []string            `json:"nearbyFacilities"`
	LegalStatus      string              `json:"legalStatus" validate:"omitempty,oneof=clear disputed under-litigation"`
	IsAvailable      *bool               `json:"isAvailable"`
	Featured         *bool               `json:"featured"`
}

// UpdateLandInput carries a partial, field-by-field merge.
type UpdateLandInput struct {
	ID               uuid.UUID           `json:"id" validate:"required"`
	CompanyID        *uuid.UUID          `json:"companyId"`
	Title            *string             `json:"title"`
	Description      *string             `json:"description"`
	PriceRange       *string             `json:"priceRange"`
	Area             *float64            `json:"area"`
	Unit             *string             `json:"unit" validate:"omitempty,oneof=sqft acres hectares"`
	Location         *string             `json:"location"`
	Coordinates      *entity.Coordinates `json:"coordinates"`
	Images           *[]string           `json:"images"`
	PropertyType     *string             `json:"propertyType" validate:"omitempty,oneof=residential commercial agricultural industrial"`
	ListingType      *string             `json:"listingType" validate:"omitempty,oneof=sale rent lease"`
	Amenities        *[]string           `json:"amenities"`
	NearbyFacilities *[]string           `json:"nearbyFacilities"`
	LegalStatus      *string             `json:"legalStatus" validate:"omitempty,oneof=clear disputed under-litigation"`
	IsAvailable      *bool               `json:"isAvailable"`
	Featured         *bool               `json:"featured"`
}

// DeleteLandInput identifies the listing to delete.
type DeleteLandInput struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// LandUsecase defines the interface for land listing business operations.
// Every returned listing is enriched with the owning company's summary,
// resolved at query time; a missing company omits the enrichment silently.
type LandUsecase interface {
	List(ctx context.Context, companyID *uuid.UUID) ([]*entity.Land, error)
	Create(ctx context.Context, input *CreateLandInput) (*entity.Land, error)
	Update(ctx context.Context, input *UpdateLandInput) (*entity.Land, error)
	Delete(ctx context.Context, input *DeleteLandInput) error

	// ContactQR renders a QR code PNG encoding the WhatsApp deep link for
	// contacting the listing's company.
	ContactQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
