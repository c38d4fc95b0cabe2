// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"landhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCompanyInput defines the data required to create a company.
type CreateCompanyInput struct {
	Name          string     `json:"name" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	Email         string     `json:"email" validate:"required"`
	Contact       *int64     `json:"contact"`
	Location      string     `json:"location"`
	Website       string     `json:"website"`
	LogoURL       string     `json:"logoUrl"`
	Images        []string   `json:"images"`
	Established   *time.Time `json:"established"`
	LicenseNumber string     `json:"licenseNumber"`
	IsVerified    *bool      `json:"isVerified"`
	Rating        *float64   `json:"rating"`
}

// UpdateCompanyInput carries a partial, field-by-field merge. Nil fields are
// left untouched; supplied fields are re-validated.
type UpdateCompanyInput struct {
	ID            uuid.UUID  `json:"id" validate:"required"`
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Email         *string    `json:"email"`
	Contact       *int64     `json:"contact"`
	Location      *string    `json:"location"`
	Website       *string    `json:"website"`
	LogoURL       *string    `json:"logoUrl"`
	Images        *[]string  `json:"images"`
	Established   *time.Time `json:"established"`
	LicenseNumber *string    `json:"licenseNumber"`
	IsVerified    *bool      `json:"isVerified"`
	Rating        *float64   `json:"rating"`
}

// DeleteCompanyInput identifies the company to delete.
type DeleteCompanyInput struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// CompanyUsecase defines the interface for company-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CompanyUsecase interface {
	List(ctx context.Context) ([]*entity.Company, error)
	Create(ctx context.Context, input *CreateCompanyInput) (*entity.Company, error)
	Update(ctx context.Context, input *UpdateCompanyInput) (*entity.Company, error)
	Delete(ctx context.Context, input *DeleteCompanyInput) error
}
