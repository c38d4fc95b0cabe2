// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "landhub/internal/delivery/context"
	"landhub/internal/domain/entity"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/repository"
	"landhub/internal/usecase"

	"github.com/pkg/errors"
)

// companyService implements the CompanyUsecase interface.
type companyService struct {
	companies repository.CompanyRepository
	lands     repository.LandRepository
	logger    *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(
	companies repository.CompanyRepository,
	lands repository.LandRepository,
	logger *slog.Logger,
) usecase.CompanyUsecase {
	return &companyService{
		companies: companies,
		lands:     lands,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every company, each annotated with its current listing count.
func (srv *companyService) List(ctx context.Context) ([]*entity.Company, error) {
	companies, err := srv.companies.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	counts, err := srv.lands.CountByCompany(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count listings per company")
	}

	for _, company := range companies {
		company.TotalProperties = counts[company.ID]
	}

	return companies, nil
}

// Create registers a new company.
func (srv *companyService) Create(ctx context.Context, input *usecase.CreateCompanyInput) (*entity.Company, error) {
	srv.log(ctx).Info("Creating company", "name", input.Name)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be blank")
	}

	company := &entity.Company{
		Name:          name,
		Description:   input.Description,
		Email:         normalizeEmail(input.Email),
		Contact:       input.Contact,
		Location:      input.Location,
		Website:       input.Website,
		LogoURL:       input.LogoURL,
		Images:        emptyIfNil(input.Images),
		Established:   input.Established,
		LicenseNumber: input.LicenseNumber,
	}
	if input.IsVerified != nil {
		company.IsVerified = *input.IsVerified
	}
	if input.Rating != nil {
		company.Rating = *input.Rating
	}

	if err := srv.companies.Create(ctx, company); err != nil {
		return nil, errors.Wrap(err, "failed to create company")
	}

	// A brand new company cannot have listings yet.
	company.TotalProperties = 0

	return company, nil
}

// Update merges the supplied fields onto an existing company. Omitted fields
// keep their stored values.
func (srv *companyService) Update(ctx context.Context, input *usecase.UpdateCompanyInput) (*entity.Company, error) {
	srv.log(ctx).Info("Updating company", "companyID", input.ID)

	changes := map[string]any{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be blank")
		}
		changes["name"] = name
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.Email != nil {
		changes["email"] = normalizeEmail(*input.Email)
	}
	if input.Contact != nil {
		changes["contact"] = *input.Contact
	}
	if input.Location != nil {
		changes["location"] = *input.Location
	}
	if input.Website != nil {
		changes["website"] = *input.Website
	}
	if input.LogoURL != nil {
		changes["logo_url"] = *input.LogoURL
	}
	if input.Images != nil {
		changes["images"] = *input.Images
	}
	if input.Established != nil {
		changes["established"] = *input.Established
	}
	if input.LicenseNumber != nil {
		changes["license_number"] = *input.LicenseNumber
	}
	if input.IsVerified != nil {
		changes["is_verified"] = *input.IsVerified
	}
	if input.Rating != nil {
		changes["rating"] = *input.Rating
	}

	// An id-only update still refreshes updated_at; gorm only touches it when
	// at least one column changes.
	if len(changes) == 0 {
		changes["updated_at"] = time.Now()
	}

	company, err := srv.companies.Update(ctx, input.ID, changes)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "company not found")
		}

		return nil, errors.Wrap(err, "failed to update company")
	}

	counts, err := srv.lands.CountByCompany(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count listings per company")
	}
	company.TotalProperties = counts[company.ID]

	return company, nil
}

// Delete removes a company. Its land listings are left untouched.
func (srv *companyService) Delete(ctx context.Context, input *usecase.DeleteCompanyInput) error {
	srv.log(ctx).Info("Deleting company", "companyID", input.ID)

	if err := srv.companies.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return errors.Wrap(domainerrors.ErrCompanyNotFound, "company not found")
		}

		return errors.Wrap(err, "failed to delete company")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
