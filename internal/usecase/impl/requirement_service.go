package impl

import (
	"context"
	"log/slog"

	deliverycontext "landhub/internal/delivery/context"
	"landhub/internal/domain/entity"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/repository"
	"landhub/internal/usecase"

	"github.com/pkg/errors"
)

// requirementService implements the RequirementUsecase interface.
type requirementService struct {
	requirements repository.RequirementRepository
	logger       *slog.Logger
}

// NewRequirementService is the constructor for requirementService.
func NewRequirementService(
	requirements repository.RequirementRepository,
	logger *slog.Logger,
) usecase.RequirementUsecase {
	return &requirementService{
		requirements: requirements,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *requirementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every buyer inquiry, newest first.
func (srv *requirementService) List(ctx context.Context) ([]*entity.Requirement, error) {
	requirements, err := srv.requirements.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requirements")
	}

	return requirements, nil
}

// Create records a new buyer inquiry. Status always starts as pending.
func (srv *requirementService) Create(ctx context.Context, input *usecase.CreateRequirementInput) (*entity.Requirement, error) {
	srv.log(ctx).Info("Creating requirement", "email", input.Email, "listingType", input.ListingType)

	budget, err := toRange(input.Budget)
	if err != nil {
		return nil, errors.Wrap(err, "invalid budget")
	}

	requirement := &entity.Requirement{
		Name:         input.Name,
		Email:        normalizeEmail(input.Email),
		Phone:        input.Phone,
		PropertyType: entity.PropertyType(input.PropertyType),
		ListingType:  entity.InquiryListingType(input.ListingType),
		Budget:       *budget,
		Location:     input.Location,
		Message:      input.Message,
		Status:       entity.InquiryStatusPending,
	}

	if input.Area != nil {
		area, err := toRange(input.Area)
		if err != nil {
			return nil, errors.Wrap(err, "invalid area")
		}
		requirement.Area = area
	}

	if err := srv.requirements.Create(ctx, requirement); err != nil {
		return nil, errors.Wrap(err, "failed to create requirement")
	}

	return requirement, nil
}

// UpdateStatus sets the administrative status annotation on an inquiry.
func (srv *requirementService) UpdateStatus(ctx context.Context, input *usecase.UpdateRequirementStatusInput) (*entity.Requirement, error) {
	srv.log(ctx).Info("Updating requirement status", "requirementID", input.ID, "status", input.Status)

	requirement, err := srv.requirements.UpdateStatus(ctx, input.ID, entity.InquiryStatus(input.Status))
	if err != nil {
		if errors.Is(err, repository.ErrRequirementNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRequirementNotFound, "requirement not found")
		}

		return nil, errors.Wrap(err, "failed to update requirement status")
	}

	return requirement, nil
}

// toRange converts a bound pair into a domain range, rejecting inverted
// bounds. An explicit zero is a valid bound.
func toRange(input *usecase.RangeInput) (*entity.Range, error) {
	if input == nil || input.Min == nil || input.Max == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("both min and max are required")
	}
	if *input.Min > *input.Max {
		return nil, domainerrors.ErrValidationFailed.WithDetails("min must not exceed max")
	}

	return &entity.Range{Min: *input.Min, Max: *input.Max}, nil
}
