package postgres

import (
	"context"

	"landhub/internal/domain/entity"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/repository"
	"landhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// requirementRepository implements the repository.RequirementRepository interface.
type requirementRepository struct {
	db *gorm.DB
}

// NewRequirementRepository is the constructor for requirementRepository.
func NewRequirementRepository(db *gorm.DB) repository.RequirementRepository {
	return &requirementRepository{
		db: db,
	}
}

// FindAll retrieves every requirement, newest-created first.
func (repo *requirementRepository) FindAll(ctx context.Context) ([]*entity.Requirement, error) {
	var requirementsM []model.RequirementModel

	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&requirementsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list requirements")
	}

	requirements := make([]*entity.Requirement, 0, len(requirementsM))
	for i := range requirementsM {
		requirements = append(requirements, toRequirementDomain(&requirementsM[i]))
	}

	return requirements, nil
}

// Create persists a new requirement.
func (repo *requirementRepository) Create(ctx context.Context, requirement *entity.Requirement) error {
	requirementM := fromRequirementDomain(requirement)

	if err := repo.db.WithContext(ctx).Create(requirementM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required requirement information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create requirement")
	}

	// Update the entity with generated values
	requirement.ID = requirementM.ID
	requirement.Status = entity.InquiryStatus(requirementM.Status)
	requirement.CreatedAt = requirementM.CreatedAt
	requirement.UpdatedAt = requirementM.UpdatedAt

	return nil
}

// UpdateStatus sets the administrative status annotation on a requirement.
func (repo *requirementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) (*entity.Requirement, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RequirementModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update requirement status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRequirementNotFound
	}

	return repo.findByID(ctx, id)
}

func (repo *requirementRepository) findByID(ctx context.Context, id uuid.UUID) (*entity.Requirement, error) {
	var requirementM model.RequirementModel

	if err := repo.db.WithContext(ctx).First(&requirementM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequirementNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find requirement by id")
	}

	return toRequirementDomain(&requirementM), nil
}

// --- Mapper Functions ---

// toRequirementDomain converts a GORM RequirementModel to a domain Requirement entity.
func toRequirementDomain(data *model.RequirementModel) *entity.Requirement {
	if data == nil {
		return nil
	}

	var area *entity.Range
	if data.AreaMin != nil && data.AreaMax != nil {
		area = &entity.Range{
			Min: *data.AreaMin,
			Max: *data.AreaMax,
		}
	}

	return &entity.Requirement{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		PropertyType: entity.PropertyType(data.PropertyType),
		ListingType:  entity.InquiryListingType(data.ListingType),
		Budget: entity.Range{
			Min: data.BudgetMin,
			Max: data.BudgetMax,
		},
		Location:  data.Location,
		Area:      area,
		Message:   data.Message,
		Status:    entity.InquiryStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRequirementDomain converts a domain Requirement entity to a GORM RequirementModel for persistence.
func fromRequirementDomain(data *entity.Requirement) *model.RequirementModel {
	if data == nil {
		return nil
	}

	requirementM := &model.RequirementModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		PropertyType: string(data.PropertyType),
		ListingType:  string(data.ListingType),
		BudgetMin:    data.Budget.Min,
		BudgetMax:    data.Budget.Max,
		Location:     data.Location,
		Message:      data.Message,
		Status:       string(data.Status),
	}

	if data.Area != nil {
		areaMin := data.Area.Min
		areaMax := data.Area.Max
		requirementM.AreaMin = &areaMin
		requirementM.AreaMax = &areaMax
	}

	return requirementM
}
