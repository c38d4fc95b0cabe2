// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"landhub/internal/domain/entity"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/repository"
	"landhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// companyRepository implements the repository.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// FindAll retrieves every company, newest-created first.
func (repo *companyRepository) FindAll(ctx context.Context) ([]*entity.Company, error) {
	var companiesM []model.CompanyModel

	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&companiesM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list companies")
	}

	companies := make([]*entity.Company, 0, len(companiesM))
	for i := range companiesM {
		companies = append(companies, toCompanyDomain(&companiesM[i]))
	}

	return companies, nil
}

// FindByID retrieves a single company by its unique ID.
func (repo *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel

	if err := repo.db.WithContext(ctx).First(&companyM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find company by id")
	}

	return toCompanyDomain(&companyM), nil
}

// FindByIDs retrieves the companies whose IDs are in the given set.
func (repo *companyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var companiesM []model.CompanyModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&companiesM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find companies by ids")
	}

	companies := make([]*entity.Company, 0, len(companiesM))
	for i := range companiesM {
		companies = append(companies, toCompanyDomain(&companiesM[i]))
	}

	return companies, nil
}

// Create persists a new company.
func (repo *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCompanyEmailExists.WrapMessage("email already in use")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required company information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	// Update the entity with generated values
	company.ID = companyM.ID
	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// Update merges the supplied column changes onto an existing record.
// Columns absent from the map are left untouched; updated_at is refreshed by
// GORM. An empty change set degrades to a plain read; callers that want a
// pure touch pass updated_at explicitly.
func (repo *companyRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.Company, error) {
	if len(changes) > 0 {
		err := repo.db.WithContext(ctx).
			Model(&model.CompanyModel{}).
			Where("id = ?", id).
			Updates(normalizeChangeColumns(changes)).Error
		if err != nil {
			if isUniqueConstraintViolation(err) {
				return nil, domainerrors.ErrCompanyEmailExists.WrapMessage("email already in use")
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update company")
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a company. Land listings referencing it are intentionally
// left in place (no cascade).
func (repo *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete company")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCompanyDomain converts a GORM CompanyModel to a domain Company entity.
func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	images := []string(data.Images)
	if images == nil {
		images = []string{}
	}

	return &entity.Company{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Email:         data.Email,
		Contact:       data.Contact,
		Location:      data.Location,
		Website:       data.Website,
		LogoURL:       data.LogoURL,
		Images:        images,
		Established:   data.Established,
		LicenseNumber: data.LicenseNumber,
		IsVerified:    data.IsVerified,
		Rating:        data.Rating,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCompanyDomain converts a domain Company entity to a GORM CompanyModel for persistence.
func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	return &model.CompanyModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Email:         data.Email,
		Contact:       data.Contact,
		Location:      data.Location,
		Website:       data.Website,
		LogoURL:       data.LogoURL,
		Images:        datatypes.JSONSlice[string](data.Images),
		Established:   data.Established,
		LicenseNumber: data.LicenseNumber,
		IsVerified:    data.IsVerified,
		Rating:        data.Rating,
	}
}
