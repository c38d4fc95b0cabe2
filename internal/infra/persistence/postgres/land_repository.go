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

// landRepository implements the repository.LandRepository interface.
type landRepository struct {
	db *gorm.DB
}

// NewLandRepository is the constructor for landRepository.
func NewLandRepository(db *gorm.DB) repository.LandRepository {
	return &landRepository{
		db: db,
	}
}

// FindAll retrieves land listings newest-created first, optionally filtered by company.
func (repo *landRepository) FindAll(ctx context.Context, companyID *uuid.UUID) ([]*entity.Land, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}

	var landsM []model.LandModel
	if err := query.Find(&landsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list lands")
	}

	lands := make([]*entity.Land, 0, len(landsM))
	for i := range landsM {
		lands = append(lands, toLandDomain(&landsM[i]))
	}

	return lands, nil
}

// FindByID retrieves a single land listing by its unique ID.
func (repo *landRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Land, error) {
	var landM model.LandModel

	if err := repo.db.WithContext(ctx).First(&landM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLandNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find land by id")
	}

	return toLandDomain(&landM), nil
}

// Create persists a new land listing. CompanyID is stored as given; its
// existence is not checked.
func (repo *landRepository) Create(ctx context.Context, land *entity.Land) error {
	landM := fromLandDomain(land)

	if err := repo.db.WithContext(ctx).Create(landM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required land information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create land")
	}

	// Update the entity with generated values
	land.ID = landM.ID
	land.Unit = entity.AreaUnit(landM.Unit)
	land.LegalStatus = entity.LegalStatus(landM.LegalStatus)
	land.CreatedAt = landM.CreatedAt
	land.UpdatedAt = landM.UpdatedAt

	return nil
}

// Update merges the supplied column changes onto an existing record.
// An empty change set degrades to a plain read; callers that want a pure
// touch pass updated_at explicitly.
func (repo *landRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.Land, error) {
	if len(changes) > 0 {
		err := repo.db.WithContext(ctx).
			Model(&model.LandModel{}).
			Where("id = ?", id).
			Updates(normalizeChangeColumns(changes)).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update land")
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a land listing.
func (repo *landRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.LandModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete land")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLandNotFound
	}

	return nil
}

// CountByCompany returns the number of listings per company ID.
func (repo *landRepository) CountByCompany(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		CompanyID uuid.UUID
		Total     int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.LandModel{}).
		Select("company_id", "COUNT(*) AS total").
		Group("company_id").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count lands by company")
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.CompanyID] = row.Total
	}

	return counts, nil
}

// --- Mapper Functions ---

// toLandDomain converts a GORM LandModel to a domain Land entity.
func toLandDomain(data *model.LandModel) *entity.Land {
	if data == nil {
		return nil
	}

	var coordinates *entity.Coordinates
	if data.Latitude != nil && data.Longitude != nil {
		coordinates = &entity.Coordinates{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
		}
	}

	var propertyType *entity.PropertyType
	if data.PropertyType != nil {
		pt := entity.PropertyType(*data.PropertyType)
		propertyType = &pt
	}

	var listingType *entity.LandListingType
	if data.ListingType != nil {
		lt := entity.LandListingType(*data.ListingType)
		listingType = &lt
	}

	return &entity.Land{
		ID:               data.ID,
		CompanyID:        data.CompanyID,
		Title:            data.Title,
		Description:      data.Description,
		PriceRange:       data.PriceRange,
		Area:             data.Area,
		Unit:             entity.AreaUnit(data.Unit),
		Location:         data.Location,
		Coordinates:      coordinates,
		Images:           stringSlice(data.Images),
		PropertyType:     propertyType,
		ListingType:      listingType,
		Amenities:        stringSlice(data.Amenities),
		NearbyFacilities: stringSlice(data.NearbyFacilities),
		LegalStatus:      entity.LegalStatus(data.LegalStatus),
		IsAvailable:      data.IsAvailable,
		Featured:         data.Featured,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromLandDomain converts a domain Land entity to a GORM LandModel for persistence.
func fromLandDomain(data *entity.Land) *model.LandModel {
	if data == nil {
		return nil
	}

	landM := &model.LandModel{
		ID:               data.ID,
		CompanyID:        data.CompanyID,
		Title:            data.Title,
		Description:      data.Description,
		PriceRange:       data.PriceRange,
		Area:             data.Area,
		Unit:             string(data.Unit),
		Location:         data.Location,
		Images:           datatypes.JSONSlice[string](data.Images),
		Amenities:        datatypes.JSONSlice[string](data.Amenities),
		NearbyFacilities: datatypes.JSONSlice[string](data.NearbyFacilities),
		LegalStatus:      string(data.LegalStatus),
		IsAvailable:      data.IsAvailable,
		Featured:         data.Featured,
	}

	if data.Coordinates != nil {
		latitude := data.Coordinates.Latitude
		longitude := data.Coordinates.Longitude
		landM.Latitude = &latitude
		landM.Longitude = &longitude
	}
	if data.PropertyType != nil {
		pt := string(*data.PropertyType)
		landM.PropertyType = &pt
	}
	if data.ListingType != nil {
		lt := string(*data.ListingType)
		landM.ListingType = &lt
	}

	return landM
}

func stringSlice(data datatypes.JSONSlice[string]) []string {
	if data == nil {
		return []string{}
	}

	return []string(data)
}
