package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	deliverycontext "landhub/internal/delivery/context"
	"landhub/internal/domain/entity"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/repository"
	"landhub/internal/domain/service"
	"landhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxLandImages = 4

// landService implements the LandUsecase interface.
type landService struct {
	lands     repository.LandRepository
	companies repository.CompanyRepository
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewLandService is the constructor for landService.
func NewLandService(
	lands repository.LandRepository,
	companies repository.CompanyRepository,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.LandUsecase {
	return &landService{
		lands:     lands,
		companies: companies,
		qrcode:    qrcode,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *landService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns land listings, optionally restricted to one company, each
// enriched with the owning company's summary.
func (srv *landService) List(ctx context.Context, companyID *uuid.UUID) ([]*entity.Land, error) {
	lands, err := srv.lands.FindAll(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lands")
	}

	if err := srv.enrichAll(ctx, lands); err != nil {
		return nil, err
	}

	return lands, nil
}

// Create publishes a new land listing.
func (srv *landService) Create(ctx context.Context, input *usecase.CreateLandInput) (*entity.Land, error) {
	srv.log(ctx).Info("Creating land listing", "title", input.Title, "companyID", input.CompanyID)

	if len(input.Images) > maxLandImages {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("a listing carries at most %d images", maxLandImages))
	}

	land := &entity.Land{
		CompanyID:        input.CompanyID,
		Title:            input.Title,
		Description:      input.Description,
		PriceRange:       input.PriceRange,
		Area:             input.Area,
		Unit:             entity.AreaUnitSqft,
		Location:         input.Location,
		Coordinates:      input.Coordinates,
		Images:           emptyIfNil(input.Images),
		Amenities:        emptyIfNil(input.Amenities),
		NearbyFacilities: emptyIfNil(input.NearbyFacilities),
		LegalStatus:      entity.LegalStatusClear,
		IsAvailable:      true,
	}
	if input.Unit != "" {
		land.Unit = entity.AreaUnit(input.Unit)
	}
	if input.LegalStatus != "" {
		land.LegalStatus = entity.LegalStatus(input.LegalStatus)
	}
	if input.PropertyType != nil {
		pt := entity.PropertyType(*input.PropertyType)
		land.PropertyType = &pt
	}
	if input.ListingType != nil {
		lt := entity.LandListingType(*input.ListingType)
		land.ListingType = &lt
	}
	if input.IsAvailable != nil {
		land.IsAvailable = *input.IsAvailable
	}
	if input.Featured != nil {
		land.Featured = *input.Featured
	}

	if err := srv.lands.Create(ctx, land); err != nil {
		return nil, errors.Wrap(err, "failed to create land")
	}

	srv.enrichOne(ctx, land)

	return land, nil
}

// Update merges the supplied fields onto an existing listing.
func (srv *landService) Update(ctx context.Context, input *usecase.UpdateLandInput) (*entity.Land, error) {
	srv.log(ctx).Info("Updating land listing", "landID", input.ID)

	changes := map[string]any{}

	if input.CompanyID != nil {
		changes["company_id"] = *input.CompanyID
	}
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.PriceRange != nil {
		changes["price_range"] = *input.PriceRange
	}
	if input.Area != nil {
		changes["area"] = *input.Area
	}
	if input.Unit != nil {
		changes["unit"] = *input.Unit
	}
	if input.Location != nil {
		changes["location"] = *input.Location
	}
	if input.Coordinates != nil {
		changes["latitude"] = input.Coordinates.Latitude
		changes["longitude"] = input.Coordinates.Longitude
	}
	if input.Images != nil {
		if len(*input.Images) > maxLandImages {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("a listing carries at most %d images", maxLandImages))
		}
		changes["images"] = *input.Images
	}
	if input.PropertyType != nil {
		changes["property_type"] = *input.PropertyType
	}
	if input.ListingType != nil {
		changes["listing_type"] = *input.ListingType
	}
	if input.Amenities != nil {
		changes["amenities"] = *input.Amenities
	}
	if input.NearbyFacilities != nil {
		changes["nearby_facilities"] = *input.NearbyFacilities
	}
	if input.LegalStatus != nil {
		changes["legal_status"] = *input.LegalStatus
	}
	if input.IsAvailable != nil {
		changes["is_available"] = *input.IsAvailable
	}
	if input.Featured != nil {
		changes["featured"] = *input.Featured
	}

	// An id-only update still refreshes updated_at; gorm only touches it when
	// at least one column changes.
	if len(changes) == 0 {
		changes["updated_at"] = time.Now()
	}

	land, err := srv.lands.Update(ctx, input.ID, changes)
	if err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLandNotFound, "land not found")
		}

		return nil, errors.Wrap(err, "failed to update land")
	}

	srv.enrichOne(ctx, land)

	return land, nil
}

// Delete removes a land listing.
func (srv *landService) Delete(ctx context.Context, input *usecase.DeleteLandInput) error {
	srv.log(ctx).Info("Deleting land listing", "landID", input.ID)

	if err := srv.lands.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return errors.Wrap(domainerrors.ErrLandNotFound, "land not found")
		}

		return errors.Wrap(err, "failed to delete land")
	}

	return nil
}

// ContactQR renders a QR code PNG pointing at the WhatsApp conversation for
// the listing's company.
func (srv *landService) ContactQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	land, err := srv.lands.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLandNotFound, "land not found")
		}

		return nil, errors.Wrap(err, "failed to find land")
	}

	company, err := srv.companies.FindByID(ctx, land.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrContactUnavailable, "listing company no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find listing company")
	}
	if company.Contact == nil {
		return nil, errors.Wrap(domainerrors.ErrContactUnavailable, "listing company has no contact number")
	}

	message := fmt.Sprintf("Hi %s, I am interested in your listing %q at %s.", company.Name, land.Title, land.Location)
	link := "https://wa.me/" + strconv.FormatInt(*company.Contact, 10) + "?text=" + url.QueryEscape(message)

	png, err := srv.qrcode.GeneratePNG(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render contact QR code")
	}

	return png, nil
}

// enrichAll resolves company summaries for a batch of listings with a single
// lookup per distinct company. Listings whose company is gone keep a nil
// summary.
func (srv *landService) enrichAll(ctx context.Context, lands []*entity.Land) error {
	if len(lands) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(lands))
	ids := make([]uuid.UUID, 0, len(lands))
	for _, land := range lands {
		if _, ok := seen[land.CompanyID]; ok {
			continue
		}
		seen[land.CompanyID] = struct{}{}
		ids = append(ids, land.CompanyID)
	}

	companies, err := srv.companies.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to resolve listing companies")
	}

	summaries := make(map[uuid.UUID]*entity.CompanySummary, len(companies))
	for _, company := range companies {
		summaries[company.ID] = company.Summary()
	}

	for _, land := range lands {
		land.Company = summaries[land.CompanyID]
	}

	return nil
}

// enrichOne resolves the company summary for a single listing. A missing
// company is not an error, the summary is simply omitted.
func (srv *landService) enrichOne(ctx context.Context, land *entity.Land) {
	company, err := srv.companies.FindByID(ctx, land.CompanyID)
	if err != nil {
		if !errors.Is(err, repository.ErrCompanyNotFound) {
			srv.log(ctx).Warn("Failed to resolve listing company", "landID", land.ID, "error", err)
		}

		return
	}

	land.Company = company.Summary()
}
