package impl

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"landhub/internal/domain/entity"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/repository"
	mockRepo "landhub/internal/mocks/repository"
	mockService "landhub/internal/mocks/service"
	"landhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// landServiceFixtures holds all test dependencies for land service tests.
type landServiceFixtures struct {
	service     usecase.LandUsecase
	landRepo    *mockRepo.MockLandRepository
	companyRepo *mockRepo.MockCompanyRepository
	qrcode      *mockService.MockQRCodeService
}

func createTestLandService(t *testing.T) landServiceFixtures {
	landRepo := mockRepo.NewMockLandRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	qrcode := mockService.NewMockQRCodeService(t)
	service := NewLandService(landRepo, companyRepo, qrcode, testLogger())

	return landServiceFixtures{
		service:     service,
		landRepo:    landRepo,
		companyRepo: companyRepo,
		qrcode:      qrcode,
	}
}

func TestLandService_Create_AppliesDefaults(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	companyID := uuid.New()
	contact := int64(919876543210)
	input := &usecase.CreateLandInput{
		CompanyID:   companyID,
		Title:       "Corner plot",
		Description: "Sunny corner plot",
		Location:    "Pune",
	}

	fx.landRepo.On("Create", ctx, mock.AnythingOfType("*entity.Land")).
		Return(nil)
	fx.companyRepo.On("FindByID", ctx, companyID).
		Return(&entity.Company{ID: companyID, Name: "Acme Estates", Contact: &contact}, nil)

	land, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.AreaUnitSqft, land.Unit)
	assert.Equal(t, entity.LegalStatusClear, land.LegalStatus)
	assert.True(t, land.IsAvailable)
	assert.False(t, land.Featured)
	assert.NotNil(t, land.Images)
	require.NotNil(t, land.Company)
	assert.Equal(t, "Acme Estates", land.Company.Name)
}

func TestLandService_Create_ExplicitUnavailableIsKept(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	companyID := uuid.New()
	unavailable := false
	input := &usecase.CreateLandInput{
		CompanyID:   companyID,
		Title:       "Sold plot",
		Description: "Already gone",
		Location:    "Pune",
		IsAvailable: &unavailable,
	}

	fx.landRepo.On("Create", ctx, mock.MatchedBy(func(land *entity.Land) bool {
		return !land.IsAvailable
	})).Return(nil)
	fx.companyRepo.On("FindByID", ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	land, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	assert.False(t, land.IsAvailable)
	assert.Nil(t, land.Company)
}

func TestLandService_Create_TooManyImages(t *testing.T) {
	fx := createTestLandService(t)

	_, err := fx.service.Create(context.Background(), &usecase.CreateLandInput{
		CompanyID:   uuid.New(),
		Title:       "t",
		Description: "d",
		Location:    "l",
		Images:      []string{"a", "b", "c", "d", "e"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "a listing carries at most 4 images", appErr.Details())
	fx.landRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLandService_List_EnrichesWithCompanySummaries(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	ownedID := uuid.New()
	orphanID := uuid.New()
	contact := int64(911234567890)

	lands := []*entity.Land{
		{ID: uuid.New(), CompanyID: ownedID, Title: "Plot A"},
		{ID: uuid.New(), CompanyID: orphanID, Title: "Plot B"},
		{ID: uuid.New(), CompanyID: ownedID, Title: "Plot C"},
	}

	fx.landRepo.On("FindAll", ctx, (*uuid.UUID)(nil)).
		Return(lands, nil)
	fx.companyRepo.On("FindByIDs", ctx, mock.MatchedBy(func(ids []uuid.UUID) bool {
		return len(ids) == 2
	})).Return([]*entity.Company{
		{ID: ownedID, Name: "Acme Estates", Email: "sales@acme.example", Contact: &contact},
	}, nil)

	result, err := fx.service.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, result, 3)
	require.NotNil(t, result[0].Company)
	assert.Equal(t, "Acme Estates", result[0].Company.Name)
	assert.Nil(t, result[1].Company)
	require.NotNil(t, result[2].Company)
}

func TestLandService_List_FilterByCompany(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.landRepo.On("FindAll", ctx, &companyID).
		Return([]*entity.Land{}, nil)

	result, err := fx.service.List(ctx, &companyID)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestLandService_Update_OnlySuppliedColumnsChange(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	landID := uuid.New()
	companyID := uuid.New()
	available := false

	updated := &entity.Land{ID: landID, CompanyID: companyID, Title: "Plot A", IsAvailable: false}

	fx.landRepo.On("Update", ctx, landID, map[string]any{"is_available": false}).
		Return(updated, nil)
	fx.companyRepo.On("FindByID", ctx, companyID).
		Return(&entity.Company{ID: companyID, Name: "Acme Estates"}, nil)

	land, err := fx.service.Update(ctx, &usecase.UpdateLandInput{
		ID:          landID,
		IsAvailable: &available,
	})
	require.NoError(t, err)
	assert.False(t, land.IsAvailable)
	assert.Equal(t, "Plot A", land.Title)
}

func TestLandService_Update_TooManyImages(t *testing.T) {
	fx := createTestLandService(t)

	images := []string{"a", "b", "c", "d", "e"}
	_, err := fx.service.Update(context.Background(), &usecase.UpdateLandInput{
		ID:     uuid.New(),
		Images: &images,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.landRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestLandService_Update_NotFound(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	landID := uuid.New()
	title := "New title"

	fx.landRepo.On("Update", ctx, landID, map[string]any{"title": title}).
		Return(nil, repository.ErrLandNotFound)

	_, err := fx.service.Update(ctx, &usecase.UpdateLandInput{ID: landID, Title: &title})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLandNotFound)
}

func TestLandService_Delete_NotFound(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	landID := uuid.New()

	fx.landRepo.On("Delete", ctx, landID).
		Return(repository.ErrLandNotFound)

	err := fx.service.Delete(ctx, &usecase.DeleteLandInput{ID: landID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLandNotFound)
}

func TestLandService_ContactQR_EncodesWhatsAppLink(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	landID := uuid.New()
	companyID := uuid.New()
	contact := int64(919876543210)

	fx.landRepo.On("FindByID", ctx, landID).
		Return(&entity.Land{ID: landID, CompanyID: companyID, Title: "Corner plot", Location: "Pune"}, nil)
	fx.companyRepo.On("FindByID", ctx, companyID).
		Return(&entity.Company{ID: companyID, Name: "Acme Estates", Contact: &contact}, nil)

	var encoded string
	fx.qrcode.On("GeneratePNG", mock.MatchedBy(func(content string) bool {
		encoded = content
		return strings.HasPrefix(content, "https://wa.me/919876543210?text=")
	})).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ContactQR(ctx, landID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	parsed, err := url.Parse(encoded)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Acme Estates")
	assert.Contains(t, text, "Corner plot")
}

func TestLandService_ContactQR_CompanyGone(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	landID := uuid.New()
	companyID := uuid.New()

	fx.landRepo.On("FindByID", ctx, landID).
		Return(&entity.Land{ID: landID, CompanyID: companyID}, nil)
	fx.companyRepo.On("FindByID", ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	_, err := fx.service.ContactQR(ctx, landID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrContactUnavailable)
}

func TestLandService_ContactQR_NoContactNumber(t *testing.T) {
	fx := createTestLandService(t)

	ctx := context.Background()
	landID := uuid.New()
	companyID := uuid.New()

	fx.landRepo.On("FindByID", ctx, landID).
		Return(&entity.Land{ID: landID, CompanyID: companyID}, nil)
	fx.companyRepo.On("FindByID", ctx, companyID).
		Return(&entity.Company{ID: companyID, Name: "Acme Estates"}, nil)

	_, err := fx.service.ContactQR(ctx, landID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrContactUnavailable)
}
