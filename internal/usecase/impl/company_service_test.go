package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "landhub/internal/delivery/context"
	"landhub/internal/domain/entity"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/domain/repository"
	mockRepo "landhub/internal/mocks/repository"
	"landhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// companyServiceFixtures holds all test dependencies for company service tests.
type companyServiceFixtures struct {
	service     usecase.CompanyUsecase
	companyRepo *mockRepo.MockCompanyRepository
	landRepo    *mockRepo.MockLandRepository
}

func createTestCompanyService(t *testing.T) companyServiceFixtures {
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	landRepo := mockRepo.NewMockLandRepository(t)
	service := NewCompanyService(companyRepo, landRepo, testLogger())

	return companyServiceFixtures{
		service:     service,
		companyRepo: companyRepo,
		landRepo:    landRepo,
	}
}

func TestCompanyService_List_AnnotatesListingCounts(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	withListings := &entity.Company{ID: uuid.New(), Name: "Acme Estates"}
	withoutListings := &entity.Company{ID: uuid.New(), Name: "Quiet Holdings"}

	fx.companyRepo.On("FindAll", ctx).
		Return([]*entity.Company{withListings, withoutListings}, nil)
	fx.landRepo.On("CountByCompany", ctx).
		Return(map[uuid.UUID]int64{withListings.ID: 3}, nil)

	companies, err := fx.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, int64(3), companies[0].TotalProperties)
	assert.Equal(t, int64(0), companies[1].TotalProperties)
}

func TestCompanyService_Create_AppliesDefaults(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	input := &usecase.CreateCompanyInput{
		Name:        "  Acme Estates  ",
		Description: "Plots and farmland",
		Email:       "Sales@Acme.example",
	}

	fx.companyRepo.On("Create", ctx, mock.AnythingOfType("*entity.Company")).
		Return(nil)

	company, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Acme Estates", company.Name)
	assert.Equal(t, "sales@acme.example", company.Email)
	assert.NotNil(t, company.Images)
	assert.Empty(t, company.Images)
	assert.False(t, company.IsVerified)
	assert.Zero(t, company.Rating)
	assert.Zero(t, company.TotalProperties)
}

func TestCompanyService_Create_BlankNameRejected(t *testing.T) {
	fx := createTestCompanyService(t)

	_, err := fx.service.Create(context.Background(), &usecase.CreateCompanyInput{
		Name:        "   ",
		Description: "d",
		Email:       "a@b.example",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "name must not be blank", appErr.Details())
	fx.companyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompanyService_Update_OnlySuppliedColumnsChange(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	companyID := uuid.New()
	rating := 4.5
	updated := &entity.Company{ID: companyID, Name: "Acme Estates", Rating: rating}

	fx.companyRepo.On("Update", ctx, companyID, map[string]any{"rating": rating}).
		Return(updated, nil)
	fx.landRepo.On("CountByCompany", ctx).
		Return(map[uuid.UUID]int64{companyID: 2}, nil)

	company, err := fx.service.Update(ctx, &usecase.UpdateCompanyInput{
		ID:     companyID,
		Rating: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, rating, company.Rating)
	assert.Equal(t, int64(2), company.TotalProperties)
}

func TestCompanyService_Update_EmptyBodyTouchesTimestampOnly(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	companyID := uuid.New()
	current := &entity.Company{ID: companyID, Name: "Acme Estates", UpdatedAt: time.Now()}

	fx.companyRepo.On("Update", ctx, companyID, mock.MatchedBy(func(changes map[string]any) bool {
		_, ok := changes["updated_at"]

		return ok && len(changes) == 1
	})).Return(current, nil)
	fx.landRepo.On("CountByCompany", ctx).
		Return(map[uuid.UUID]int64{}, nil)

	company, err := fx.service.Update(ctx, &usecase.UpdateCompanyInput{ID: companyID})
	require.NoError(t, err)
	assert.Equal(t, "Acme Estates", company.Name)
}

func TestCompanyService_Update_NotFound(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	companyID := uuid.New()
	name := "New Name"

	fx.companyRepo.On("Update", ctx, companyID, map[string]any{"name": name}).
		Return(nil, repository.ErrCompanyNotFound)

	_, err := fx.service.Update(ctx, &usecase.UpdateCompanyInput{ID: companyID, Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestCompanyService_Delete_NotFound(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.companyRepo.On("Delete", ctx, companyID).
		Return(repository.ErrCompanyNotFound)

	err := fx.service.Delete(ctx, &usecase.DeleteCompanyInput{ID: companyID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestCompanyService_Delete_DoesNotTouchListings(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.companyRepo.On("Delete", ctx, companyID).
		Return(nil)

	err := fx.service.Delete(ctx, &usecase.DeleteCompanyInput{ID: companyID})
	require.NoError(t, err)
	fx.landRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCompanyService_UsesRequestScopedLogger(t *testing.T) {
	fx := createTestCompanyService(t)

	var buf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "req-123")
	ctx := deliverycontext.WithLogger(context.Background(), scoped)
	companyID := uuid.New()

	fx.companyRepo.On("Delete", ctx, companyID).
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, &usecase.DeleteCompanyInput{ID: companyID}))
	assert.Contains(t, buf.String(), "request_id=req-123")
	assert.Contains(t, buf.String(), "Deleting company")
}
