package handler

import (
	"net/http"
	"testing"

	"landhub/internal/domain/entity"
	mockUsecase "landhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validRequirementJSON = `{
	"name":"Asha",
	"email":"asha@example.com",
	"phone":"+911234567890",
	"propertyType":"residential",
	"listingType":"buy",
	"budget":{"min":100000,"max":500000},
	"location":"Pune"
}`

func TestRequirementHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockRequirementUsecase(t)
	h := NewRequirementHandler(uc, testLogger())
	e := newTestEcho()

	uc.On("Create", mock.Anything, mock.AnythingOfType("*usecase.CreateRequirementInput")).
		Return(&entity.Requirement{ID: uuid.New(), Status: entity.InquiryStatusPending}, nil)

	rec := doJSON(t, e, http.MethodPost, "/api/requirements", validRequirementJSON, h.Create)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestRequirementHandler_Create_MissingBudgetBound(t *testing.T) {
	uc := mockUsecase.NewMockRequirementUsecase(t)
	h := NewRequirementHandler(uc, testLogger())
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/requirements",
		`{"name":"Asha","email":"a@b.example","phone":"1","propertyType":"residential","listingType":"buy","budget":{"min":100000},"location":"Pune"}`,
		h.Create)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequirementHandler_Create_ZeroBudgetMinAccepted(t *testing.T) {
	uc := mockUsecase.NewMockRequirementUsecase(t)
	h := NewRequirementHandler(uc, testLogger())
	e := newTestEcho()

	uc.On("Create", mock.Anything, mock.AnythingOfType("*usecase.CreateRequirementInput")).
		Return(&entity.Requirement{ID: uuid.New(), Status: entity.InquiryStatusPending}, nil)

	rec := doJSON(t, e, http.MethodPost, "/api/requirements",
		`{"name":"Asha","email":"a@b.example","phone":"1","propertyType":"residential","listingType":"buy","budget":{"min":0,"max":500000},"location":"Pune"}`,
		h.Create)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestRequirementHandler_UpdateStatus(t *testing.T) {
	uc := mockUsecase.NewMockRequirementUsecase(t)
	h := NewRequirementHandler(uc, testLogger())
	e := newTestEcho()

	requirementID := uuid.New()
	uc.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*usecase.UpdateRequirementStatusInput")).
		Return(&entity.Requirement{ID: requirementID, Status: entity.InquiryStatusMatched}, nil)

	rec := doJSON(t, e, http.MethodPut, "/api/requirements",
		`{"id":"`+requirementID.String()+`","status":"matched"}`, h.UpdateStatus)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"matched"`)
}

func TestRequirementHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	uc := mockUsecase.NewMockRequirementUsecase(t)
	h := NewRequirementHandler(uc, testLogger())
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPut, "/api/requirements",
		`{"id":"`+uuid.New().String()+`","status":"archived"}`, h.UpdateStatus)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestRequirementHandler_List(t *testing.T) {
	uc := mockUsecase.NewMockRequirementUsecase(t)
	h := NewRequirementHandler(uc, testLogger())
	e := newTestEcho()

	uc.On("List", mock.Anything).Return([]*entity.Requirement{
		{ID: uuid.New(), Name: "Asha", Status: entity.InquiryStatusPending},
	}, nil)

	rec := doJSON(t, e, http.MethodGet, "/api/requirements", "", h.List)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Asha"`)
}
