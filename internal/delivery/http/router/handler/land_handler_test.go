package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"landhub/internal/domain/entity"
	domainerrors "landhub/internal/domain/errors"
	mockUsecase "landhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLandHandler_List(t *testing.T) {
	uc := mockUsecase.NewMockLandUsecase(t)
	h := NewLandHandler(uc, testLogger())
	e := newTestEcho()

	contact := int64(919876543210)
	uc.On("List", mock.Anything, (*uuid.UUID)(nil)).Return([]*entity.Land{
		{
			ID:      uuid.New(),
			Title:   "Corner plot",
			Company: &entity.CompanySummary{Name: "Acme Estates", Contact: &contact},
		},
	}, nil)

	rec := doJSON(t, e, http.MethodGet, "/api/lands", "", h.List)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			Title   string `json:"title"`
			Company *struct {
				Name string `json:"name"`
			} `json:"company"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.NotNil(t, body.Data[0].Company)
	assert.Equal(t, "Acme Estates", body.Data[0].Company.Name)
}

func TestLandHandler_List_FilterByCompany(t *testing.T) {
	uc := mockUsecase.NewMockLandUsecase(t)
	h := NewLandHandler(uc, testLogger())
	e := newTestEcho()

	companyID := uuid.New()
	uc.On("List", mock.Anything, &companyID).Return([]*entity.Land{}, nil)

	rec := doJSON(t, e, http.MethodGet, "/api/lands?companyId="+companyID.String(), "", h.List)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLandHandler_List_InvalidCompanyID(t *testing.T) {
	uc := mockUsecase.NewMockLandUsecase(t)
	h := NewLandHandler(uc, testLogger())
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodGet, "/api/lands?companyId=not-a-uuid", "", h.List)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestLandHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockLandUsecase(t)
	h := NewLandHandler(uc, testLogger())
	e := newTestEcho()

	companyID := uuid.New()
	uc.On("Create", mock.Anything, mock.AnythingOfType("*usecase.CreateLandInput")).
		Return(&entity.Land{ID: uuid.New(), CompanyID: companyID, Title: "Corner plot"}, nil)

	rec := doJSON(t, e, http.MethodPost, "/api/lands",
		`{"companyId":"`+companyID.String()+`","title":"Corner plot","description":"Sunny","location":"Pune"}`,
		h.Create)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestLandHandler_Create_BadEnumValue(t *testing.T) {
	uc := mockUsecase.NewMockLandUsecase(t)
	h := NewLandHandler(uc, testLogger())
	e := newTestEcho()

	rec := doJSON(t, e, http.MethodPost, "/api/lands",
		`{"companyId":"`+uuid.New().String()+`","title":"t","description":"d","location":"l","listingType":"buy"}`,
		h.Create)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLandHandler_Delete_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockLandUsecase(t)
	h := NewLandHandler(uc, testLogger())
	e := newTestEcho()

	uc.On("Delete", mock.Anything, mock.AnythingOfType("*usecase.DeleteLandInput")).
		Return(domainerrors.ErrLandNotFound)

	rec := doJSON(t, e, http.MethodDelete, "/api/lands",
		`{"id":"`+uuid.New().String()+`"}`, h.Delete)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLandHandler_ContactQR(t *testing.T) {
	uc := mockUsecase.NewMockLandUsecase(t)
	h := NewLandHandler(uc, testLogger())
	e := newTestEcho()

	landID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	uc.On("ContactQR", mock.Anything, landID).Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/lands/"+landID.String()+"/contact-qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(landID.String())

	require.NoError(t, h.ContactQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestLandHandler_ContactQR_BadID(t *testing.T) {
	uc := mockUsecase.NewMockLandUsecase(t)
	h := NewLandHandler(uc, testLogger())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/lands/nope/contact-qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := h.ContactQR(c)
	require.Error(t, err)
	uc.AssertNotCalled(t, "ContactQR", mock.Anything, mock.Anything)
}
