package handler

import (
	"log/slog"
	"net/http"

	"landhub/internal/delivery/http/response"
	"landhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompanyHandler holds dependencies for company-related handlers.
type CompanyHandler struct {
	uc     usecase.CompanyUsecase
	logger *slog.Logger
}

// NewCompanyHandler is the constructor for CompanyHandler, injected by Fx.
func NewCompanyHandler(uc usecase.CompanyUsecase, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing every company.
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, companies)
}

// Create handles the company creation request.
func (h *CompanyHandler) Create(c echo.Context) error {
	var input *usecase.CreateCompanyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	company, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, company)
}

// Update handles the partial company update request. The target ID rides in
// the request body.
func (h *CompanyHandler) Update(c echo.Context) error {
	var input *usecase.UpdateCompanyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	company, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company)
}

// Delete handles the company deletion request.
func (h *CompanyHandler) Delete(c echo.Context) error {
	var input *usecase.DeleteCompanyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "company deleted"})
}
