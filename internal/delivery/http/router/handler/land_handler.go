package handler

import (
	"log/slog"
	"net/http"

	"landhub/internal/delivery/http/response"
	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LandHandler holds dependencies for land listing handlers.
type LandHandler struct {
	uc     usecase.LandUsecase
	logger *slog.Logger
}

// NewLandHandler is the constructor for LandHandler, injected by Fx.
func NewLandHandler(uc usecase.LandUsecase, logger *slog.Logger) *LandHandler {
	return &LandHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing land listings, optionally filtered by company.
func (h *LandHandler) List(c echo.Context) error {
	var companyID *uuid.UUID
	if raw := c.QueryParam("companyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("companyId must be a valid UUID")
		}
		companyID = &id
	}

	lands, err := h.uc.List(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lands)
}

// Create handles the land creation request.
func (h *LandHandler) Create(c echo.Context) error {
	var input *usecase.CreateLandInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	land, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, land)
}

// Update handles the partial land update request. The target ID rides in the
// request body.
func (h *LandHandler) Update(c echo.Context) error {
	var input *usecase.UpdateLandInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	land, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, land)
}

// Delete handles the land deletion request.
func (h *LandHandler) Delete(c echo.Context) error {
	var input *usecase.DeleteLandInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "land deleted"})
}

// ContactQR renders the WhatsApp contact QR code for a listing as a PNG.
func (h *LandHandler) ContactQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	png, err := h.uc.ContactQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
