package handler

import (
	"log/slog"
	"net/http"

	"landhub/internal/delivery/http/response"
	"landhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequirementHandler holds dependencies for buyer inquiry handlers.
type RequirementHandler struct {
	uc     usecase.RequirementUsecase
	logger *slog.Logger
}

// NewRequirementHandler is the constructor for RequirementHandler, injected by Fx.
func NewRequirementHandler(uc usecase.RequirementUsecase, logger *slog.Logger) *RequirementHandler {
	return &RequirementHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing every buyer inquiry.
func (h *RequirementHandler) List(c echo.Context) error {
	requirements, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requirements)
}

// Create handles the public inquiry form submission.
func (h *RequirementHandler) Create(c echo.Context) error {
	var input *usecase.CreateRequirementInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	requirement, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, requirement)
}

// UpdateStatus handles the administrative status annotation request.
func (h *RequirementHandler) UpdateStatus(c echo.Context) error {
	var input *usecase.UpdateRequirementStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	requirement, err := h.uc.UpdateStatus(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requirement)
}
