package handler

import (
	"log/slog"
	"net/http"

	"landhub/internal/delivery/http/response"
	"landhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for admin session handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// loginResponse matches the wire shape expected by the frontend: token and
// user ride at the top level, not inside the data envelope.
type loginResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	User    usecase.AdminUser `json:"user"`
}

// Login handles the admin login request.
func (h *AdminHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   output.Token,
		User:    output.User,
	})
}
