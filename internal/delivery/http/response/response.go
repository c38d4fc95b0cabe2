// Package response defines the JSON wire shapes shared by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every successful JSON payload.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorBody is the failure payload. Clients get a single message string,
// never internal error chains.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes a successful envelope with the given status code.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
	})
}

// Error writes a failure payload with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// BindingError reports a request body that could not be parsed.
func BindingError(c echo.Context) error {
	return Error(c, http.StatusBadRequest, "invalid request body")
}
