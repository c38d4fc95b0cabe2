package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"landhub/internal/delivery/http/middleware"
	"landhub/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an Echo instance with the production validator and
// central error handler so handler tests exercise the real wire shapes.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}

// doJSON invokes a handler with a JSON body, routing any returned error
// through the central error handler like the real server does.
func doJSON(t *testing.T, e *echo.Echo, method, path, body string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}
