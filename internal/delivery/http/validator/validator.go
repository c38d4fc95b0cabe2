// Package validator wires go-playground validation into Echo.
package validator

import (
	"strings"

	domainerrors "landhub/internal/domain/errors"
	"landhub/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator adapts a go-playground validator to echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and converts failures into the shared
// validation error so the central handler renders them as 400s.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var invalidErr *playground.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			details = append(details, fieldErr.Namespace()+" failed on the '"+fieldErr.Tag()+"' rule")
		}

		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
	}

	return errors.WithStack(err)
}
