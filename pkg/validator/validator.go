package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/johnquangdev/teamsync/errors"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate performs struct validation and maps failures to an AppError
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.v.Struct(i); err != nil {
		appErr := apperrors.ErrInvalidPayload()
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				appErr = appErr.WithDetail(fe.Field(), fmt.Sprintf("failed on %q", fe.Tag()))
			}
		}
		return appErr
	}
	return nil
}
