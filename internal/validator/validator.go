package validator

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/phihocnguyen/movie-ticket-booking-sub000/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("show_date", validateShowDate)
	validator.RegisterValidation("seat_code", validateSeatCode)

	return validator
}

// validateShowDate rejects show dates in the past. The wire format itself is
// enforced by the date type's JSON decoding.
func validateShowDate(fl validator.FieldLevel) bool {
	showDate := fl.Field().Interface().(openapi_types.Date).Time

	today := time.Now().UTC().Truncate(24 * time.Hour)

	return !showDate.Before(today)
}

func validateSeatCode(fl validator.FieldLevel) bool {
	_, _, ok := domain.ParseSeatCode(fl.Field().String())
	return ok
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "show_date":
		return "must be today or a future date"
	case "seat_code":
		return "must be a row letter followed by a column number, e.g. A12"
	default:
		return "is invalid"
	}
}
