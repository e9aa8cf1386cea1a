package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterCustomValidations(v)
	return v
}

// EchoValidator plugs a validator.Validate into echo.Echo#Validator.
type EchoValidator struct {
	validator *validator.Validate
}

func NewEchoValidator(v *validator.Validate) *EchoValidator {
	return &EchoValidator{validator: v}
}

func (cv *EchoValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
