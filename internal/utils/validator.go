package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// EchoValidator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate(req) on bound payloads.
type EchoValidator struct {
	V *validator.Validate
}

// NewEchoValidator returns an EchoValidator with a fresh validator
// instance.
func NewEchoValidator() *EchoValidator {
	return &EchoValidator{V: validator.New()}
}

// Validate implements echo.Validator. Failures become 400 responses with
// the validator's message in the error detail.
func (ev *EchoValidator) Validate(i interface{}) error {
	if err := ev.V.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
