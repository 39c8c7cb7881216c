package handlers

import (
	"transaction-reports/internal/validation"

	"github.com/labstack/echo/v4"
)

// QueryValidator plugs the transaction query rules (month buckets, id lists,
// query dates) into echo's Validate hook
type QueryValidator struct {
	rules *validation.Validator
}

func NewValidator() echo.Validator {
	return &QueryValidator{rules: validation.GetValidator()}
}

func (v *QueryValidator) Validate(i interface{}) error {
	return v.rules.Struct(i)
}

// validateRequest runs the echo instance's validator, falling back to the
// shared query rules when none is registered
func validateRequest(c echo.Context, target interface{}) error {
	if e := c.Echo(); e != nil && e.Validator != nil {
		return e.Validator.Validate(target)
	}
	return validation.GetValidator().Struct(target)
}
