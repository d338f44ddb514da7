package http

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs validator/v10 into echo.Context.Validate.
type CustomValidator struct {
	Validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.Validator.Struct(i)
}
