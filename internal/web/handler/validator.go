package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks data against its validate tags.
func Validate(data any) error {
	return validate.Struct(data) //nolint:wrapcheck
}

// Bind parses the JSON body into out and validates it.
func Bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return ErrInvalidRequest
	}

	return Validate(out)
}

func fieldErrors(errs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))

	for _, err := range errs {
		out = append(out, FieldError{
			Field: err.Field(),
			Tag:   err.Tag(),
			Param: err.Param(),
		})
	}

	return out
}
