package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
)

// Problem is the JSON body of a failed request that is not an authentication error.
type Problem struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	status  int
}

// Error implements the error interface.
func (p *Problem) Error() string {
	return p.Message
}

// NewProblem creates a Problem answered with status.
func NewProblem(status int, code, message string) *Problem {
	return &Problem{Code: code, Message: message, status: status}
}

var (
	// ErrInvalidRequest is returned when the request body can not be parsed.
	ErrInvalidRequest = NewProblem(fiber.StatusBadRequest, "INVALID_REQUEST", "invalid request body")

	// ErrNoActiveBranch is returned when a branch scoped operation runs without an active branch.
	ErrNoActiveBranch = NewProblem(fiber.StatusBadRequest, "NO_ACTIVE_BRANCH", "no active branch selected")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = NewProblem(fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
)

// WriteError answers the request with the JSON form of err.
func WriteError(c *fiber.Ctx, err error) error {
	if e, ok := auth.AsError(err); ok {
		return auth.Reply(c, e)
	}

	var p *Problem
	if errors.As(err, &p) {
		return c.Status(p.status).JSON(p)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		p := NewProblem(fiber.StatusBadRequest, "VALIDATION_FAILED", "request validation failed")
		p.Fields = fieldErrors(verrs)

		return c.Status(p.status).JSON(p)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(NewProblem(fe.Code, "HTTP_ERROR", fe.Message))
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")

	return c.Status(ErrInternal.status).JSON(ErrInternal)
}
