package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ValidationError carries field-level validation messages up to the error
// handler so a failed submit is rejected inline without touching the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ErrorHandler renders every error as a JSON envelope. Validation errors
// become 400s with field messages; fiber errors keep their status; anything
// else (store or database failures included) is an explicit 500 rather than
// an assumed success.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "validation_failed",
			"fields":  ve.Fields,
		})
	}

	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
