package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
)

// ErrorResponse is the JSON envelope for all error replies. Success bodies are
// sent raw because the API contract fixes their exact shapes.
type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// MessageResponse is used by mutations that only confirm completion.
type MessageResponse struct {
	Message string `json:"message"`
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
