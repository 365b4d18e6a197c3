package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
)

// parseID reads a positive numeric path parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.ErrValidation.WithDetails(map[string]interface{}{
			name: "must be a positive integer",
		})
	}
	return id, nil
}
