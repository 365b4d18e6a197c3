package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/cassioviller/ViajeyPlanner/internal/repository/cache"
	"github.com/cassioviller/ViajeyPlanner/internal/repository/postgres"
)

// HealthHandler reports the liveness of the service and its backends.
type HealthHandler struct {
	db    *postgres.DB
	redis *cache.Redis
}

func NewHealthHandler(db *postgres.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redis,
	}
}

// Health godoc
// @Summary Service health
// @Description Pings the database and the cache; degraded backends are reported per component
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx := c.Context()
	status := fiber.StatusOK

	components := fiber.Map{
		"database": componentStatus(ctx, h.db.Health),
		"cache":    componentStatus(ctx, h.redis.Health),
	}
	if components["database"] != "ok" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":     statusWord(status),
		"components": components,
	})
}

func componentStatus(ctx context.Context, probe func(context.Context) error) string {
	if err := probe(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}

func statusWord(status int) string {
	if status == fiber.StatusOK {
		return "healthy"
	}
	return "unhealthy"
}
