package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
	"github.com/cassioviller/ViajeyPlanner/internal/pkg/utils"
)

// UserIDKey is the locals key holding the authenticated user id.
const UserIDKey = "user_id"

const bearerPrefix = "Bearer "

// TokenParser validates a bearer token and returns the user id it carries.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// Auth rejects requests without a valid bearer token.
func Auth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseBearer(c, parser)
		if err != nil {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present but lets
// anonymous requests through. Read endpoints use it so public itineraries
// stay reachable without an account.
func OptionalAuth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, err := parseBearer(c, parser); err == nil {
			c.Locals(UserIDKey, userID)
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id, or 0 for anonymous requests.
func UserID(c *fiber.Ctx) int64 {
	if id, ok := c.Locals(UserIDKey).(int64); ok {
		return id
	}
	return 0
}

func parseBearer(c *fiber.Ctx, parser TokenParser) (int64, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return 0, errors.ErrUnauthorized
	}
	return parser.ParseToken(strings.TrimPrefix(header, bearerPrefix))
}
