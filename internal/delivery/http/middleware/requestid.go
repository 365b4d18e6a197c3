package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDKey is the locals key holding the per-request id.
const RequestIDKey = "requestid"

// RequestID tags every request with a UUID, honoring an incoming
// X-Request-ID header when the client already set one.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}
