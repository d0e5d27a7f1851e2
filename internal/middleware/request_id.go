package middleware

import (
	"time"

	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDKey = contextPkg.RequestIDLocal

// maxRequestIDLength bounds ids taken from the client; they end up in every log line.
const maxRequestIDLength = 64

// NewRequestIDMiddleware keeps a well-formed incoming X-Request-ID and issues a
// ULID otherwise. The id is stored in locals and echoed on the response.
func NewRequestIDMiddleware() fiber.Handler {
	ids := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)
		if !validRequestID(requestID) {
			requestID = newRequestID(ids)
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}

func newRequestID(ids utils.IUtils) string {
	id, err := ids.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return uuid.NewString()
	}
	return id
}

// validRequestID accepts short ids made of letters, digits and - _ . :
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}
	return true
}
