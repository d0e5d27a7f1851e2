package context

import (
	"context"

	"PortfolioGolang/internal/entity"

	"github.com/gofiber/fiber/v2"
)

type ctxKey string

const RequestIDKey ctxKey = "request_id"

// RequestIDLocal is the fiber locals key the request id middleware writes to.
const RequestIDLocal = "X-Request-ID"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx derives a context for the service layer from the request's own
// context, carrying the request id along.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()

	requestID, ok := c.Locals(RequestIDLocal).(string)
	if !ok || requestID == "" {
		requestID = c.Get(RequestIDLocal)
		if requestID == "" {
			requestID = "unknown"
		}
	}

	return WithRequestID(ctx, requestID)
}

// ProfileLocal is the fiber locals key the profile middleware writes to.
const ProfileLocal = "profile"

func SetProfile(c *fiber.Ctx, profile *entity.Profile) {
	c.Locals(ProfileLocal, profile)
}

// GetProfile returns the profile resolved for this request, or nil when the site has none.
func GetProfile(c *fiber.Ctx) *entity.Profile {
	profile, _ := c.Locals(ProfileLocal).(*entity.Profile)
	return profile
}
