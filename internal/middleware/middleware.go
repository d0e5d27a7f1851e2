package middleware

import (
	"context"

	"PortfolioGolang/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProfileLoader resolves the site owner's profile. A nil profile with a nil error
// means none has been created yet.
type ProfileLoader interface {
	GetProfile(ctx context.Context) (*entity.Profile, error)
}

type Middleware interface {
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	NewProfileMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	loggingMiddleware   *loggingMiddleware
	requestIDMiddleware fiber.Handler
	profileMiddleware   *profileMiddleware
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, profiles ProfileLoader) Middleware {
	logging := newLoggingMiddleware(logger)
	requestID := NewRequestIDMiddleware()
	profile := newProfileMiddleware(logger, profiles)

	return &middleware{
		loggingMiddleware:   logging,
		requestIDMiddleware: requestID,
		profileMiddleware:   profile,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}

func (m *middleware) NewLoggingMiddleware() fiber.Handler {
	return m.loggingMiddleware.handle
}

func (m *middleware) NewProfileMiddleware() fiber.Handler {
	return m.profileMiddleware.handle
}

