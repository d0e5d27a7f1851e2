package middleware

import (
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type profileMiddleware struct {
	log      *logrus.Logger
	profiles ProfileLoader
}

func newProfileMiddleware(log *logrus.Logger, profiles ProfileLoader) *profileMiddleware {
	return &profileMiddleware{
		log:      log,
		profiles: profiles,
	}
}

// handle puts the profile into the request locals before any page handler runs.
func (m *profileMiddleware) handle(c *fiber.Ctx) error {
	if m.profiles == nil {
		return c.Next()
	}

	ctx := contextPkg.FromFiberCtx(c)

	profile, err := m.profiles.GetProfile(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       c.Path(),
			"error":      err.Error(),
		}).Error("Failed to load profile")
		return err
	}

	contextPkg.SetProfile(c, profile)

	return c.Next()
}
