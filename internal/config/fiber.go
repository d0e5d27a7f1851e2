package config

import (
	"errors"
	"os"

	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// NewFiber builds the app around views. Templates are loaded here, so every
// template func must already be registered on views.
func NewFiber(logger *logrus.Logger, views fiber.Views) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:               "Portfolio",
			BodyLimit:             4 * 1024 * 1024,
			DisableKeepalive:      false,
			StrictRouting:         true,
			CaseSensitive:         true,
			EnablePrintRoutes:     os.Getenv("APP_ENV") == "development",
			DisableStartupMessage: os.Getenv("APP_ENV") == "test",
			JSONEncoder:           jsoniter.Marshal,
			JSONDecoder:           jsoniter.Unmarshal,
			Views:                 views,
			ErrorHandler:          newErrorHandler(logger),
		})

	return app
}

// newErrorHandler renders unmatched routes, fiber errors and recovered panics with
// the same page the handlers use.
func newErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		requestID, _ := c.Locals(contextPkg.RequestIDLocal).(string)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			logger.WithFields(log.Fields{
				"request_id": requestID,
				"path":       c.Path(),
				"code":       fe.Code,
			}).Debug("Request ended with fiber error")
			return handlerUtil.RenderError(c, fe.Code, fe.Message, "")
		}

		traceID := log.ErrorWithTraceID(log.Fields{
			"request_id": requestID,
			"path":       c.Path(),
			"error":      err.Error(),
		}, "Unhandled error")

		return handlerUtil.RenderError(c, fiber.StatusInternalServerError, "An unexpected error occurred", traceID)
	}
}
