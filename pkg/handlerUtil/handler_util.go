package handlerUtil

import (
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/log"
	"PortfolioGolang/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

// BaseLayout wraps every page.
const BaseLayout = "layouts/base"

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	if code := response.StatusOf(err); code != fiber.StatusInternalServerError {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return RenderError(c, code, err.Error(), "")
	}

	traceID := log.ErrorWithTraceID(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return RenderError(c, fiber.StatusInternalServerError, "An unexpected error occurred", traceID)
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return RenderError(c, fiber.StatusBadRequest, "Validation failed: "+err.Error(), "")
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return RenderError(c, fiber.StatusRequestTimeout, utils.StatusMessage(fiber.StatusRequestTimeout), "")
}

// View renders a page inside the base layout with a 200 status.
func View(c *fiber.Ctx, name string, data fiber.Map) error {
	return ViewStatus(c, fiber.StatusOK, name, data)
}

// ViewStatus renders a page inside the base layout. Every page sees the request's
// profile under "Profile" and the request path under "Path".
func ViewStatus(c *fiber.Ctx, status int, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Profile"] = contextPkg.GetProfile(c)
	data["Path"] = c.Path()

	c.Status(status)
	return c.Render(name, data, BaseLayout)
}

// RenderError renders the error page. When the page itself cannot be rendered the
// message goes out as plain text so the status is never lost.
func RenderError(c *fiber.Ctx, status int, message, traceID string) error {
	err := ViewStatus(c, status, "error", fiber.Map{
		"Title":   utils.StatusMessage(status),
		"Status":  status,
		"Message": message,
		"TraceID": traceID,
	})
	if err != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(status).SendString(message)
	}
	return nil
}
