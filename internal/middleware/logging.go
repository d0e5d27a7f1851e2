package middleware

import (
	"net/url"
	"strings"
	"time"

	"PortfolioGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// Visitor details submitted through the contact form never reach the logs.
var sensitiveFields = []string{
	"name", "email", "message", "password", "token", "secret",
}

type loggingMiddleware struct {
	logger *logrus.Logger
}

func newLoggingMiddleware(logger *logrus.Logger) *loggingMiddleware {
	return &loggingMiddleware{
		logger: logger,
	}
}

// responseSize reads the declared length of streamed bodies; Body() would drain
// the stream into memory. -1 means the stream length is unknown.
func responseSize(resp *fasthttp.Response) int {
	if resp.IsBodyStream() {
		return resp.Header.ContentLength()
	}
	return len(resp.Body())
}

func (m *loggingMiddleware) handle(c *fiber.Ctx) error {
	start := time.Now()

	requestID, ok := c.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		requestID = "unknown"
	}

	err := c.Next()

	latency := time.Since(start)
	status := c.Response().StatusCode()
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	logFields := log.Fields{
		"request_id":    requestID,
		"method":        c.Method(),
		"path":          c.Path(),
		"status":        status,
		"latency_ms":    latency.Milliseconds(),
		"ip":            c.IP(),
		"user_agent":    c.Get(fiber.HeaderUserAgent),
		"referer":       c.Get(fiber.HeaderReferer),
		"response_size": responseSize(c.Response()),
	}

	if body := c.Request().Body(); len(body) > 0 {
		logFields["request_body"] = sanitizeRequestBody(string(c.Request().Header.ContentType()), string(body))
	}

	entry := m.logger.WithFields(logFields)
	switch {
	case status >= 500:
		entry.Error("Server error")
	case status >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Success")
	}

	return err
}

func sanitizeRequestBody(contentType, body string) string {
	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
		values, err := url.ParseQuery(body)
		if err != nil {
			return "[unparsable form body]"
		}
		for _, field := range sensitiveFields {
			if values.Has(field) {
				values.Set(field, "[REDACTED]")
			}
		}
		return values.Encode()

	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		var jsonBody map[string]interface{}
		if err := jsoniter.UnmarshalFromString(body, &jsonBody); err != nil {
			return "[non-JSON body]"
		}
		for _, field := range sensitiveFields {
			if _, exists := jsonBody[field]; exists {
				jsonBody[field] = "[REDACTED]"
			}
		}
		sanitized, err := jsoniter.MarshalToString(jsonBody)
		if err != nil {
			return "[sanitization-failed]"
		}
		return sanitized

	default:
		return "[omitted]"
	}
}
