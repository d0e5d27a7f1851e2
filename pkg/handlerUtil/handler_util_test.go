package handlerUtil_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"PortfolioGolang/pkg/handlerUtil"
	"PortfolioGolang/pkg/markdown"
	"PortfolioGolang/pkg/response"
	"PortfolioGolang/web"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, fail error) (int, string) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{Views: web.NewEngine(nil, markdown.New())})
	app.Get("/", func(c *fiber.Ctx) error {
		return handlerUtil.New(logger).Handle(c, "req-1", fail, c.Path(), "test")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHandle_DomainErrorRendersItsStatus(t *testing.T) {
	errGone := response.NewError(http.StatusNotFound, "Post not found")

	status, body := serve(t, fmt.Errorf("detail: %w", errGone))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Post not found")
}

func TestHandle_UnexpectedErrorIsTraced(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	status, body := serve(t, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "An unexpected error occurred")
	assert.Contains(t, body, "req-1")
	assert.NotContains(t, body, "connection refused")
}
