package middleware

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfiles struct {
	profile *entity.Profile
	err     error
}

func (s stubProfiles) GetProfile(context.Context) (*entity.Profile, error) {
	return s.profile, s.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	app := fiber.New()
	m := New(quietLogger(), nil)
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Len(t, string(body), 26)
	assert.Equal(t, string(body), resp.Header.Get(RequestIDKey))
}

func TestRequestID_KeepsIncomingHeader(t *testing.T) {
	app := fiber.New()
	m := New(quietLogger(), nil)
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(contextPkg.GetRequestID(contextPkg.FromFiberCtx(c)))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "abc-123", string(body))
}

func TestRequestID_ReplacesMalformedHeader(t *testing.T) {
	for _, incoming := range []string{
		"has space",
		"new\tline",
		strings.Repeat("a", maxRequestIDLength+1),
		"<script>",
	} {
		app := fiber.New()
		m := New(quietLogger(), nil)
		app.Use(m.NewRequestIDMiddleware())
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendString(m.GetRequestID(c))
		})

		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(RequestIDKey, incoming)
		resp, err := app.Test(req)
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.NotEqual(t, incoming, string(body))
		assert.Len(t, string(body), 26, incoming)
	}
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("abc-123"))
	assert.True(t, validRequestID("01HZX3Q5.trace:7_a"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("é"))
}

// trackingReader reports whether anything read the stream.
type trackingReader struct {
	r    io.Reader
	read bool
}

func (t *trackingReader) Read(p []byte) (int, error) {
	t.read = true
	return t.r.Read(p)
}

func TestLogging_LeavesStreamedBodyUnread(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := New(logger, nil)

	stream := &trackingReader{r: strings.NewReader("%PDF-1.4")}
	readBeforeSend := true

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		readBeforeSend = stream.read
		return err
	})
	app.Use(m.NewRequestIDMiddleware())
	app.Use(m.NewLoggingMiddleware())
	app.Get("/file", func(c *fiber.Ctx) error {
		return c.SendStream(stream, 8)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/file", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.False(t, readBeforeSend)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, 8, entry.Data["response_size"])
}

func TestProfileMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		loader     ProfileLoader
		wantStatus int
		wantBody   string
	}{
		{
			name:       "profile stored in locals",
			loader:     stubProfiles{profile: &entity.Profile{Name: "Ada"}},
			wantStatus: fiber.StatusOK,
			wantBody:   "Ada",
		},
		{
			name:       "missing profile is not an error",
			loader:     stubProfiles{},
			wantStatus: fiber.StatusOK,
			wantBody:   "none",
		},
		{
			name:       "store failure aborts the request",
			loader:     stubProfiles{err: errors.New("db down")},
			wantStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			m := New(quietLogger(), tt.loader)
			app.Use(m.NewProfileMiddleware())
			app.Get("/", func(c *fiber.Ctx) error {
				if p := contextPkg.GetProfile(c); p != nil {
					return c.SendString(p.Name)
				}
				return c.SendString("none")
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestSanitizeRequestBody(t *testing.T) {
	form := sanitizeRequestBody(fiber.MIMEApplicationForm, "name=Ada&email=ada%40example.com&subject=Hi&message=secret")
	assert.Contains(t, form, "subject=Hi")
	assert.NotContains(t, form, "ada%40example.com")
	assert.NotContains(t, form, "secret")
	assert.Equal(t, 3, strings.Count(form, "REDACTED"))

	js := sanitizeRequestBody(fiber.MIMEApplicationJSON, `{"email":"a@b.c","page":2}`)
	assert.Contains(t, js, `"page":2`)
	assert.NotContains(t, js, "a@b.c")

	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody(fiber.MIMEApplicationJSON, "nope"))
	assert.Equal(t, "[omitted]", sanitizeRequestBody("application/pdf", "%PDF"))
}
