package middleware

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerRedactsInboundBody(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Use(RequestID())
	app.Use(RequestLogger(logger))
	app.Post("/login", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	payload := `{"email":"ada@example.com","password":"super-secret-pw"}`
	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	logged := logBuf.String()
	require.Contains(t, logged, "/login")
	require.Contains(t, logged, "ada@example.com")
	require.Contains(t, logged, "***REDACTED***")
	require.NotContains(t, logged, "super-secret-pw", "plaintext password leaked into request log")
}

func TestRequestLoggerLogsResponseStatusAndDuration(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	app := fiber.New()
	app.Use(RequestID())
	app.Use(RequestLogger(logger))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	resp.Body.Close()

	logged := logBuf.String()
	require.Contains(t, logged, `"msg":"response"`)
	require.Contains(t, logged, `"status":200`)
	require.Contains(t, logged, `"duration"`)
}
