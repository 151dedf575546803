package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/rolodex-app/rolodex/internal/apperr"
	"github.com/rolodex-app/rolodex/internal/logging"
)

func TestRequestIDPropagatesInboundHeader(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "inbound-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "inbound-123", resp.Header.Get(RequestIDHeader))
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, "inbound-123", string(body))
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestErrorHandlerWritesEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logging.Discard())})
	app.Use(RequestID())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperr.NotFound(apperr.CodeContactNotFound, "Contact not found")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var envelope struct {
		Error struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			RequestID string `json:"requestId"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, apperr.CodeContactNotFound, envelope.Error.Code)
	require.Equal(t, "Contact not found", envelope.Error.Message)
	require.NotEmpty(t, envelope.Error.RequestID)
}

func TestErrorHandlerMasksInternalErrors(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Use(RequestID())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pgx: connection refused to db-internal:5432")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	require.NotContains(t, string(body), "db-internal", "real error leaked to client")
	require.Contains(t, string(body), apperr.CodeInternal)
	require.Contains(t, string(body), "Something went wrong on the server.")

	// The real message is preserved in the internal log.
	require.Contains(t, logBuf.String(), "db-internal")
}

func TestErrorHandlerRedactsLoggedBody(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Use(RequestID())
	app.Post("/login", func(c *fiber.Ctx) error {
		return apperr.New(fiber.StatusUnauthorized, apperr.CodeInvalidCreds, "Invalid email or password.")
	})

	payload := `{"email":"ada@example.com","password":"super-secret-pw"}`
	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	logged := logBuf.String()
	require.Contains(t, logged, "ada@example.com")
	require.NotContains(t, logged, "super-secret-pw", "plaintext password leaked into logs")
}
