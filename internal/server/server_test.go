package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/rolodex-app/rolodex/internal/config"
	"github.com/rolodex-app/rolodex/internal/logging"
)

func devConfig() config.Config {
	return config.Config{
		AppName:         "rolodex-test",
		AppEnv:          "development",
		Port:            "0",
		JWTSecret:       "test-secret",
		JWTTTL:          time.Hour,
		RateLimitMax:    1000,
		RateLimitWindow: time.Minute,
	}
}

func testRequest(t *testing.T, app *fiber.App, method, path, body, bearer string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestEndToEndRegisterLoginAndContacts(t *testing.T) {
	srv, err := New(devConfig(), nil, nil, logging.Discard())
	require.NoError(t, err)

	status, body := testRequest(t, srv.app, fiber.MethodPost, "/api/v1/auth/register",
		`{"name":"Ada","email":"ada@example.com","password":"correct horse"}`, "")
	require.Equal(t, fiber.StatusCreated, status)

	status, body = testRequest(t, srv.app, fiber.MethodPost, "/api/v1/auth/login",
		`{"email":"ada@example.com","password":"correct horse"}`, "")
	require.Equal(t, fiber.StatusOK, status)
	bearer := body["token"].(string)

	status, body = testRequest(t, srv.app, fiber.MethodPost, "/api/v1/contacts/",
		`{"name":"Grace Hopper","email":"grace@example.com","phone":"+1 (555) 010-0000"}`, bearer)
	require.Equal(t, fiber.StatusCreated, status)
	contactID := body["data"].(map[string]any)["id"].(string)

	status, body = testRequest(t, srv.app, fiber.MethodGet, "/api/v1/contacts/?search=grace", "", bearer)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, body["data"].([]any), 1)

	status, _ = testRequest(t, srv.app, fiber.MethodDelete, "/api/v1/contacts/"+contactID, "", bearer)
	require.Equal(t, fiber.StatusOK, status)

	status, body = testRequest(t, srv.app, fiber.MethodGet, "/api/v1/auth/me", "", bearer)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "ada@example.com", body["email"])
}

func TestHealthzWithoutBackends(t *testing.T) {
	srv, err := New(devConfig(), nil, nil, logging.Discard())
	require.NoError(t, err)

	status, body := testRequest(t, srv.app, fiber.MethodGet, "/healthz", "", "")
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, body["status"])
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	srv, err := New(devConfig(), nil, nil, logging.Discard())
	require.NoError(t, err)

	status, body := testRequest(t, srv.app, fiber.MethodGet, "/api/v1/nope", "", "")
	require.Equal(t, fiber.StatusNotFound, status)
	errBody := body["error"].(map[string]any)
	require.NotEmpty(t, errBody["code"])
	require.NotEmpty(t, errBody["requestId"])
}
