// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	netHTTP "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMiddlewareLogger(t *testing.T) {
	t.Parallel()

	newApp := func(buffer *bytes.Buffer) *fiber.App {
		logger := NewLogger(buffer)
		logger.SetLevel(TRACE)

		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		app.Use(RequestMiddlewareLogger(logger, []string{"/-/"}))
		app.Get("/foo", func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(netHTTP.StatusOK)
		})
		app.Get("/-/healthz", func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(netHTTP.StatusOK)
		})
		return app
	}

	t.Run("logs incoming request and completion", func(t *testing.T) {
		t.Parallel()

		buffer := new(bytes.Buffer)
		app := newApp(buffer)

		req := httptest.NewRequest(netHTTP.MethodGet, "http://example.com/foo", nil)
		req.Header.Set("User-Agent", "UnitTestAgent/1.0")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		lines := strings.Split(buffer.String(), "\n")
		require.Len(t, lines, 3)
		require.Empty(t, lines[2])
		assert.Contains(t, lines[0], IncomingRequestMessage)
		assert.Contains(t, lines[1], RequestCompletedMessage)
		assert.Contains(t, lines[1], "UnitTestAgent/1.0")
	})

	t.Run("excluded prefixes are not logged", func(t *testing.T) {
		t.Parallel()

		buffer := new(bytes.Buffer)
		app := newApp(buffer)

		req := httptest.NewRequest(netHTTP.MethodGet, "http://example.com/-/healthz", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Empty(t, buffer.String())
	})
}
