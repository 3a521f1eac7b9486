// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// statusRoutes registers the liveness and readiness probes under the /-/
// prefix, excluded from request logging.
func statusRoutes(app *fiber.App, serviceName, version string) {
	handler := func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"status":  "OK",
			"name":    serviceName,
			"version": version,
		})
	}

	app.Get("/-/healthz", handler)
	app.Get("/-/ready", handler)
}
