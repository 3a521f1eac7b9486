// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/omta/internal/api"
)

// provisionerRoutes registers the lifecycle endpoints invoked by the
// provisioning coordinator.
func provisionerRoutes(app *fiber.App, provisioner Provisioner) {
	app.Post("/v1/validate", func(ctx *fiber.Ctx) error {
		dataProduct, _, validationError := unpackProvisioningRequest(ctx.Body())
		if validationError != nil {
			return ctx.Status(http.StatusOK).JSON(api.ValidationResult{Valid: false, Error: validationError})
		}

		validationError, err := provisioner.Validate(ctx.UserContext(), dataProduct)
		switch {
		case err != nil:
			return ctx.Status(http.StatusInternalServerError).JSON(api.SystemError{Error: err.Error()})
		case validationError != nil:
			return ctx.Status(http.StatusOK).JSON(api.ValidationResult{Valid: false, Error: validationError})
		}

		return ctx.Status(http.StatusOK).JSON(api.ValidationResult{Valid: true})
	})

	app.Post("/v1/provision", func(ctx *fiber.Ctx) error {
		dataProduct, _, validationError := unpackProvisioningRequest(ctx.Body())
		if validationError != nil {
			return ctx.Status(http.StatusBadRequest).JSON(validationError)
		}

		status, err := provisioner.Provision(ctx.UserContext(), dataProduct)
		if err != nil {
			return ctx.Status(http.StatusInternalServerError).JSON(api.SystemError{Error: err.Error()})
		}
		return ctx.Status(http.StatusOK).JSON(status)
	})

	app.Get("/v1/provision/:token/status", func(ctx *fiber.Ctx) error {
		token := ctx.Params("token")
		status, found := provisioner.ProvisioningStatus(token)
		if !found {
			return ctx.Status(http.StatusBadRequest).JSON(api.ValidationError{
				Errors: []string{"unknown provisioning token " + token},
			})
		}
		return ctx.Status(http.StatusOK).JSON(status)
	})

	app.Post("/v1/unprovision", func(ctx *fiber.Ctx) error {
		dataProduct, removeData, validationError := unpackProvisioningRequest(ctx.Body())
		if validationError != nil {
			return ctx.Status(http.StatusBadRequest).JSON(validationError)
		}

		status, err := provisioner.Unprovision(ctx.UserContext(), dataProduct, removeData)
		if err != nil {
			return ctx.Status(http.StatusInternalServerError).JSON(api.SystemError{Error: err.Error()})
		}
		return ctx.Status(http.StatusOK).JSON(status)
	})

	app.Post("/v1/updateacl", func(ctx *fiber.Ctx) error {
		_, _, validationError := unpackUpdateAclRequest(ctx.Body())
		if validationError != nil {
			return ctx.Status(http.StatusBadRequest).JSON(validationError)
		}

		// access control on catalog entities is managed by the catalog itself
		return ctx.Status(http.StatusInternalServerError).JSON(api.SystemError{
			Error: "update ACL is not supported",
		})
	})

	app.Post("/v2/validate", func(ctx *fiber.Ctx) error {
		dataProduct, _, validationError := unpackProvisioningRequest(ctx.Body())
		if validationError != nil {
			return ctx.Status(http.StatusBadRequest).JSON(validationError)
		}

		token := provisioner.StartAsyncValidation(ctx.UserContext(), dataProduct)
		return ctx.Status(http.StatusAccepted).JSON(token)
	})

	app.Get("/v2/validate/:token/status", func(ctx *fiber.Ctx) error {
		token := ctx.Params("token")
		status, found := provisioner.AsyncValidationStatus(token)
		if !found {
			return ctx.Status(http.StatusBadRequest).JSON(api.ValidationError{
				Errors: []string{"unknown validation token " + token},
			})
		}
		return ctx.Status(http.StatusOK).JSON(status)
	})
}
