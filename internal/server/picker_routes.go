// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/omta/internal/api"
)

// pickerRoutes registers the custom URL picker endpoints used by creation
// templates to browse glossary terms.
func pickerRoutes(app *fiber.App, picker GlossaryPicker) {
	app.Post("/v1/resources", func(ctx *fiber.Ctx) error {
		offset := ctx.QueryInt("offset", -1)
		limit := ctx.QueryInt("limit", -1)
		if offset < 0 || limit < 1 {
			return ctx.Status(http.StatusBadRequest).JSON(api.PickerMalformedRequestError{
				Errors: []string{"offset and limit query parameters are required and must be non negative"},
			})
		}

		var request *api.PickerResourcesRequest
		if body := ctx.Body(); len(body) > 0 {
			request = new(api.PickerResourcesRequest)
			if err := json.Unmarshal(body, request); err != nil {
				return ctx.Status(http.StatusBadRequest).JSON(api.PickerMalformedRequestError{
					Errors: []string{"Unable to parse the request body.", err.Error()},
				})
			}
		}

		items, err := picker.Terms(ctx.UserContext(), request, offset, limit, ctx.Query("filter"))
		if err != nil {
			return ctx.Status(http.StatusInternalServerError).JSON(api.PickerSystemError{Errors: []string{err.Error()}})
		}
		return ctx.Status(http.StatusOK).JSON(items)
	})

	app.Post("/v1/resources/validate", func(ctx *fiber.Ctx) error {
		request := new(api.PickerValidationRequest)
		if err := json.Unmarshal(ctx.Body(), request); err != nil {
			return ctx.Status(http.StatusBadRequest).JSON(api.PickerMalformedRequestError{
				Errors: []string{"Unable to parse the request body.", err.Error()},
			})
		}

		validationError, err := picker.ValidateTerms(ctx.UserContext(), request)
		switch {
		case err != nil:
			return ctx.Status(http.StatusInternalServerError).JSON(api.PickerSystemError{Errors: []string{err.Error()}})
		case validationError != nil:
			return ctx.Status(http.StatusBadRequest).JSON(validationError)
		}

		return ctx.Status(http.StatusOK).JSON("Validation successful")
	})
}
