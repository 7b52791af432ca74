// Package handlers exposes the HTTP surface: thin fiber handlers that decode
// requests, call the services layer, and wrap results in the JSON envelope.
package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/pathwaycare/intake-api/internal/types"
	"github.com/pathwaycare/intake-api/internal/utils"
)

// ErrorHandler is the app-wide fiber error handler. It renders the error
// taxonomy into the response envelope and hides internal detail behind a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var reassign *types.ReassignmentRequiredError
	if errors.As(err, &reassign) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "User has associated records that must be reassigned before deletion",
			"data": fiber.Map{
				"requiresReassignment": true,
				"intakeFormCount":      reassign.IntakeFormCount,
				"documentCount":        reassign.DocumentCount,
			},
		})
	}

	var custom *types.CustomError
	if errors.As(err, &custom) {
		return c.Status(custom.Code).JSON(utils.Envelope{Success: false, Message: custom.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(utils.Envelope{Success: false, Message: fiberErr.Message})
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).
		JSON(utils.Envelope{Success: false, Message: "Internal server error"})
}
