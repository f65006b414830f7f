package controllers

import (
	"selforder/apperrors"

	"github.com/gofiber/fiber/v2"
)

// errorResponse maps domain errors to HTTP statuses: NotFound to 404,
// business-rule violations to 409, anything else to 500.
func errorResponse(ctx *fiber.Ctx, err error) error {
	switch {
	case apperrors.IsNotFound(err):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsDomain(err):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
