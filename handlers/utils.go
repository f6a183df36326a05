package handlers

import (
	"errors"
	"log/slog"

	"finques-lisa/database"
	"finques-lisa/middleware"
	"finques-lisa/services"
	"finques-lisa/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, verrs validator.ValidationErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"fields": verrs.Fields(),
	})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", middleware.RequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// handleError maps service and repository errors to a status code. message is used for
// the 500 response.
func handleError(c *fiber.Ctx, message string, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return validationError(c, verrs)
	case errors.Is(err, services.ErrPropertyNotFound):
		return notFound(c, "Property not found")
	case errors.Is(err, services.ErrContactNotFound):
		return notFound(c, "Contact not found")
	case errors.Is(err, services.ErrInvalidFavoriteOwner):
		return badRequest(c, "A visitor session or an email is required")
	case errors.Is(err, database.ErrConstraint):
		slog.Warn("constraint violation", "request_id", middleware.RequestID(c), "error", err)
		return conflict(c, "Request conflicts with stored data")
	}
	return serverErrorWithDetails(c, message, err)
}

// orEmpty keeps empty reads serialized as [] instead of null
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
