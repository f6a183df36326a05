package handlers

import (
	"errors"

	"finques-lisa/app"
	"finques-lisa/database"
	"finques-lisa/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitContact stores a lead from the public contact form
func SubmitContact(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in models.ContactInput
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "Invalid request body")
		}

		contact, err := a.Contacts.Save(in)
		if errors.Is(err, database.ErrConstraint) {
			return conflict(c, "Unknown property")
		}
		if err != nil {
			return handleError(c, "Failed to save contact", err)
		}

		return created(c, fiber.Map{
			"success": true,
			"contact": contact,
		})
	}
}
