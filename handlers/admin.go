package handlers

import (
	"errors"
	"strconv"

	"finques-lisa/app"
	"finques-lisa/middleware"
	"finques-lisa/models"
	"finques-lisa/storage"

	"github.com/gofiber/fiber/v2"
)

// CreateProperty stores a new listing. Slug and reference code are generated.
func CreateProperty(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in models.PropertyInput
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "Invalid request body")
		}

		property, err := a.Properties.Create(in)
		if err != nil {
			return handleError(c, "Failed to create property", err)
		}

		a.Logger.Info("property created by admin",
			"user_id", middleware.GetUserID(c),
			"property_id", property.ID,
		)
		return created(c, fiber.Map{"property": property})
	}
}

func UpdateProperty(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in models.PropertyInput
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "Invalid request body")
		}

		property, err := a.Properties.Update(c.Params("id"), in)
		if err != nil {
			return handleError(c, "Failed to update property", err)
		}
		return success(c, fiber.Map{"property": property})
	}
}

func DeleteProperty(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		deleted, err := a.Properties.Delete(id)
		if err != nil {
			return handleError(c, "Failed to delete property", err)
		}
		if !deleted {
			return notFound(c, "Property not found")
		}
		return success(c, fiber.Map{"success": true, "id": id})
	}
}

// ToggleProperty flips is_active and returns the listing as stored
func ToggleProperty(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		property, err := a.Properties.ToggleActive(c.Params("id"))
		if err != nil {
			return handleError(c, "Failed to toggle property", err)
		}
		return success(c, fiber.Map{"property": property})
	}
}

// AdminGetProperty returns a listing whether or not it is active
func AdminGetProperty(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		property, err := a.Properties.Get(c.Params("id"))
		if err != nil {
			return handleError(c, "Failed to fetch property", err)
		}
		if property == nil {
			return notFound(c, "Property not found")
		}
		return success(c, fiber.Map{"property": property})
	}
}

// ValidateProperty checks a payload without storing it
func ValidateProperty(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in models.PropertyInput
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "Invalid request body")
		}

		fields := a.Properties.ValidateProperty(in)
		return success(c, fiber.Map{
			"valid":  len(fields) == 0,
			"fields": fields,
		})
	}
}

func GetStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Properties.Stats()
		if err != nil {
			return handleError(c, "Failed to fetch stats", err)
		}
		return success(c, fiber.Map{"stats": stats})
	}
}

// ListContacts supports is_read, contact_type and limit query filters
func ListContacts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := models.ContactFilters{
			ContactType: c.Query("contact_type"),
			Limit:       c.QueryInt("limit", 0),
		}
		if filters.Limit < 0 || filters.Limit > maxPageSize {
			filters.Limit = maxPageSize
		}
		if raw := c.Query("is_read"); raw != "" {
			isRead, err := strconv.ParseBool(raw)
			if err != nil {
				return badRequest(c, "is_read must be true or false")
			}
			filters.IsRead = &isRead
		}

		contacts, err := a.Contacts.List(filters)
		if err != nil {
			return handleError(c, "Failed to fetch contacts", err)
		}
		return success(c, fiber.Map{
			"contacts": orEmpty(contacts),
			"count":    len(contacts),
		})
	}
}

func MarkContactRead(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contact, err := a.Contacts.MarkRead(c.Params("id"))
		if err != nil {
			return handleError(c, "Failed to update contact", err)
		}
		return success(c, fiber.Map{"contact": contact})
	}
}

// MigrateLegacy imports the legacy listings file. Per-record failures are part of the
// 200 response.
func MigrateLegacy(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := a.Migration.MigrateLegacy()
		if errors.Is(err, storage.ErrNoLegacyData) {
			return notFound(c, "No legacy data to migrate")
		}
		if err != nil {
			return handleError(c, "Failed to migrate legacy data", err)
		}
		return success(c, fiber.Map{"migration": result})
	}
}
