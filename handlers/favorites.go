package handlers

import (
	"errors"
	"strings"

	"finques-lisa/app"
	"finques-lisa/database"
	"finques-lisa/middleware"
	"finques-lisa/models"

	"github.com/gofiber/fiber/v2"
)

type favoriteRequest struct {
	PropertyID string `json:"property_id"`
	Email      string `json:"email"`
}

// favoriteOwner prefers an explicit email and falls back to the visitor cookie
func favoriteOwner(c *fiber.Ctx, email string) models.FavoriteOwner {
	if email = strings.TrimSpace(email); email != "" {
		return models.FavoriteOwner{UserEmail: email}
	}
	return models.FavoriteOwner{SessionID: middleware.GetVisitorID(c)}
}

func ListFavorites(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		properties, err := a.Favorites.List(favoriteOwner(c, c.Query("email")))
		if err != nil {
			return handleError(c, "Failed to fetch favorites", err)
		}
		return success(c, fiber.Map{
			"properties": orEmpty(properties),
			"count":      len(properties),
		})
	}
}

// AddFavorite is idempotent; an unknown property is a 409
func AddFavorite(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req favoriteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if strings.TrimSpace(req.PropertyID) == "" {
			return badRequest(c, "property_id is required")
		}

		err := a.Favorites.Add(req.PropertyID, favoriteOwner(c, req.Email))
		if errors.Is(err, database.ErrConstraint) {
			return conflict(c, "Unknown property")
		}
		if err != nil {
			return handleError(c, "Failed to add favorite", err)
		}
		return created(c, fiber.Map{"success": true, "property_id": req.PropertyID})
	}
}

func RemoveFavorite(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		propertyID := c.Params("propertyId")
		removed, err := a.Favorites.Remove(propertyID, favoriteOwner(c, c.Query("email")))
		if err != nil {
			return handleError(c, "Failed to remove favorite", err)
		}
		if !removed {
			return notFound(c, "Favorite not found")
		}
		return success(c, fiber.Map{"success": true, "property_id": propertyID})
	}
}
