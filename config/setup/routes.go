package setup

import (
	"time"

	"finques-lisa/app"
	"finques-lisa/handlers"
	"finques-lisa/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	// Public listings. Static segments are registered before :id.
	properties := api.Group("/properties")
	properties.Get("/", handlers.ListProperties(application))
	properties.Get("/featured", handlers.FeaturedProperties(application))
	properties.Get("/search", handlers.SearchProperties(application))
	properties.Get("/types", handlers.PropertyTypes(application))
	properties.Get("/locations", handlers.Locations(application))
	properties.Get("/price-range", handlers.PriceRange(application))
	properties.Get("/slug/:slug", handlers.GetPropertyBySlug(application))
	properties.Get("/:id", handlers.GetProperty(application))

	api.Post("/contacts", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many contact requests, try again later",
			})
		},
	}), handlers.SubmitContact(application))

	favorites := api.Group("/favorites", middleware.Visitor(application.SecureCookies))
	favorites.Get("/", handlers.ListFavorites(application))
	favorites.Post("/", handlers.AddFavorite(application))
	favorites.Delete("/:propertyId", handlers.RemoveFavorite(application))

	// Auth routes
	api.Post("/auth/login", handlers.Login(application))
	api.Post("/auth/logout", handlers.Logout(application))
	api.Get("/auth/me", handlers.Me(application))

	// Admin routes
	admin := api.Group("/admin", middleware.AuthRequired(application.SessionStore))
	admin.Post("/properties", handlers.CreateProperty(application))
	admin.Post("/properties/validate", handlers.ValidateProperty(application))
	admin.Get("/properties/:id", handlers.AdminGetProperty(application))
	admin.Put("/properties/:id", handlers.UpdateProperty(application))
	admin.Delete("/properties/:id", handlers.DeleteProperty(application))
	admin.Post("/properties/:id/toggle", handlers.ToggleProperty(application))
	admin.Get("/stats", handlers.GetStats(application))
	admin.Get("/contacts", handlers.ListContacts(application))
	admin.Post("/contacts/:id/read", handlers.MarkContactRead(application))
	admin.Post("/migrate", handlers.MigrateLegacy(application))
}
