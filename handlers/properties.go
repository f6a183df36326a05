package handlers

import (
	"strconv"
	"strings"

	"finques-lisa/app"
	"finques-lisa/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const maxPageSize = 100

// parsePropertyFilters reads the listing filters from the query string. Malformed numbers
// are rejected rather than ignored.
func parsePropertyFilters(c *fiber.Ctx) (models.PropertyFilters, error) {
	var filters models.PropertyFilters
	if err := c.QueryParser(&filters); err != nil {
		return filters, fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}

	if filters.Limit < 0 || filters.Offset < 0 {
		return filters, fiber.NewError(fiber.StatusBadRequest, "limit and offset must not be negative")
	}
	if filters.Limit > maxPageSize {
		filters.Limit = maxPageSize
	}

	for name, dst := range map[string]**decimal.Decimal{
		"min_price": &filters.MinPrice,
		"max_price": &filters.MaxPrice,
	} {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			continue
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, fiber.NewError(fiber.StatusBadRequest, name+" must be a number")
		}
		*dst = &price
	}

	if raw := strings.TrimSpace(c.Query("bedrooms")); raw != "" && raw != "all" {
		bedrooms, err := strconv.Atoi(raw)
		if err != nil || bedrooms < 0 {
			return filters, fiber.NewError(fiber.StatusBadRequest, "bedrooms must be a non-negative integer")
		}
		filters.Bedrooms = &bedrooms
	}

	return filters, nil
}

func filterError(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return badRequest(c, e.Message)
	}
	return badRequest(c, "Invalid query parameters")
}

// ListProperties returns active properties matching the query filters
func ListProperties(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters, err := parsePropertyFilters(c)
		if err != nil {
			return filterError(c, err)
		}

		properties, err := a.Properties.List(filters)
		if err != nil {
			return handleError(c, "Failed to fetch properties", err)
		}

		return success(c, fiber.Map{
			"properties": orEmpty(properties),
			"count":      len(properties),
		})
	}
}

// SearchProperties matches q against title, location, description and reference code
func SearchProperties(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters, err := parsePropertyFilters(c)
		if err != nil {
			return filterError(c, err)
		}

		term := strings.TrimSpace(c.Query("q"))
		properties, err := a.Properties.Search(term, filters)
		if err != nil {
			return handleError(c, "Failed to search properties", err)
		}

		return success(c, fiber.Map{
			"query":      term,
			"properties": orEmpty(properties),
			"count":      len(properties),
		})
	}
}

func FeaturedProperties(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 6)
		if limit < 1 {
			limit = 6
		}
		limit = min(limit, maxPageSize)

		properties, err := a.Properties.Featured(limit)
		if err != nil {
			return handleError(c, "Failed to fetch featured properties", err)
		}

		return success(c, fiber.Map{"properties": orEmpty(properties)})
	}
}

// GetProperty returns a public listing by id. Inactive listings are hidden.
func GetProperty(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		property, err := a.Properties.Get(c.Params("id"))
		if err != nil {
			return handleError(c, "Failed to fetch property", err)
		}
		if property == nil || !property.IsActive {
			return notFound(c, "Property not found")
		}
		return success(c, fiber.Map{"property": property})
	}
}

func GetPropertyBySlug(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		property, err := a.Properties.GetBySlug(c.Params("slug"))
		if err != nil {
			return handleError(c, "Failed to fetch property", err)
		}
		if property == nil || !property.IsActive {
			return notFound(c, "Property not found")
		}
		return success(c, fiber.Map{"property": property})
	}
}

func PropertyTypes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		types, err := a.Properties.PropertyTypes()
		if err != nil {
			return handleError(c, "Failed to fetch property types", err)
		}
		return success(c, fiber.Map{"property_types": orEmpty(types)})
	}
}

func Locations(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locations, err := a.Properties.Locations()
		if err != nil {
			return handleError(c, "Failed to fetch locations", err)
		}
		return success(c, fiber.Map{"locations": orEmpty(locations)})
	}
}

// PriceRange returns min and max prices for operation_type (sale when omitted)
func PriceRange(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		priceRange, err := a.Properties.PriceRange(c.Query("operation_type"))
		if err != nil {
			return handleError(c, "Failed to fetch price range", err)
		}
		return success(c, fiber.Map{"price_range": priceRange})
	}
}
