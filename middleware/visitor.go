package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const VisitorCookie = "visitor_id"

// Visitor gives every anonymous browser a stable id, used to own favorites
// without an account.
func Visitor(secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		visitorID := c.Cookies(VisitorCookie)
		if _, err := uuid.Parse(visitorID); err != nil {
			visitorID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     VisitorCookie,
				Value:    visitorID,
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				HTTPOnly: true,
				Secure:   secure,
				SameSite: "Lax",
			})
		}

		c.Locals("visitorID", visitorID)
		return c.Next()
	}
}

func GetVisitorID(c *fiber.Ctx) string {
	visitorID, ok := c.Locals("visitorID").(string)
	if !ok {
		return ""
	}
	return visitorID
}
