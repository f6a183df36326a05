package middleware

import (
	"log/slog"
	"strings"

	"finques-lisa/models"
	"finques-lisa/session"

	"github.com/gofiber/fiber/v2"
)

const SessionCookie = "session_id"

// AuthRequired rejects requests without a live admin session. The session id is read from
// the session_id cookie first, then from an "Authorization: Bearer <session id>" header.
func AuthRequired(sessionStore *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := SessionID(c)
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}

		sess, err := sessionStore.Get(sessionID)
		if err != nil {
			slog.Error("Session lookup failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to verify session",
			})
		}
		if sess == nil {
			c.ClearCookie(SessionCookie)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired session",
			})
		}

		c.Locals("userID", sess.UserID)
		c.Locals("username", sess.Username)
		c.Locals("session", sess)
		return c.Next()
	}
}

// SessionID returns the session id presented by the client, if any
func SessionID(c *fiber.Ctx) string {
	if id := c.Cookies(SessionCookie); id != "" {
		return id
	}

	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}

func GetSession(c *fiber.Ctx) *models.Session {
	sess, _ := c.Locals("session").(*models.Session)
	return sess
}
