package handlers

import (
	"errors"

	"finques-lisa/app"
	"finques-lisa/middleware"
	"finques-lisa/models"
	"finques-lisa/services"

	"github.com/gofiber/fiber/v2"
)

// Login checks admin credentials and sets the session cookie. The session id is also
// returned for clients that send it as a Bearer token.
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		sess, err := a.Auth.Login(req)
		if errors.Is(err, services.ErrInvalidCredentials) {
			return unauthorized(c, "Invalid username or password")
		}
		if err != nil {
			return handleError(c, "Login failed", err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    sess.ID,
			Expires:  sess.ExpiresAt,
			HTTPOnly: true,
			Secure:   a.SecureCookies,
			SameSite: "Lax",
			Path:     "/",
		})

		return success(c, fiber.Map{
			"success":    true,
			"token":      sess.ID,
			"expires_at": sess.ExpiresAt,
			"user": fiber.Map{
				"id":       sess.UserID,
				"username": sess.Username,
			},
		})
	}
}

func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Auth.Logout(middleware.SessionID(c)); err != nil {
			a.Logger.Warn("failed to delete session", "error", err)
		}

		c.ClearCookie(middleware.SessionCookie)
		return success(c, fiber.Map{"success": true})
	}
}

// Me returns the admin behind the current session
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := middleware.SessionID(c)
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
		}

		user, err := a.Auth.Me(sessionID)
		if errors.Is(err, services.ErrSessionNotFound) {
			c.ClearCookie(middleware.SessionCookie)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
		}
		if err != nil {
			return handleError(c, "Failed to load session", err)
		}

		return success(c, fiber.Map{
			"authenticated": true,
			"user":          user,
		})
	}
}
