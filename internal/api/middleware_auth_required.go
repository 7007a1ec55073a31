package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/services"
	"go.uber.org/zap"
)

// AuthRequired restores the request's Session and rejects anonymous callers.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	sessionKey, err := handler.sessionKeyFromCookie(c, authCookieName, tokenPurposeAuth)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	session := services.NewSession(handler.repositories.Sessions, sessionKey)
	if err := session.Init(); err != nil {
		handler.logger.Error("restore session failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to restore session")
	}
	if _, loggedIn := session.CurrentIdentity(); !loggedIn {
		handler.clearAuthCookies(c)
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextSessionKey, session)
	return c.Next()
}
