package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/services"
)

const (
	authCookieName      = "nutritrack_auth"
	clinicianCookieName = "nutritrack_clinician"
	contextSessionKey   = "current_session"
)

func currentSession(c *fiber.Ctx) (*services.Session, bool) {
	session, ok := c.Locals(contextSessionKey).(*services.Session)
	return session, ok
}

// currentUserID returns the identity bound to the request's session.
func currentUserID(c *fiber.Ctx) (string, bool) {
	session, ok := currentSession(c)
	if !ok {
		return "", false
	}
	return session.CurrentIdentity()
}
