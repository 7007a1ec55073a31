package api

import "github.com/gofiber/fiber/v2"

// ClinicianOnly requires a clinician unlock issued to the same session.
func (handler *Handler) ClinicianOnly(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	sessionKey, err := handler.sessionKeyFromCookie(c, clinicianCookieName, tokenPurposeClinician)
	if err != nil || sessionKey != session.Key() {
		return apiError(c, fiber.StatusForbidden, "clinician access required")
	}
	return c.Next()
}
