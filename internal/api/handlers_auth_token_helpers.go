package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) setAuthCookie(c *fiber.Ctx, sessionKey string) error {
	return handler.setTokenCookie(c, authCookieName, sessionKey, tokenPurposeAuth, authTokenTTL)
}

func (handler *Handler) setClinicianCookie(c *fiber.Ctx, sessionKey string) error {
	return handler.setTokenCookie(c, clinicianCookieName, sessionKey, tokenPurposeClinician, clinicianTokenTTL)
}

func (handler *Handler) setTokenCookie(c *fiber.Ctx, name string, sessionKey string, purpose string, ttl time.Duration) error {
	now := time.Now()
	value, err := handler.cookieCodec.issue(purpose, sessionKey, ttl, now)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(ttl),
	})
	return nil
}

func (handler *Handler) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{authCookieName, clinicianCookieName} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HTTPOnly: true,
			Secure:   handler.cookieSecure,
			SameSite: "Lax",
			Expires:  time.Now().Add(-1 * time.Hour),
		})
	}
}
