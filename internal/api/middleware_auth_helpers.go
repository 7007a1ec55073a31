package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// sessionKeyFromCookie returns the session key carried by a valid cookie of the given purpose.
func (handler *Handler) sessionKeyFromCookie(c *fiber.Ctx, cookieName string, purpose string) (string, error) {
	rawValue := strings.TrimSpace(c.Cookies(cookieName))
	if rawValue == "" {
		return "", errors.New("missing auth cookie")
	}
	return handler.cookieCodec.verify(purpose, rawValue, time.Now())
}
