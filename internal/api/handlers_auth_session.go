package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/services"
)

func (handler *Handler) Logout(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if err := session.Logout(); err != nil {
		return handler.respondServiceError(c, err, "failed to log out")
	}
	handler.clearAuthCookies(c)
	return c.JSON(fiber.Map{"ok": true})
}

// Session reports the identity bound to the caller's session.
func (handler *Handler) Session(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	userID, _ := session.CurrentIdentity()
	name, _ := session.CurrentName()
	return c.JSON(fiber.Map{"user_id": userID, "name": name})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	err := handler.authService.ResetPassword(services.ResetPasswordInput{
		UserID:          input.UserID,
		PhoneNumber:     input.PhoneNumber,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		return handler.respondServiceError(c, err, "failed to reset password")
	}
	return c.JSON(fiber.Map{"ok": true})
}
