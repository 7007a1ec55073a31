package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/segmentio/ksuid"
	"github.com/terraincognita07/nutritrack/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	patient, err := handler.authService.Register(services.RegisterInput{
		UserID:          input.UserID,
		PhoneNumber:     input.PhoneNumber,
		Name:            input.Name,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		return handler.respondServiceError(c, err, "failed to register")
	}

	handler.logger.Info("patient registered", zap.String("user_id", patient.UserID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "user_id": patient.UserID})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	now := time.Now()
	limiterKeys := attemptKeys(c, input.UserID)
	if handler.loginLimiter.blocked(now, limiterKeys...) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	handler.ensureDependencies()
	patient, err := handler.authService.Login(input.UserID, input.Password)
	if err != nil {
		handler.loginLimiter.recordFailure(now, limiterKeys...)
		return handler.respondServiceError(c, err, "failed to log in")
	}
	handler.loginLimiter.clear(limiterKeys...)

	name := ""
	if patient.Name != nil {
		name = *patient.Name
	}
	session := services.NewSession(handler.repositories.Sessions, ksuid.New().String())
	if err := session.Login(patient.UserID, name); err != nil {
		return handler.respondServiceError(c, err, "failed to create session")
	}
	if err := handler.setAuthCookie(c, session.Key()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"ok": true, "user_id": patient.UserID, "name": name})
}
