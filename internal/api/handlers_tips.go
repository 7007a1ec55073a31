package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) Tips(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	tips, err := handler.tipService.ListTips(userID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load tips")
	}
	return c.JSON(fiber.Map{"tips": tips})
}

func (handler *Handler) GenerateTip(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.upstreams.Generator == nil {
		return upstreamUnavailable(c, "tip generation")
	}

	handler.ensureDependencies()
	tip, err := handler.tipService.GenerateTip(c.UserContext(), userID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to generate tip")
	}
	handler.logger.Debug("tip generated", zap.String("user_id", userID))
	return c.Status(fiber.StatusCreated).JSON(tip)
}
