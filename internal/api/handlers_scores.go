package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Scores(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	breakdown, err := handler.scoreService.Breakdown(userID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load scores")
	}
	return c.JSON(breakdown)
}

func (handler *Handler) FruitStatus(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	status, err := handler.scoreService.FruitStatus(userID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load fruit status")
	}
	return c.JSON(status)
}
