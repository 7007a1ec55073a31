package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Fruit(c *fiber.Ctx) error {
	if handler.upstreams.Fruits == nil {
		return upstreamUnavailable(c, "fruit lookup")
	}

	handler.ensureDependencies()
	fruit, err := handler.coachService.LookupFruit(c.UserContext(), c.Params("name"))
	if err != nil {
		return handler.respondServiceError(c, err, "failed to look up fruit")
	}
	return c.JSON(fruit)
}

func (handler *Handler) RandomImage(c *fiber.Ctx) error {
	if handler.upstreams.Images == nil {
		return upstreamUnavailable(c, "image service")
	}

	handler.ensureDependencies()
	url, err := handler.coachService.RandomImage(c.UserContext())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load image")
	}
	return c.JSON(fiber.Map{"url": url})
}
