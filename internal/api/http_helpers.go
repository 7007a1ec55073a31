package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/services"
	"go.uber.org/zap"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError renders a service failure. ActionErrors carry a user-facing
// message; anything else is logged and hidden behind a generic 500.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	var actionErr *services.ActionError
	if !errors.As(err, &actionErr) {
		handler.logger.Error(fallback, zap.String("path", c.Path()), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}

	status := statusForKind(actionErr.Kind)
	if status == fiber.StatusBadGateway {
		handler.logger.Warn("upstream failure", zap.String("path", c.Path()), zap.Strings("details", actionErr.Details))
	}
	if len(actionErr.Details) > 0 && actionErr.Kind == services.ErrValidation {
		return c.Status(status).JSON(fiber.Map{"error": actionErr.Message, "details": actionErr.Details})
	}
	return apiError(c, status, actionErr.Message)
}

func statusForKind(kind error) int {
	switch {
	case errors.Is(kind, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(kind, services.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(kind, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(kind, services.ErrUpstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// upstreamUnavailable answers for a route whose outbound client is not configured.
func upstreamUnavailable(c *fiber.Ctx, name string) error {
	return apiError(c, fiber.StatusServiceUnavailable, name+" is not configured")
}
