package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UnlockClinician checks the admin password and grants clinician access to the caller's session.
func (handler *Handler) UnlockClinician(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID, _ := session.CurrentIdentity()
	now := time.Now()
	limiterKeys := attemptKeys(c, userID)
	if handler.adminLimiter.blocked(now, limiterKeys...) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	input := clinicianUnlockInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.clinicianService.AuthenticateAdmin(input.Password); err != nil {
		handler.adminLimiter.recordFailure(now, limiterKeys...)
		handler.logger.Warn("clinician unlock rejected", zap.String("user_id", userID))
		return handler.respondServiceError(c, err, "failed to unlock clinician view")
	}
	handler.adminLimiter.clear(limiterKeys...)

	if err := handler.setClinicianCookie(c, session.Key()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to unlock clinician view")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ClinicianAverages(c *fiber.Ctx) error {
	handler.ensureDependencies()
	averages, err := handler.clinicianService.AverageScores()
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load averages")
	}
	return c.JSON(averages)
}

func (handler *Handler) ClinicianPatterns(c *fiber.Ctx) error {
	if handler.upstreams.Generator == nil {
		return upstreamUnavailable(c, "pattern discovery")
	}

	handler.ensureDependencies()
	text, err := handler.clinicianService.DiscoverPatterns(c.UserContext())
	if err != nil {
		return handler.respondServiceError(c, err, "failed to discover patterns")
	}
	return c.JSON(fiber.Map{"text": text})
}
