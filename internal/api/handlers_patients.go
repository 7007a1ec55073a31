package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nutritrack/internal/services"
)

func (handler *Handler) RegisteredPatients(c *fiber.Ctx) error {
	handler.ensureDependencies()
	userIDs, err := handler.authService.RegisteredUserIDs()
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load patients")
	}
	return c.JSON(fiber.Map{"user_ids": nonNilStrings(userIDs)})
}

func (handler *Handler) UnregisteredPatients(c *fiber.Ctx) error {
	handler.ensureDependencies()
	userIDs, err := handler.authService.UnregisteredUserIDs()
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load patients")
	}
	return c.JSON(fiber.Map{"user_ids": nonNilStrings(userIDs)})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	profile, err := handler.authService.ProfileInfo(userID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load profile")
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateDetails(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	userID, _ := session.CurrentIdentity()

	input := updateDetailsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	patient, err := handler.authService.UpdateDetails(userID, session.Key(), services.UpdateDetailsInput{
		Name:            input.Name,
		CurrentPassword: input.CurrentPassword,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		return handler.respondServiceError(c, err, "failed to update details")
	}
	if err := session.Rename(*patient.Name); err != nil {
		return handler.respondServiceError(c, err, "failed to update session")
	}
	return c.JSON(fiber.Map{"ok": true, "name": *patient.Name})
}

func (handler *Handler) PushToken(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := pushTokenInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.authService.SetPushToken(userID, input.Token); err != nil {
		return handler.respondServiceError(c, err, "failed to store push token")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
