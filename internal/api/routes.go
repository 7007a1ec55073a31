package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	patients := api.Group("/patients")
	patients.Get("/registered", handler.RegisteredPatients)
	patients.Get("/unregistered", handler.UnregisteredPatients)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/session", handler.AuthRequired, handler.Session)

	me := api.Group("/me", handler.AuthRequired)
	me.Get("", handler.Me)
	me.Post("/details", handler.UpdateDetails)
	me.Post("/push-token", handler.PushToken)

	scores := api.Group("/scores", handler.AuthRequired)
	scores.Get("", handler.Scores)
	scores.Get("/fruit", handler.FruitStatus)

	questionnaire := api.Group("/questionnaire", handler.AuthRequired)
	questionnaire.Get("", handler.Questionnaire)
	questionnaire.Post("", handler.SubmitQuestionnaire)

	tips := api.Group("/tips", handler.AuthRequired)
	tips.Get("", handler.Tips)
	tips.Post("/generate", handler.GenerateTip)

	api.Get("/fruits/:name", handler.AuthRequired, handler.Fruit)
	api.Get("/images/random", handler.AuthRequired, handler.RandomImage)

	clinician := api.Group("/clinician", handler.AuthRequired)
	clinician.Post("/unlock", handler.UnlockClinician)
	clinician.Get("/averages", handler.ClinicianOnly, handler.ClinicianAverages)
	clinician.Post("/patterns", handler.ClinicianOnly, handler.ClinicianPatterns)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
