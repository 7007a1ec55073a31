package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/services"
)

type categoryOption struct {
	Value models.FoodCategory `json:"value"`
	Label string              `json:"label"`
}

type personaOption struct {
	Value       models.Persona `json:"value"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
}

type timingOption struct {
	Question models.TimingQuestion `json:"question"`
	Prompt   string                `json:"prompt"`
}

func questionnaireOptions() fiber.Map {
	return fiber.Map{
		"food_categories": lo.Map(models.FoodCategories(), func(category models.FoodCategory, _ int) categoryOption {
			return categoryOption{Value: category, Label: category.Label()}
		}),
		"personas": lo.Map(models.Personas(), func(persona models.Persona, _ int) personaOption {
			return personaOption{Value: persona, Name: persona.DisplayName(), Description: persona.Description()}
		}),
		"timing_questions": lo.Map(models.TimingQuestions(), func(question models.TimingQuestion, _ int) timingOption {
			return timingOption{Question: question, Prompt: question.Prompt()}
		}),
	}
}

func questionnairePayload(questionnaire *services.Questionnaire, submitted bool) fiber.Map {
	var persona *models.Persona
	if selected, ok := questionnaire.Persona(); ok {
		persona = &selected
	}
	return fiber.Map{
		"submitted":       submitted,
		"food_categories": questionnaire.Categories(),
		"persona":         persona,
		"timing_answers":  questionnaire.TimingAnswers(),
		"can_submit":      questionnaire.CanSubmit(),
		"options":         questionnaireOptions(),
	}
}

func (handler *Handler) Questionnaire(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	questionnaire, found, err := handler.questionnaireSvc.Load(userID)
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load questionnaire")
	}
	return c.JSON(questionnairePayload(questionnaire, found))
}

func (handler *Handler) SubmitQuestionnaire(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := questionnaireInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	questionnaire, err := services.FromInput(services.QuestionnaireInput{
		FoodCategories: input.FoodCategories,
		Persona:        input.Persona,
		SleepTime:      input.SleepTime,
		WakeUpTime:     input.WakeUpTime,
		BiggestMeal:    input.BiggestMeal,
	})
	if err != nil {
		return handler.respondServiceError(c, err, "failed to read questionnaire")
	}

	handler.ensureDependencies()
	if _, err := handler.questionnaireSvc.Submit(userID, questionnaire); err != nil {
		return handler.respondServiceError(c, err, "failed to save questionnaire")
	}
	return c.JSON(questionnairePayload(questionnaire, true))
}
