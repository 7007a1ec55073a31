package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/nutritrack/internal/models"
)

const timeOfDayLayout = "15:04"

// Questionnaire is one in-progress food intake submission.
type Questionnaire struct {
	categories map[models.FoodCategory]struct{}
	persona    *models.Persona
	timings    []models.TimingAnswer
}

func NewQuestionnaire() *Questionnaire {
	return &Questionnaire{
		categories: make(map[models.FoodCategory]struct{}),
		timings:    models.EmptyTimingAnswers(),
	}
}

// QuestionnaireFromIntake prefills a questionnaire from a stored record.
func QuestionnaireFromIntake(intake models.FoodIntake) *Questionnaire {
	questionnaire := NewQuestionnaire()
	for _, category := range intake.FoodCategories {
		if category.Valid() {
			questionnaire.categories[category] = struct{}{}
		}
	}
	if intake.Persona != nil && intake.Persona.Valid() {
		persona := *intake.Persona
		questionnaire.persona = &persona
	}
	for _, stored := range intake.TimingAnswers {
		if slot := questionnaire.slot(stored.Question); slot >= 0 {
			questionnaire.timings[slot].Answer = stored.Answer
		}
	}
	return questionnaire
}

// SetTiming records an answer after the conflict and sleep-window checks pass.
// A failed check leaves every slot unchanged.
func (questionnaire *Questionnaire) SetTiming(question models.TimingQuestion, raw string) error {
	slot := questionnaire.slot(question)
	if slot < 0 {
		return ErrUnknownTimingQuestion
	}
	candidate, err := normalizeTimeOfDay(raw)
	if err != nil {
		return err
	}

	for index, existing := range questionnaire.timings {
		if index != slot && existing.Answered() && existing.Answer == candidate {
			return ErrTimingConflict
		}
	}

	if question == models.TimingBiggestMeal {
		sleep := questionnaire.answer(models.TimingSleep)
		wake := questionnaire.answer(models.TimingWakeUp)
		if sleep == "" || wake == "" {
			return ErrSleepTimesRequired
		}
		if withinSleepWindow(candidate, sleep, wake) {
			return ErrBiggestMealDuringSleep
		}
	}

	questionnaire.timings[slot].Answer = candidate
	return nil
}

func (questionnaire *Questionnaire) ToggleCategory(category models.FoodCategory) error {
	if !category.Valid() {
		return ErrUnknownFoodCategory
	}
	if _, selected := questionnaire.categories[category]; selected {
		delete(questionnaire.categories, category)
		return nil
	}
	questionnaire.categories[category] = struct{}{}
	return nil
}

func (questionnaire *Questionnaire) SelectPersona(persona models.Persona) error {
	if !persona.Valid() {
		return ErrUnknownPersona
	}
	questionnaire.persona = &persona
	return nil
}

func (questionnaire *Questionnaire) CanSubmit() bool {
	return len(questionnaire.MissingFields()) == 0
}

// MissingFields names every unmet submission condition, empty when complete.
func (questionnaire *Questionnaire) MissingFields() []string {
	missing := make([]string, 0, 5)
	if len(questionnaire.categories) == 0 {
		missing = append(missing, "food category")
	}
	if questionnaire.persona == nil {
		missing = append(missing, "persona")
	}
	for _, timing := range questionnaire.timings {
		if !timing.Answered() {
			missing = append(missing, timingFieldName(timing.Question))
		}
	}
	return missing
}

// Categories returns the selection in catalog order.
func (questionnaire *Questionnaire) Categories() []models.FoodCategory {
	selected := make([]models.FoodCategory, 0, len(questionnaire.categories))
	for _, category := range models.FoodCategories() {
		if _, ok := questionnaire.categories[category]; ok {
			selected = append(selected, category)
		}
	}
	return selected
}

func (questionnaire *Questionnaire) Persona() (models.Persona, bool) {
	if questionnaire.persona == nil {
		return "", false
	}
	return *questionnaire.persona, true
}

func (questionnaire *Questionnaire) TimingAnswers() []models.TimingAnswer {
	return append([]models.TimingAnswer(nil), questionnaire.timings...)
}

func (questionnaire *Questionnaire) toIntake(patientID string) models.FoodIntake {
	intake := models.FoodIntake{
		PatientID:      patientID,
		FoodCategories: questionnaire.Categories(),
		TimingAnswers:  questionnaire.TimingAnswers(),
	}
	if persona, ok := questionnaire.Persona(); ok {
		intake.Persona = &persona
	}
	return intake
}

func (questionnaire *Questionnaire) slot(question models.TimingQuestion) int {
	for index, timing := range questionnaire.timings {
		if timing.Question == question {
			return index
		}
	}
	return -1
}

func (questionnaire *Questionnaire) answer(question models.TimingQuestion) string {
	if slot := questionnaire.slot(question); slot >= 0 {
		return questionnaire.timings[slot].Answer
	}
	return ""
}

func normalizeTimeOfDay(raw string) (string, error) {
	parsed, err := time.Parse(timeOfDayLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidTimeFormat
	}
	return parsed.Format(timeOfDayLayout), nil
}

// withinSleepWindow reports whether candidate lies strictly inside the sleep interval.
// The interval wraps past midnight when sleep is not earlier than wake.
// All three values are normalized HH:MM strings, so lexical order equals clock order.
func withinSleepWindow(candidate string, sleep string, wake string) bool {
	if sleep < wake {
		return candidate > sleep && candidate < wake
	}
	return candidate > sleep || candidate < wake
}

func timingFieldName(question models.TimingQuestion) string {
	switch question {
	case models.TimingSleep:
		return "sleep time"
	case models.TimingWakeUp:
		return "wake up time"
	case models.TimingBiggestMeal:
		return "biggest meal time"
	default:
		return strings.ToLower(string(question))
	}
}

func incompleteQuestionnaireError(missing []string) *ActionError {
	return &ActionError{
		Kind:    ErrQuestionnaireIncomplete.Kind,
		Message: ErrQuestionnaireIncomplete.Message,
		Details: missing,
	}
}
