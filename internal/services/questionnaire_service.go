package services

import (
	"errors"

	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/models"
)

type FoodIntakeRepository interface {
	FindByPatientID(patientID string) (models.FoodIntake, bool, error)
	Insert(intake *models.FoodIntake) error
	Update(intake *models.FoodIntake) error
}

// QuestionnaireInput is a whole submission as sent by a client.
type QuestionnaireInput struct {
	FoodCategories []string
	Persona        string
	SleepTime      string
	WakeUpTime     string
	BiggestMeal    string
}

type QuestionnaireService struct {
	intakes FoodIntakeRepository
	locks   *keyedMutex
}

func NewQuestionnaireService(intakes FoodIntakeRepository) *QuestionnaireService {
	return &QuestionnaireService{intakes: intakes, locks: newKeyedMutex()}
}

// Load returns the stored answers for patientID, or an empty questionnaire.
func (service *QuestionnaireService) Load(patientID string) (*Questionnaire, bool, error) {
	intake, found, err := service.intakes.FindByPatientID(patientID)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return NewQuestionnaire(), false, nil
	}
	return QuestionnaireFromIntake(intake), true, nil
}

// Submit stores a complete questionnaire, inserting or updating the patient's single record.
func (service *QuestionnaireService) Submit(patientID string, questionnaire *Questionnaire) (models.FoodIntake, error) {
	if missing := questionnaire.MissingFields(); len(missing) > 0 {
		return models.FoodIntake{}, incompleteQuestionnaireError(missing)
	}

	unlock := service.locks.Lock(patientID)
	defer unlock()

	intake := questionnaire.toIntake(patientID)
	_, exists, err := service.intakes.FindByPatientID(patientID)
	if err != nil {
		return models.FoodIntake{}, err
	}
	if exists {
		err = service.intakes.Update(&intake)
	} else {
		err = service.intakes.Insert(&intake)
	}
	switch {
	case errors.Is(err, db.ErrRecordExists):
		return models.FoodIntake{}, ErrFoodIntakeExists
	case errors.Is(err, db.ErrRecordMissing):
		return models.FoodIntake{}, ErrFoodIntakeMissing
	case err != nil:
		return models.FoodIntake{}, err
	}
	return intake, nil
}

// FromInput replays a client submission through the questionnaire operations,
// so every ordering and window rule applies. Blank timing answers stay unanswered.
func FromInput(input QuestionnaireInput) (*Questionnaire, error) {
	questionnaire := NewQuestionnaire()

	for _, raw := range input.FoodCategories {
		category, ok := models.ParseFoodCategory(raw)
		if !ok {
			return nil, ErrUnknownFoodCategory
		}
		if _, selected := questionnaire.categories[category]; selected {
			continue
		}
		if err := questionnaire.ToggleCategory(category); err != nil {
			return nil, err
		}
	}

	if input.Persona != "" {
		persona, ok := models.ParsePersona(input.Persona)
		if !ok {
			return nil, ErrUnknownPersona
		}
		if err := questionnaire.SelectPersona(persona); err != nil {
			return nil, err
		}
	}

	timings := []struct {
		question models.TimingQuestion
		answer   string
	}{
		{question: models.TimingSleep, answer: input.SleepTime},
		{question: models.TimingWakeUp, answer: input.WakeUpTime},
		{question: models.TimingBiggestMeal, answer: input.BiggestMeal},
	}
	for _, timing := range timings {
		if timing.answer == "" {
			continue
		}
		if err := questionnaire.SetTiming(timing.question, timing.answer); err != nil {
			return nil, err
		}
	}

	return questionnaire, nil
}
