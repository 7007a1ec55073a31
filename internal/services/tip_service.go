package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/models"
	"go.uber.org/zap"
)

const (
	tipPromptIntro       = "Generate a short encouraging message to help someone improve their food intake. The patient's health score info are:\n"
	tipPromptIntakeIntro = "\n\nThe patient's food intake info are:\n"
	notAvailable         = "Not Available"
	tipNotificationTitle = "New NutriCoach tip"
)

type TipRepository interface {
	FindByPatientID(patientID string) (models.NutriCoachTip, bool, error)
	Insert(log *models.NutriCoachTip) error
	Update(log *models.NutriCoachTip) error
}

type TipPatientReader interface {
	FindByUserID(userID string) (models.Patient, bool, error)
}

type TipIntakeReader interface {
	FindByPatientID(patientID string) (models.FoodIntake, bool, error)
}

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Notifier interface {
	Notify(ctx context.Context, token string, title string, body string) error
}

type TipService struct {
	tips      TipRepository
	patients  TipPatientReader
	intakes   TipIntakeReader
	generator TextGenerator
	notifier  Notifier
	clock     Clock
	logger    *zap.Logger
	locks     *keyedMutex
}

type TipServiceOptions struct {
	Patients  TipPatientReader
	Intakes   TipIntakeReader
	Generator TextGenerator
	Notifier  Notifier
	Clock     Clock
	Logger    *zap.Logger
}

func NewTipService(tips TipRepository, options TipServiceOptions) *TipService {
	clock := options.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TipService{
		tips:      tips,
		patients:  options.Patients,
		intakes:   options.Intakes,
		generator: options.Generator,
		notifier:  options.Notifier,
		clock:     clock,
		logger:    logger.Named("tips"),
		locks:     newKeyedMutex(),
	}
}

// AppendTip adds text to the end of the patient's log, creating the log on first use.
func (service *TipService) AppendTip(patientID string, text string) (models.Tip, error) {
	if strings.TrimSpace(text) == "" {
		return models.Tip{}, ErrTipTextRequired
	}

	unlock := service.locks.Lock(patientID)
	defer unlock()

	tip := models.Tip{Text: text, DateTime: service.clock.Now().Format(models.TipTimeLayout)}

	log, exists, err := service.tips.FindByPatientID(patientID)
	if err != nil {
		return models.Tip{}, err
	}
	if exists {
		log.Tips = append(log.Tips, tip)
		err = service.tips.Update(&log)
	} else {
		log = models.NutriCoachTip{PatientID: patientID, Tips: []models.Tip{tip}}
		err = service.tips.Insert(&log)
	}
	if errors.Is(err, db.ErrRecordExists) || errors.Is(err, db.ErrRecordMissing) {
		return models.Tip{}, fmt.Errorf("append tip for %s: %w", patientID, err)
	}
	if err != nil {
		return models.Tip{}, err
	}
	return tip, nil
}

// ListTips returns the log in append order; a missing log is an empty list.
func (service *TipService) ListTips(patientID string) ([]models.Tip, error) {
	log, exists, err := service.tips.FindByPatientID(patientID)
	if err != nil {
		return nil, err
	}
	if !exists || len(log.Tips) == 0 {
		return []models.Tip{}, nil
	}
	return append([]models.Tip(nil), log.Tips...), nil
}

// GenerateTip asks the generator for a coaching message, stores it and pushes it when possible.
func (service *TipService) GenerateTip(ctx context.Context, patientID string) (models.Tip, error) {
	if service.generator == nil || service.patients == nil {
		return models.Tip{}, errors.New("tip generation is not configured")
	}

	patient, found, err := service.patients.FindByUserID(patientID)
	if err != nil {
		return models.Tip{}, err
	}
	if !found {
		return models.Tip{}, ErrPatientNotFound
	}

	var intake *models.FoodIntake
	if service.intakes != nil {
		stored, hasIntake, err := service.intakes.FindByPatientID(patientID)
		if err != nil {
			return models.Tip{}, err
		}
		if hasIntake {
			intake = &stored
		}
	}

	text, err := service.generator.Generate(ctx, BuildTipPrompt(patient.ComponentScores, intake))
	if err != nil {
		service.logger.Warn("text generation failed", zap.String("patient_id", patientID), zap.Error(err))
		return models.Tip{}, ErrTextGenerationFailed
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Tip{}, ErrTextGenerationFailed
	}

	tip, err := service.AppendTip(patientID, text)
	if err != nil {
		return models.Tip{}, err
	}
	service.notify(ctx, patient, tip)
	return tip, nil
}

func (service *TipService) notify(ctx context.Context, patient models.Patient, tip models.Tip) {
	if service.notifier == nil || patient.PushToken == nil || strings.TrimSpace(*patient.PushToken) == "" {
		return
	}
	if err := service.notifier.Notify(ctx, *patient.PushToken, tipNotificationTitle, tip.Text); err != nil {
		service.logger.Warn("push notification failed", zap.String("patient_id", patient.UserID), zap.Error(err))
	}
}

// BuildTipPrompt renders the coaching prompt from the patient's scores and, when present, intake answers.
func BuildTipPrompt(scores models.ComponentScores, intake *models.FoodIntake) string {
	lines := lo.Map(Labelize(scores), func(score LabeledScore, _ int) string {
		return score.Label + ": " + formatScore(score.Value)
	})

	var builder strings.Builder
	builder.WriteString(tipPromptIntro)
	builder.WriteString(strings.Join(lines, "\n"))
	builder.WriteString(tipPromptIntakeIntro)
	builder.WriteString(describeIntake(intake))
	return builder.String()
}

func describeIntake(intake *models.FoodIntake) string {
	answers := map[models.TimingQuestion]string{}
	categories := notAvailable
	persona := notAvailable
	description := notAvailable
	if intake != nil {
		for _, answer := range intake.TimingAnswers {
			if answer.Answered() {
				answers[answer.Question] = answer.Answer
			}
		}
		if len(intake.FoodCategories) > 0 {
			categories = strings.Join(lo.Map(intake.FoodCategories, func(category models.FoodCategory, _ int) string {
				return category.Label()
			}), ", ")
		}
		if intake.Persona != nil {
			persona = intake.Persona.DisplayName()
			description = intake.Persona.Description()
		}
	}

	timing := func(question models.TimingQuestion) string {
		if answer, ok := answers[question]; ok {
			return answer
		}
		return notAvailable
	}

	return strings.Join([]string{
		"\nFood Intake Details:",
		"Sleep Time: " + timing(models.TimingSleep),
		"Wake Up Time: " + timing(models.TimingWakeUp),
		"Biggest Meal Time: " + timing(models.TimingBiggestMeal),
		"Food Categories: " + categories,
		"Persona: " + persona + ", Persona description: " + description,
	}, "\n")
}
