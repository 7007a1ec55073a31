package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/terraincognita07/nutritrack/internal/models"
)

const (
	LabelVegetables          = "Vegetables"
	LabelFruits              = "Fruits"
	LabelGrainsAndCereals    = "Grains & Cereals"
	LabelWholeGrains         = "Whole Grains"
	LabelMeatAndAlternatives = "Meat & Alternatives"
	LabelDairy               = "Dairy"
	LabelWater               = "Water"
	LabelSaturatedFats       = "Saturated Fats"
	LabelUnsaturatedFats     = "Unsaturated Fats"
	LabelSodium              = "Sodium"
	LabelSugar               = "Sugar"
	LabelAlcohol             = "Alcohol"
	LabelDiscretionaryFoods  = "Discretionary Foods"
	LabelTotalFoodQuality    = "Total Food Quality"
)

var maxScores = map[string]float64{
	LabelVegetables:          10,
	LabelFruits:              10,
	LabelGrainsAndCereals:    5,
	LabelWholeGrains:         5,
	LabelMeatAndAlternatives: 10,
	LabelDairy:               10,
	LabelWater:               5,
	LabelSaturatedFats:       5,
	LabelUnsaturatedFats:     5,
	LabelSodium:              10,
	LabelSugar:               10,
	LabelAlcohol:             5,
	LabelDiscretionaryFoods:  10,
	LabelTotalFoodQuality:    100,
}

type LabeledScore struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Labelize lists the thirteen component scores in canonical display order.
func Labelize(scores models.ComponentScores) []LabeledScore {
	return []LabeledScore{
		{Label: LabelVegetables, Value: scores.Vegetables},
		{Label: LabelFruits, Value: scores.Fruits},
		{Label: LabelGrainsAndCereals, Value: scores.GrainsAndCereals},
		{Label: LabelWholeGrains, Value: scores.WholeGrains},
		{Label: LabelMeatAndAlternatives, Value: scores.MeatAndAlternatives},
		{Label: LabelDairy, Value: scores.Dairy},
		{Label: LabelWater, Value: scores.Water},
		{Label: LabelSaturatedFats, Value: scores.SaturatedFats},
		{Label: LabelUnsaturatedFats, Value: scores.UnsaturatedFats},
		{Label: LabelSodium, Value: scores.Sodium},
		{Label: LabelSugar, Value: scores.Sugar},
		{Label: LabelAlcohol, Value: scores.Alcohol},
		{Label: LabelDiscretionaryFoods, Value: scores.DiscretionaryFoods},
	}
}

// MaxScoreFor returns the ceiling for label; unknown labels get 1.
func MaxScoreFor(label string) float64 {
	if ceiling, ok := maxScores[label]; ok {
		return ceiling
	}
	return 1
}

// ScoreFraction returns value relative to the label's ceiling, clamped to [0, 1].
func ScoreFraction(label string, value float64) float64 {
	fraction := value / MaxScoreFor(label)
	if math.IsNaN(fraction) || fraction < 0 {
		return 0
	}
	return math.Min(1, fraction)
}

func IsFruitOptimal(serveSize float64, varietyScore float64) bool {
	return serveSize >= 2 && varietyScore >= 2
}

// formatScore renders a score with at least one fractional digit ("10.0", "3.25").
func formatScore(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return formatted
	}
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}

type ScoreRow struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Max      float64 `json:"max"`
	Fraction float64 `json:"fraction"`
}

type ScoreBreakdown struct {
	UserID        string     `json:"user_id"`
	TotalScore    float64    `json:"total_score"`
	TotalMax      float64    `json:"total_max"`
	TotalFraction float64    `json:"total_fraction"`
	Components    []ScoreRow `json:"components"`
}

type FruitStatus struct {
	ServeSize    float64 `json:"serve_size"`
	VarietyScore float64 `json:"variety_score"`
	Optimal      bool    `json:"optimal"`
}

type ScorePatientRepository interface {
	FindByUserID(userID string) (models.Patient, bool, error)
}

type ScoreService struct {
	patients ScorePatientRepository
}

func NewScoreService(patients ScorePatientRepository) *ScoreService {
	return &ScoreService{patients: patients}
}

func (service *ScoreService) Breakdown(userID string) (ScoreBreakdown, error) {
	patient, err := service.loadPatient(userID)
	if err != nil {
		return ScoreBreakdown{}, err
	}

	rows := lo.Map(Labelize(patient.ComponentScores), func(score LabeledScore, _ int) ScoreRow {
		return ScoreRow{
			Label:    score.Label,
			Value:    score.Value,
			Max:      MaxScoreFor(score.Label),
			Fraction: ScoreFraction(score.Label, score.Value),
		}
	})
	return ScoreBreakdown{
		UserID:        patient.UserID,
		TotalScore:    patient.TotalScore,
		TotalMax:      MaxScoreFor(LabelTotalFoodQuality),
		TotalFraction: ScoreFraction(LabelTotalFoodQuality, patient.TotalScore),
		Components:    rows,
	}, nil
}

func (service *ScoreService) FruitStatus(userID string) (FruitStatus, error) {
	patient, err := service.loadPatient(userID)
	if err != nil {
		return FruitStatus{}, err
	}
	return FruitStatus{
		ServeSize:    patient.FruitServeSize,
		VarietyScore: patient.FruitVariationScore,
		Optimal:      IsFruitOptimal(patient.FruitServeSize, patient.FruitVariationScore),
	}, nil
}

func (service *ScoreService) loadPatient(userID string) (models.Patient, error) {
	patient, found, err := service.patients.FindByUserID(userID)
	if err != nil {
		return models.Patient{}, err
	}
	if !found {
		return models.Patient{}, ErrPatientNotFound
	}
	return patient, nil
}
