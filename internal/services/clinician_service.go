package services

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/security"
)

const patternPromptPreamble = "Analyze the following patient dietary component scores and identify 3 interesting patterns based on gender:\n\n"

type ClinicianPatientRepository interface {
	AverageTotalScoreBySex(sex string) (float64, int64, error)
	ListScoresWithSex() ([]models.SexScores, error)
}

// ScoreAverages carries one average per sex; nil means no patients of that sex.
type ScoreAverages struct {
	Male   *float64 `json:"male"`
	Female *float64 `json:"female"`
}

type ClinicianService struct {
	patients    ClinicianPatientRepository
	generator   TextGenerator
	adminSecret []byte
}

// NewClinicianService takes the admin password already sealed with security.SealSecret.
func NewClinicianService(patients ClinicianPatientRepository, generator TextGenerator, adminSecret []byte) *ClinicianService {
	return &ClinicianService{patients: patients, generator: generator, adminSecret: adminSecret}
}

func (service *ClinicianService) AuthenticateAdmin(password string) error {
	if len(service.adminSecret) == 0 || !security.SecretMatches(service.adminSecret, password) {
		return ErrInvalidAdminPassword
	}
	return nil
}

// AverageScore returns the mean total score of patients with the given sex.
func (service *ClinicianService) AverageScore(sex string) (float64, error) {
	if sex != models.SexMale && sex != models.SexFemale {
		return 0, ErrInvalidSex
	}
	average, count, err := service.patients.AverageTotalScoreBySex(sex)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrNoScoreData
	}
	return average, nil
}

func (service *ClinicianService) AverageScores() (ScoreAverages, error) {
	var averages ScoreAverages
	for _, sex := range []string{models.SexMale, models.SexFemale} {
		average, err := service.AverageScore(sex)
		if errors.Is(err, ErrNoScoreData) {
			continue
		}
		if err != nil {
			return ScoreAverages{}, err
		}
		if sex == models.SexMale {
			averages.Male = &average
		} else {
			averages.Female = &average
		}
	}
	return averages, nil
}

// DiscoverPatterns sends every patient's component scores to the generator.
func (service *ClinicianService) DiscoverPatterns(ctx context.Context) (string, error) {
	rows, err := service.patients.ListScoresWithSex()
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrNoScoreData
	}
	if service.generator == nil {
		return "", errors.New("pattern discovery is not configured")
	}

	text, err := service.generator.Generate(ctx, BuildPatternPrompt(rows))
	if err != nil {
		return "", ErrTextGenerationFailed
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrTextGenerationFailed
	}
	return text, nil
}

// BuildPatternPrompt serializes rows in the given order. The output holds no
// timestamps or map iteration, so equal input always yields equal bytes.
func BuildPatternPrompt(rows []models.SexScores) string {
	blocks := lo.Map(rows, func(row models.SexScores, _ int) string {
		lines := make([]string, 0, 14)
		lines = append(lines, "Gender: "+row.Sex)
		for _, score := range Labelize(row.ComponentScores) {
			lines = append(lines, score.Label+": "+formatScore(score.Value))
		}
		return strings.Join(lines, "\n")
	})
	return patternPromptPreamble + strings.Join(blocks, "\n\n")
}
