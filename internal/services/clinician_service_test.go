package services

import (
	"context"
	"errors"
	"testing"

	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/security"
)

type stubClinicianRepo struct {
	totals map[string][]float64
	rows   []models.SexScores
	err    error
}

func (stub stubClinicianRepo) AverageTotalScoreBySex(sex string) (float64, int64, error) {
	if stub.err != nil {
		return 0, 0, stub.err
	}
	values := stub.totals[sex]
	if len(values) == 0 {
		return 0, 0, nil
	}
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values)), int64(len(values)), nil
}

func (stub stubClinicianRepo) ListScoresWithSex() ([]models.SexScores, error) {
	return stub.rows, stub.err
}

func twoPatternRows() []models.SexScores {
	female := sampleScores()
	female.Fruits = 3.25
	return []models.SexScores{
		{Sex: models.SexMale, ComponentScores: sampleScores()},
		{Sex: models.SexFemale, ComponentScores: female},
	}
}

const goldenPatternPrompt = "Analyze the following patient dietary component scores and identify 3 interesting patterns based on gender:\n\n" +
	"Gender: Male\n" +
	"Vegetables: 1.0\nFruits: 2.0\nGrains & Cereals: 3.0\nWhole Grains: 4.0\nMeat & Alternatives: 5.0\nDairy: 6.0\nWater: 7.0\n" +
	"Saturated Fats: 8.0\nUnsaturated Fats: 9.0\nSodium: 10.0\nSugar: 11.0\nAlcohol: 12.0\nDiscretionary Foods: 13.0\n\n" +
	"Gender: Female\n" +
	"Vegetables: 1.0\nFruits: 3.25\nGrains & Cereals: 3.0\nWhole Grains: 4.0\nMeat & Alternatives: 5.0\nDairy: 6.0\nWater: 7.0\n" +
	"Saturated Fats: 8.0\nUnsaturated Fats: 9.0\nSodium: 10.0\nSugar: 11.0\nAlcohol: 12.0\nDiscretionary Foods: 13.0"

func TestBuildPatternPromptGolden(t *testing.T) {
	t.Parallel()

	first := BuildPatternPrompt(twoPatternRows())
	if first != goldenPatternPrompt {
		t.Fatalf("BuildPatternPrompt() mismatch\n got: %q\nwant: %q", first, goldenPatternPrompt)
	}
	for range 5 {
		if again := BuildPatternPrompt(twoPatternRows()); again != first {
			t.Fatal("expected byte-identical prompt across calls")
		}
	}
}

func TestAverageScore(t *testing.T) {
	t.Parallel()

	service := NewClinicianService(stubClinicianRepo{totals: map[string][]float64{
		models.SexMale: {40, 60, 80},
	}}, nil, nil)

	average, err := service.AverageScore(models.SexMale)
	if err != nil {
		t.Fatalf("AverageScore(Male) unexpected error: %v", err)
	}
	if average != 60 {
		t.Fatalf("AverageScore(Male) = %v, want 60", average)
	}

	if _, err := service.AverageScore(models.SexFemale); !errors.Is(err, ErrNoScoreData) {
		t.Fatalf("expected ErrNoScoreData for empty sex, got %v", err)
	}
	if _, err := service.AverageScore("Other"); !errors.Is(err, ErrInvalidSex) {
		t.Fatalf("expected ErrInvalidSex, got %v", err)
	}

	averages, err := service.AverageScores()
	if err != nil {
		t.Fatalf("AverageScores() unexpected error: %v", err)
	}
	if averages.Male == nil || *averages.Male != 60 || averages.Female != nil {
		t.Fatalf("unexpected averages: %+v", averages)
	}
}

func TestAverageScorePropagatesStoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("disk full")
	service := NewClinicianService(stubClinicianRepo{err: storeErr}, nil, nil)
	if _, err := service.AverageScores(); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestDiscoverPatterns(t *testing.T) {
	t.Parallel()

	generator := &stubGenerator{text: "\n1. Pattern one\n"}
	service := NewClinicianService(stubClinicianRepo{rows: twoPatternRows()}, generator, nil)

	text, err := service.DiscoverPatterns(context.Background())
	if err != nil {
		t.Fatalf("DiscoverPatterns() unexpected error: %v", err)
	}
	if text != "1. Pattern one" {
		t.Fatalf("DiscoverPatterns() = %q", text)
	}
	if len(generator.prompts) != 1 || generator.prompts[0] != goldenPatternPrompt {
		t.Fatalf("unexpected prompt sent: %v", generator.prompts)
	}

	empty := NewClinicianService(stubClinicianRepo{}, generator, nil)
	if _, err := empty.DiscoverPatterns(context.Background()); !errors.Is(err, ErrNoScoreData) {
		t.Fatalf("expected ErrNoScoreData, got %v", err)
	}

	failing := NewClinicianService(stubClinicianRepo{rows: twoPatternRows()}, &stubGenerator{err: errors.New("quota")}, nil)
	if _, err := failing.DiscoverPatterns(context.Background()); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected upstream kind, got %v", err)
	}
}

func TestAuthenticateAdmin(t *testing.T) {
	t.Parallel()

	sealed, err := security.SealSecret("dollar-sign-secret")
	if err != nil {
		t.Fatalf("SealSecret() unexpected error: %v", err)
	}
	service := NewClinicianService(stubClinicianRepo{}, nil, sealed)

	if err := service.AuthenticateAdmin("dollar-sign-secret"); err != nil {
		t.Fatalf("AuthenticateAdmin(correct) unexpected error: %v", err)
	}
	for _, candidate := range []string{"", "wrong", "dollar-sign-secret "} {
		if err := service.AuthenticateAdmin(candidate); !errors.Is(err, ErrInvalidAdminPassword) {
			t.Fatalf("AuthenticateAdmin(%q) expected ErrInvalidAdminPassword, got %v", candidate, err)
		}
	}

	unconfigured := NewClinicianService(stubClinicianRepo{}, nil, nil)
	if err := unconfigured.AuthenticateAdmin("anything"); !errors.Is(err, ErrInvalidAdminPassword) {
		t.Fatalf("expected unconfigured gate to reject, got %v", err)
	}
}
