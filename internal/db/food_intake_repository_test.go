package db

import (
	"errors"
	"testing"

	"github.com/terraincognita07/nutritrack/internal/models"
)

func TestFoodIntakeRepositoryInsertUpdateRoundTrip(t *testing.T) {
	database := openTestDatabase(t)
	seedPatient(t, NewPatientRepository(database), "1", models.SexMale, 50)
	repo := NewFoodIntakeRepository(database)

	if _, found, err := repo.FindByPatientID("1"); err != nil || found {
		t.Fatalf("expected no intake before insert, found=%v err=%v", found, err)
	}

	persona := models.PersonaMindfulEater
	intake := models.FoodIntake{
		PatientID:      "1",
		FoodCategories: []models.FoodCategory{models.FoodCategoryFruits, models.FoodCategoryEggs},
		Persona:        &persona,
		TimingAnswers: []models.TimingAnswer{
			{Question: models.TimingSleep, Answer: "22:00"},
			{Question: models.TimingWakeUp, Answer: "06:30"},
			{Question: models.TimingBiggestMeal, Answer: "12:00"},
		},
	}
	if err := repo.Insert(&intake); err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}
	if err := repo.Insert(&intake); !errors.Is(err, ErrRecordExists) {
		t.Fatalf("expected ErrRecordExists on second insert, got %v", err)
	}

	intake.FoodCategories = []models.FoodCategory{models.FoodCategoryFish}
	intake.TimingAnswers[2].Answer = "13:00"
	if err := repo.Update(&intake); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	stored, found, err := repo.FindByPatientID("1")
	if err != nil || !found {
		t.Fatalf("FindByPatientID() found=%v err=%v", found, err)
	}
	if len(stored.FoodCategories) != 1 || stored.FoodCategories[0] != models.FoodCategoryFish {
		t.Fatalf("expected categories [FISH], got %v", stored.FoodCategories)
	}
	if stored.Persona == nil || *stored.Persona != models.PersonaMindfulEater {
		t.Fatalf("expected persona MINDFUL_EATER, got %v", stored.Persona)
	}
	if len(stored.TimingAnswers) != 3 || stored.TimingAnswers[2].Answer != "13:00" {
		t.Fatalf("expected three timing answers with updated meal time, got %+v", stored.TimingAnswers)
	}
}

func TestFoodIntakeRepositoryUpdateMissingRow(t *testing.T) {
	repo := NewFoodIntakeRepository(openTestDatabase(t))

	err := repo.Update(&models.FoodIntake{PatientID: "nobody", TimingAnswers: models.EmptyTimingAnswers()})
	if !errors.Is(err, ErrRecordMissing) {
		t.Fatalf("expected ErrRecordMissing, got %v", err)
	}
}
