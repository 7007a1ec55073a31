package db

import (
	"path/filepath"
	"testing"

	"github.com/terraincognita07/nutritrack/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "nutritrack-test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func seedPatient(t *testing.T, repo *PatientRepository, userID string, sex string, total float64) models.Patient {
	t.Helper()

	patient := models.Patient{
		UserID:      userID,
		PhoneNumber: "0400" + userID,
		Sex:         sex,
		TotalScore:  total,
		ComponentScores: models.ComponentScores{
			Vegetables: 5,
			Fruits:     7.5,
			Sodium:     10,
		},
		FruitServeSize:      2,
		FruitVariationScore: 1,
	}
	if err := repo.Insert(&patient); err != nil {
		t.Fatalf("insert patient %s: %v", userID, err)
	}
	return patient
}

func stringPointer(value string) *string {
	return &value
}
