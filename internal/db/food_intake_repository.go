package db

import (
	"errors"

	"github.com/terraincognita07/nutritrack/internal/models"
	"gorm.io/gorm"
)

type FoodIntakeRepository struct {
	database *gorm.DB
}

func NewFoodIntakeRepository(database *gorm.DB) *FoodIntakeRepository {
	return &FoodIntakeRepository{database: database}
}

func (repo *FoodIntakeRepository) FindByPatientID(patientID string) (models.FoodIntake, bool, error) {
	var intake models.FoodIntake
	err := repo.database.Where("patient_id = ?", patientID).First(&intake).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FoodIntake{}, false, nil
	}
	if err != nil {
		return models.FoodIntake{}, false, err
	}
	return intake, true, nil
}

func (repo *FoodIntakeRepository) Insert(intake *models.FoodIntake) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.FoodIntake{}).Where("patient_id = ?", intake.PatientID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrRecordExists
		}
		return tx.Create(intake).Error
	})
}

func (repo *FoodIntakeRepository) Update(intake *models.FoodIntake) error {
	result := repo.database.Model(&models.FoodIntake{}).
		Where("patient_id = ?", intake.PatientID).
		Select("food_categories", "persona", "timing_answers").
		Updates(intake)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordMissing
	}
	return nil
}
