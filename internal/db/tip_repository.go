package db

import (
	"errors"

	"github.com/terraincognita07/nutritrack/internal/models"
	"gorm.io/gorm"
)

type TipRepository struct {
	database *gorm.DB
}

func NewTipRepository(database *gorm.DB) *TipRepository {
	return &TipRepository{database: database}
}

func (repo *TipRepository) FindByPatientID(patientID string) (models.NutriCoachTip, bool, error) {
	var log models.NutriCoachTip
	err := repo.database.Where("patient_id = ?", patientID).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NutriCoachTip{}, false, nil
	}
	if err != nil {
		return models.NutriCoachTip{}, false, err
	}
	return log, true, nil
}

func (repo *TipRepository) Insert(log *models.NutriCoachTip) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.NutriCoachTip{}).Where("patient_id = ?", log.PatientID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrRecordExists
		}
		return tx.Create(log).Error
	})
}

func (repo *TipRepository) Update(log *models.NutriCoachTip) error {
	result := repo.database.Model(&models.NutriCoachTip{}).
		Where("patient_id = ?", log.PatientID).
		Update("tips", log.Tips)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordMissing
	}
	return nil
}
