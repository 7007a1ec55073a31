package db

import (
	"errors"

	"github.com/terraincognita07/nutritrack/internal/models"
	"gorm.io/gorm"
)

type PatientRepository struct {
	database *gorm.DB
}

func NewPatientRepository(database *gorm.DB) *PatientRepository {
	return &PatientRepository{database: database}
}

func (repo *PatientRepository) Insert(patient *models.Patient) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Patient{}).Where("user_id = ?", patient.UserID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrRecordExists
		}
		return tx.Create(patient).Error
	})
}

func (repo *PatientRepository) Update(patient *models.Patient) error {
	result := repo.database.Model(&models.Patient{}).
		Where("user_id = ?", patient.UserID).
		Select("*").
		Updates(patient)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordMissing
	}
	return nil
}

func (repo *PatientRepository) FindByUserID(userID string) (models.Patient, bool, error) {
	return repo.findOne(repo.database.Where("user_id = ?", userID))
}

func (repo *PatientRepository) FindByUserIDAndPhone(userID string, phoneNumber string) (models.Patient, bool, error) {
	return repo.findOne(repo.database.Where("user_id = ? AND phone_number = ?", userID, phoneNumber))
}

func (repo *PatientRepository) FindByUserIDAndPassword(userID string, passwordDigest string) (models.Patient, bool, error) {
	return repo.findOne(repo.database.Where("user_id = ? AND password = ?", userID, passwordDigest))
}

func (repo *PatientRepository) findOne(query *gorm.DB) (models.Patient, bool, error) {
	var patient models.Patient
	err := query.First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Patient{}, false, nil
	}
	if err != nil {
		return models.Patient{}, false, err
	}
	return patient, true, nil
}

func (repo *PatientRepository) ListRegisteredUserIDs() ([]string, error) {
	return repo.listUserIDs("name IS NOT NULL")
}

func (repo *PatientRepository) ListUnregisteredUserIDs() ([]string, error) {
	return repo.listUserIDs("name IS NULL")
}

func (repo *PatientRepository) listUserIDs(condition string) ([]string, error) {
	userIDs := make([]string, 0)
	if err := repo.database.Model(&models.Patient{}).
		Where(condition).
		Order("user_id").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

// AverageTotalScoreBySex returns the mean total score and how many rows it covers.
func (repo *PatientRepository) AverageTotalScoreBySex(sex string) (float64, int64, error) {
	var row struct {
		Matched int64    `gorm:"column:matched"`
		Average *float64 `gorm:"column:average"`
	}
	if err := repo.database.Model(&models.Patient{}).
		Select("COUNT(*) AS matched, AVG(total_score) AS average").
		Where("sex = ?", sex).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	if row.Matched == 0 || row.Average == nil {
		return 0, 0, nil
	}
	return *row.Average, row.Matched, nil
}

func (repo *PatientRepository) ListScoresWithSex() ([]models.SexScores, error) {
	rows := make([]models.SexScores, 0)
	if err := repo.database.Model(&models.Patient{}).
		Order("user_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *PatientRepository) UpdateNameAndPassword(userID string, name string, passwordDigest string) error {
	return repo.updateColumns(userID, map[string]any{
		"name":     name,
		"password": passwordDigest,
	})
}

func (repo *PatientRepository) UpdatePassword(userID string, passwordDigest string) error {
	return repo.updateColumns(userID, map[string]any{"password": passwordDigest})
}

func (repo *PatientRepository) UpdatePushToken(userID string, token *string) error {
	return repo.updateColumns(userID, map[string]any{"push_token": token})
}

// ClaimRegistration sets name and password only while the patient is still unregistered.
func (repo *PatientRepository) ClaimRegistration(userID string, name string, passwordDigest string) (bool, error) {
	result := repo.database.Model(&models.Patient{}).
		Where("user_id = ? AND name IS NULL", userID).
		Updates(map[string]any{
			"name":     name,
			"password": passwordDigest,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *PatientRepository) updateColumns(userID string, updates map[string]any) error {
	result := repo.database.Model(&models.Patient{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordMissing
	}
	return nil
}
