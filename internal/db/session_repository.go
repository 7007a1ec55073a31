package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/nutritrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Load(sessionKey string) (models.AppSession, bool, error) {
	var session models.AppSession
	err := repo.database.Where("session_key = ?", sessionKey).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AppSession{}, false, nil
	}
	if err != nil {
		return models.AppSession{}, false, err
	}
	return session, true, nil
}

func (repo *SessionRepository) Save(session *models.AppSession) error {
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now().UTC()
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "user_name", "updated_at"}),
	}).Create(session).Error
}

func (repo *SessionRepository) Delete(sessionKey string) error {
	return repo.database.Where("session_key = ?", sessionKey).Delete(&models.AppSession{}).Error
}

// DeleteForUser removes every session of userID except keepKey and reports how many went.
func (repo *SessionRepository) DeleteForUser(userID string, keepKey string) (int64, error) {
	query := repo.database.Where("user_id = ?", userID)
	if keepKey != "" {
		query = query.Where("session_key <> ?", keepKey)
	}
	result := query.Delete(&models.AppSession{})
	return result.RowsAffected, result.Error
}

// DeleteUpdatedBefore removes sessions last written before cutoff.
func (repo *SessionRepository) DeleteUpdatedBefore(cutoff time.Time) (int64, error) {
	result := repo.database.Where("updated_at < ?", cutoff.UTC()).Delete(&models.AppSession{})
	return result.RowsAffected, result.Error
}
