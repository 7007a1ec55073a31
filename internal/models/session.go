package models

import "time"

// AppSession is the persisted identity bound to one session key.
type AppSession struct {
	SessionKey string    `gorm:"column:session_key;primaryKey"`
	UserID     string    `gorm:"column:user_id;not null"`
	UserName   string    `gorm:"column:user_name;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (AppSession) TableName() string {
	return "app_sessions"
}
