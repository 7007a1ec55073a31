package models

import "gorm.io/datatypes"

// TipTimeLayout is the minute-resolution layout of a tip timestamp.
const TipTimeLayout = "2006-01-02 15:04"

type Tip struct {
	Text     string `json:"text"`
	DateTime string `json:"date_time"`
}

type NutriCoachTip struct {
	PatientID string                   `gorm:"column:patient_id;primaryKey"`
	Tips      datatypes.JSONSlice[Tip] `gorm:"column:tips;not null"`
}

func (NutriCoachTip) TableName() string {
	return "nutri_coach_tips"
}
