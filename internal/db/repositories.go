package db

import "gorm.io/gorm"

type Repositories struct {
	Patients    *PatientRepository
	FoodIntakes *FoodIntakeRepository
	Tips        *TipRepository
	Sessions    *SessionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Patients:    NewPatientRepository(database),
		FoodIntakes: NewFoodIntakeRepository(database),
		Tips:        NewTipRepository(database),
		Sessions:    NewSessionRepository(database),
	}
}
