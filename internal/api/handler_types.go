package api

import "time"

const (
	authTokenTTL      = 30 * 24 * time.Hour
	clinicianTokenTTL = 30 * time.Minute

	tokenPurposeAuth      = "auth"
	tokenPurposeClinician = "clinician"
)

type registerInput struct {
	UserID          string `json:"user_id" form:"user_id"`
	PhoneNumber     string `json:"phone_number" form:"phone_number"`
	Name            string `json:"name" form:"name"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type loginInput struct {
	UserID   string `json:"user_id" form:"user_id"`
	Password string `json:"password" form:"password"`
}

type resetPasswordInput struct {
	UserID          string `json:"user_id" form:"user_id"`
	PhoneNumber     string `json:"phone_number" form:"phone_number"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type updateDetailsInput struct {
	Name            string `json:"name" form:"name"`
	CurrentPassword string `json:"current_password" form:"current_password"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type pushTokenInput struct {
	Token string `json:"token" form:"token"`
}

type questionnaireInput struct {
	FoodCategories []string `json:"food_categories"`
	Persona        string   `json:"persona"`
	SleepTime      string   `json:"sleep_time"`
	WakeUpTime     string   `json:"wake_up_time"`
	BiggestMeal    string   `json:"biggest_meal_time"`
}

type clinicianUnlockInput struct {
	Password string `json:"password" form:"password"`
}
