package services

import "strings"

type RegisterInput struct {
	UserID          string
	PhoneNumber     string
	Name            string
	Password        string
	ConfirmPassword string
}

type ResetPasswordInput struct {
	UserID          string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
}

type UpdateDetailsInput struct {
	Name            string
	CurrentPassword string
	Password        string
	ConfirmPassword string
}

// ValidateRegisterInput reports the first failed check in form order.
func ValidateRegisterInput(input RegisterInput) error {
	switch {
	case isBlank(input.UserID):
		return ErrUserIDRequired
	case isBlank(input.PhoneNumber):
		return ErrPhoneNumberRequired
	case isBlank(input.Name):
		return ErrUsernameRequired
	}
	return validateNewPassword(input.Password, input.ConfirmPassword)
}

func ValidateResetPasswordInput(input ResetPasswordInput) error {
	switch {
	case isBlank(input.UserID):
		return ErrUserIDRequired
	case isBlank(input.PhoneNumber):
		return ErrPhoneNumberRequired
	}
	return validateNewPassword(input.Password, input.ConfirmPassword)
}

func ValidateUpdateDetailsInput(input UpdateDetailsInput) error {
	switch {
	case isBlank(input.Name):
		return ErrUsernameRequired
	case isBlank(input.CurrentPassword):
		return ErrCurrentPasswordRequired
	}
	return validateNewPassword(input.Password, input.ConfirmPassword)
}

func ValidateLoginInput(userID string, password string) error {
	switch {
	case isBlank(userID):
		return ErrUserIDNotSelected
	case isBlank(password):
		return ErrPasswordRequired
	}
	return nil
}

func validateNewPassword(password string, confirmation string) error {
	switch {
	case isBlank(password):
		return ErrPasswordRequired
	case isBlank(confirmation):
		return ErrPasswordConfirmation
	case password != confirmation:
		return ErrPasswordMismatch
	}
	return nil
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
