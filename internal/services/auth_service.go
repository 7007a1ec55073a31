package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/security"
)

type AuthPatientRepository interface {
	FindByUserID(userID string) (models.Patient, bool, error)
	FindByUserIDAndPhone(userID string, phoneNumber string) (models.Patient, bool, error)
	ListRegisteredUserIDs() ([]string, error)
	ListUnregisteredUserIDs() ([]string, error)
	ClaimRegistration(userID string, name string, passwordDigest string) (bool, error)
	UpdateNameAndPassword(userID string, name string, passwordDigest string) error
	UpdatePassword(userID string, passwordDigest string) error
	UpdatePushToken(userID string, token *string) error
}

// SessionRevoker signs a patient out of their sessions, optionally keeping one.
type SessionRevoker interface {
	DeleteForUser(userID string, keepKey string) (int64, error)
}

// Profile is the public view of a patient account.
type Profile struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Sex         string `json:"sex"`
}

type AuthService struct {
	patients AuthPatientRepository
	sessions SessionRevoker
	locks    *keyedMutex
}

// NewAuthService builds the account service. A nil sessions store leaves
// existing sessions alone on password changes.
func NewAuthService(patients AuthPatientRepository, sessions SessionRevoker) *AuthService {
	return &AuthService{patients: patients, sessions: sessions, locks: newKeyedMutex()}
}

// Register claims a pre-loaded patient record. A registered record is never overwritten.
func (service *AuthService) Register(input RegisterInput) (models.Patient, error) {
	if err := ValidateRegisterInput(input); err != nil {
		return models.Patient{}, err
	}
	userID := strings.TrimSpace(input.UserID)
	name := strings.TrimSpace(input.Name)

	unlock := service.locks.Lock(userID)
	defer unlock()

	patient, found, err := service.patients.FindByUserIDAndPhone(userID, strings.TrimSpace(input.PhoneNumber))
	if err != nil {
		return models.Patient{}, err
	}
	if !found {
		return models.Patient{}, ErrPatientNotFound
	}
	if patient.IsRegistered() {
		return models.Patient{}, ErrUserAlreadyRegistered
	}

	digest := security.HashPassword(input.Password)
	claimed, err := service.patients.ClaimRegistration(userID, name, digest)
	if err != nil {
		return models.Patient{}, err
	}
	if !claimed {
		return models.Patient{}, ErrUserAlreadyRegistered
	}
	patient.Name = &name
	patient.Password = &digest
	return patient, nil
}

func (service *AuthService) Login(userID string, password string) (models.Patient, error) {
	if err := ValidateLoginInput(userID, password); err != nil {
		return models.Patient{}, err
	}
	patient, found, err := service.patients.FindByUserID(strings.TrimSpace(userID))
	if err != nil {
		return models.Patient{}, err
	}
	if !found {
		return models.Patient{}, ErrIncorrectUserID
	}
	if !patient.IsRegistered() || patient.Password == nil {
		return models.Patient{}, ErrUserNotRegistered
	}
	if !security.PasswordMatches(password, *patient.Password) {
		return models.Patient{}, ErrIncorrectCredentials
	}
	return patient, nil
}

func (service *AuthService) ResetPassword(input ResetPasswordInput) error {
	if err := ValidateResetPasswordInput(input); err != nil {
		return err
	}
	userID := strings.TrimSpace(input.UserID)
	_, found, err := service.patients.FindByUserIDAndPhone(userID, strings.TrimSpace(input.PhoneNumber))
	if err != nil {
		return err
	}
	if !found {
		return ErrPatientNotFound
	}
	if err := service.mapMissing(service.patients.UpdatePassword(userID, security.HashPassword(input.Password))); err != nil {
		return err
	}
	return service.revokeSessions(userID, "")
}

// UpdateDetails changes name and password after verifying the current password.
// Every other session of the patient is signed out; sessionKey stays valid.
func (service *AuthService) UpdateDetails(userID string, sessionKey string, input UpdateDetailsInput) (models.Patient, error) {
	if err := ValidateUpdateDetailsInput(input); err != nil {
		return models.Patient{}, err
	}

	unlock := service.locks.Lock(userID)
	defer unlock()

	patient, found, err := service.patients.FindByUserID(userID)
	if err != nil {
		return models.Patient{}, err
	}
	if !found {
		return models.Patient{}, ErrPatientNotFound
	}
	if patient.Password == nil || !security.PasswordMatches(input.CurrentPassword, *patient.Password) {
		return models.Patient{}, ErrIncorrectCurrentPass
	}

	name := strings.TrimSpace(input.Name)
	digest := security.HashPassword(input.Password)
	if err := service.mapMissing(service.patients.UpdateNameAndPassword(userID, name, digest)); err != nil {
		return models.Patient{}, err
	}
	if err := service.revokeSessions(userID, sessionKey); err != nil {
		return models.Patient{}, err
	}
	patient.Name = &name
	patient.Password = &digest
	return patient, nil
}

func (service *AuthService) revokeSessions(userID string, keepKey string) error {
	if service.sessions == nil {
		return nil
	}
	if _, err := service.sessions.DeleteForUser(userID, keepKey); err != nil {
		return fmt.Errorf("revoke sessions for %s: %w", userID, err)
	}
	return nil
}

func (service *AuthService) ProfileInfo(userID string) (Profile, error) {
	patient, found, err := service.patients.FindByUserID(userID)
	if err != nil {
		return Profile{}, err
	}
	if !found {
		return Profile{}, ErrPatientNotFound
	}
	profile := Profile{UserID: patient.UserID, PhoneNumber: patient.PhoneNumber, Sex: patient.Sex}
	if patient.Name != nil {
		profile.Name = *patient.Name
	}
	return profile, nil
}

func (service *AuthService) RegisteredUserIDs() ([]string, error) {
	return service.patients.ListRegisteredUserIDs()
}

func (service *AuthService) UnregisteredUserIDs() ([]string, error) {
	return service.patients.ListUnregisteredUserIDs()
}

// SetPushToken stores the device token; a blank token clears it.
func (service *AuthService) SetPushToken(userID string, token string) error {
	var value *string
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		value = &trimmed
	}
	return service.mapMissing(service.patients.UpdatePushToken(userID, value))
}

func (service *AuthService) mapMissing(err error) error {
	if errors.Is(err, db.ErrRecordMissing) {
		return ErrPatientNotFound
	}
	return err
}
