package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/security"
	"go.uber.org/zap"
)

const temporaryPasswordLength = 12

// ResetPasswordOptions controls how the new password is chosen and where output goes.
// With Prompt set the password is read twice from Stdin without echo; otherwise a
// temporary password is generated and printed.
type ResetPasswordOptions struct {
	Prompt bool
	Stdin  *os.File
	Out    io.Writer
	Logger *zap.Logger
}

var passwordReader = readPasswordNoEcho

func RunResetPasswordCommand(dbPath string, userID string, options ResetPasswordOptions) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errors.New("user id is required")
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Stdin == nil {
		options.Stdin = os.Stdin
	}

	database, err := db.OpenSQLite(dbPath, options.Logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	patients := db.NewPatientRepository(database)
	patient, found, err := patients.FindByUserID(userID)
	if err != nil {
		return fmt.Errorf("load patient: %w", err)
	}
	if !found {
		return fmt.Errorf("patient %s not found", userID)
	}
	if !patient.IsRegistered() {
		return fmt.Errorf("patient %s is not registered", userID)
	}

	password, generated, err := chooseNewPassword(options)
	if err != nil {
		return err
	}
	if err := patients.UpdatePassword(userID, security.HashPassword(password)); err != nil {
		return fmt.Errorf("update patient password: %w", err)
	}
	revoked, err := db.NewSessionRepository(database).DeleteForUser(userID, "")
	if err != nil {
		return fmt.Errorf("sign out patient sessions: %w", err)
	}

	fmt.Fprintln(options.Out, "Password reset successful")
	if revoked > 0 {
		fmt.Fprintf(options.Out, "Signed out %d active session(s)\n", revoked)
	}
	if generated {
		fmt.Fprintf(options.Out, "Temporary password: %s\n", password)
		fmt.Fprintln(options.Out, "Share it with the patient and ask them to change it from their profile.")
	}
	return nil
}

func chooseNewPassword(options ResetPasswordOptions) (string, bool, error) {
	if !options.Prompt {
		password, err := security.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return password, true, nil
	}

	fmt.Fprint(options.Out, "New password: ")
	first, err := passwordReader(options.Stdin)
	fmt.Fprintln(options.Out)
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}
	fmt.Fprint(options.Out, "Confirm password: ")
	second, err := passwordReader(options.Stdin)
	fmt.Fprintln(options.Out)
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}

	password := string(first)
	if strings.TrimSpace(password) == "" {
		return "", false, errors.New("password cannot be empty")
	}
	if password != string(second) {
		return "", false, errors.New("passwords do not match")
	}
	return password, false, nil
}
