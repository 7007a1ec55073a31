package services

import "errors"

// Error kinds. Every ActionError unwraps to exactly one of these.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
	ErrUpstream      = errors.New("upstream unavailable")
)

// ActionError is a user-facing failure: Message is safe to show as-is.
type ActionError struct {
	Kind    error
	Message string
	Details []string
}

func (err *ActionError) Error() string {
	return err.Message
}

func (err *ActionError) Unwrap() error {
	return err.Kind
}

// Is matches another ActionError of the same kind and message, ignoring Details.
func (err *ActionError) Is(target error) bool {
	other, ok := target.(*ActionError)
	if !ok {
		return false
	}
	return other.Kind == err.Kind && other.Message == err.Message
}

func newActionError(kind error, message string) *ActionError {
	return &ActionError{Kind: kind, Message: message}
}

var (
	ErrUserIDRequired          = newActionError(ErrValidation, "User ID cannot be empty. Please try again.")
	ErrUserIDNotSelected       = newActionError(ErrValidation, "User ID must be selected. Please try again.")
	ErrPhoneNumberRequired     = newActionError(ErrValidation, "Phone Number cannot be empty. Please try again.")
	ErrUsernameRequired        = newActionError(ErrValidation, "Username cannot be empty. Please try again.")
	ErrPasswordRequired        = newActionError(ErrValidation, "Password cannot be empty. Please try again.")
	ErrCurrentPasswordRequired = newActionError(ErrValidation, "Current password cannot be empty. Please try again.")
	ErrPasswordConfirmation    = newActionError(ErrValidation, "Please confirm your password and try again.")
	ErrPasswordMismatch        = newActionError(ErrValidation, "Passwords do not match. Please make sure both passwords match and try again.")
	ErrUserNotRegistered       = newActionError(ErrValidation, "User not registered.")
	ErrIncorrectCredentials    = newActionError(ErrValidation, "Incorrect credentials provided.")
	ErrIncorrectCurrentPass    = newActionError(ErrValidation, "Current password is incorrect. Please try again.")

	ErrIncorrectUserID       = newActionError(ErrNotFound, "Incorrect userID provided.")
	ErrPatientNotFound       = newActionError(ErrNotFound, "Patient Not Found.")
	ErrUserAlreadyRegistered = newActionError(ErrAlreadyExists, "User already registered.")

	ErrQuestionnaireIncomplete = newActionError(ErrValidation, "Fill in all necessary details. Ensure that at least one food category is selected, persona is selected, and that all timing questions are answered.")
	ErrInvalidTimeFormat       = newActionError(ErrValidation, "Time must use the HH:MM format.")
	ErrUnknownTimingQuestion   = newActionError(ErrValidation, "Unknown timing question.")
	ErrUnknownFoodCategory     = newActionError(ErrValidation, "Unknown food category.")
	ErrUnknownPersona          = newActionError(ErrValidation, "Unknown persona.")
	ErrTimingConflict          = newActionError(ErrValidation, "Time set conflicts with another time. Choose another.")
	ErrSleepTimesRequired      = newActionError(ErrValidation, "Please enter your sleeping times before your biggest meal time.")
	ErrBiggestMealDuringSleep  = newActionError(ErrValidation, "Biggest meal time should not fall within sleeping hours.")
	ErrFoodIntakeExists        = newActionError(ErrAlreadyExists, "Food intake already exists for this patient.")
	ErrFoodIntakeMissing       = newActionError(ErrNotFound, "Food intake does not exist for this patient.")

	ErrTipTextRequired      = newActionError(ErrValidation, "Tip text cannot be empty.")
	ErrTextGenerationFailed = newActionError(ErrUpstream, "Could not generate a response right now. Please try again.")
	ErrFruitNameRequired    = newActionError(ErrValidation, "Please give a fruit name.")
	ErrFruitNotFound        = newActionError(ErrUpstream, "Fruit Not Found. Please give a valid fruit name.")
	ErrImageUnavailable     = newActionError(ErrUpstream, "Could not load an image right now. Please try again.")

	ErrInvalidSex           = newActionError(ErrValidation, "Sex must be Male or Female.")
	ErrNoScoreData          = newActionError(ErrNotFound, "No patient scores are available yet.")
	ErrInvalidAdminPassword = newActionError(ErrValidation, "The provided password is incorrect. Please try again.")
	ErrNotLoggedIn          = newActionError(ErrValidation, "No user is logged in.")
	ErrSessionIdentityBlank = newActionError(ErrValidation, "Session identity cannot be empty.")
)
