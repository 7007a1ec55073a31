package services

import (
	"errors"
	"testing"
)

func TestValidateRegisterInput(t *testing.T) {
	valid := RegisterInput{UserID: "12", PhoneNumber: "0400", Name: "Ada", Password: "pw", ConfirmPassword: "pw"}

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
		want   error
	}{
		{name: "valid", mutate: func(*RegisterInput) {}, want: nil},
		{name: "blank user id wins over everything", mutate: func(input *RegisterInput) {
			input.UserID = " "
			input.PhoneNumber = ""
			input.Password = ""
		}, want: ErrUserIDRequired},
		{name: "blank phone", mutate: func(input *RegisterInput) { input.PhoneNumber = "" }, want: ErrPhoneNumberRequired},
		{name: "blank name", mutate: func(input *RegisterInput) { input.Name = "\t" }, want: ErrUsernameRequired},
		{name: "blank password", mutate: func(input *RegisterInput) { input.Password = "" }, want: ErrPasswordRequired},
		{name: "blank confirmation", mutate: func(input *RegisterInput) { input.ConfirmPassword = "" }, want: ErrPasswordConfirmation},
		{name: "mismatch", mutate: func(input *RegisterInput) { input.ConfirmPassword = "PW" }, want: ErrPasswordMismatch},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			input := valid
			testCase.mutate(&input)
			err := ValidateRegisterInput(input)
			if testCase.want == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("", "pw"); !errors.Is(err, ErrUserIDNotSelected) {
		t.Fatalf("expected ErrUserIDNotSelected, got %v", err)
	}
	if err := ValidateLoginInput("12", " "); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
	if err := ValidateLoginInput("12", "pw"); err != nil {
		t.Fatalf("expected valid login input, got %v", err)
	}
}

func TestValidateUpdateDetailsInput(t *testing.T) {
	if err := ValidateUpdateDetailsInput(UpdateDetailsInput{CurrentPassword: "old", Password: "new", ConfirmPassword: "new"}); !errors.Is(err, ErrUsernameRequired) {
		t.Fatalf("expected ErrUsernameRequired, got %v", err)
	}
	if err := ValidateUpdateDetailsInput(UpdateDetailsInput{Name: "Ada", Password: "new", ConfirmPassword: "new"}); !errors.Is(err, ErrCurrentPasswordRequired) {
		t.Fatalf("expected ErrCurrentPasswordRequired, got %v", err)
	}
	if err := ValidateUpdateDetailsInput(UpdateDetailsInput{Name: "Ada", CurrentPassword: "old", Password: "new", ConfirmPassword: "other"}); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestValidateResetPasswordInput(t *testing.T) {
	if err := ValidateResetPasswordInput(ResetPasswordInput{UserID: "12", Password: "a", ConfirmPassword: "a"}); !errors.Is(err, ErrPhoneNumberRequired) {
		t.Fatalf("expected ErrPhoneNumberRequired, got %v", err)
	}
	if err := ValidateResetPasswordInput(ResetPasswordInput{UserID: "12", PhoneNumber: "0400", Password: "a", ConfirmPassword: "a"}); err != nil {
		t.Fatalf("expected valid reset input, got %v", err)
	}
}
