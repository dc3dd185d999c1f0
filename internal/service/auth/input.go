package auth

import (
	"net/mail"

	"github.com/xxxdendexxx/10x-cards/internal/domain"
)

// Password length bounds. bcrypt ignores bytes past 72.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// RegisterInput holds parameters for Register.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	switch {
	case len(i.Password) < MinPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	case len(i.Password) > MaxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.ConfirmPassword != i.Password {
		errs = append(errs, domain.FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for Login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > MaxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > 254 {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email address"}}
	}
	return nil
}
