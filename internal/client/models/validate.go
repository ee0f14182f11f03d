package models

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// ValidationError reports a problem with a single input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every field problem found in one input.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Field returns the error for the named field, or nil.
func (v ValidationErrors) Field(name string) *ValidationError {
	for _, e := range v {
		if e.Field == name {
			return e
		}
	}
	return nil
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func required(errs ValidationErrors, field, value, msg string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return append(errs, &ValidationError{Field: field, Message: msg})
	}
	return errs
}

func checkEmail(errs ValidationErrors, value string) ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return append(errs, &ValidationError{Field: "email", Message: "Email required"})
	}
	if !govalidator.IsEmail(strings.TrimSpace(value)) {
		return append(errs, &ValidationError{Field: "email", Message: "Invalid email"})
	}
	return errs
}

// Validate checks that every field is present and the email is well formed.
// The result is nil or ValidationErrors.
func (f UserFields) Validate() error {
	var errs ValidationErrors
	errs = required(errs, "first_name", f.FirstName, "First name required")
	errs = required(errs, "last_name", f.LastName, "Last name required")
	errs = checkEmail(errs, f.Email)
	errs = required(errs, "avatar", f.AvatarURL, "Avatar url required")
	return errs.orNil()
}

// ValidateCredentials checks the login form: both fields are required.
func ValidateCredentials(email, password string) error {
	var errs ValidationErrors
	errs = required(errs, "email", email, "Email required")
	errs = required(errs, "password", password, "Password required")
	return errs.orNil()
}
