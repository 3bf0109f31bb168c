package application

import (
	"fmt"
	"regexp"
	"strings"
)

// MinContactMessageLength is counted over the trimmed message body.
const MinContactMessageLength = 10

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)

// Validator holds the client-side checks run before any contact request is
// issued upstream. Errors carry i18n keys so handlers can answer in the
// request's locale.
type Validator struct{}

type ValidationError struct {
	Field string
	Key   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Key)
}

func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Key: "contact.email_required"}
	}
	if !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Key: "contact.email_invalid"}
	}
	return nil
}

func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		// Phone is optional on the contact form.
		return nil
	}
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRegex.MatchString(clean) {
		return &ValidationError{Field: "phone", Key: "contact.phone_invalid"}
	}
	return nil
}

func (v *Validator) ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Key: "contact.name_required"}
	}
	return nil
}

// ValidateMessage enforces the minimum trimmed length before a request is
// even issued.
func (v *Validator) ValidateMessage(message string) error {
	if len(strings.TrimSpace(message)) < MinContactMessageLength {
		return &ValidationError{Field: "message", Key: "contact.message_too_short"}
	}
	return nil
}
