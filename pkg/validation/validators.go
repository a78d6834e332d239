package validation

import (
	"net/mail"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// ContactEmail validates an email address permissively: an "@", a dot in
// the domain portion, and a lenient RFC 5322 parse. Deliberately looser
// than the built-in "email" tag so addresses the original system accepted
// are still accepted.
func ContactEmail(fl validator.FieldLevel) bool {
	addr := fl.Field().String()

	at := strings.Index(addr, "@")
	if at <= 0 {
		return false
	}
	if !strings.Contains(addr[at+1:], ".") {
		return false
	}

	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

// FieldMessage maps a validation failure to the user-facing reason string.
func FieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "max" {
			return "Name must be 100 characters or less"
		}
		return "Name cannot be empty"
	case "Email":
		if fe.Tag() == "required" {
			return "Email cannot be empty"
		}
		return "Please provide a valid email address"
	case "Message":
		if fe.Tag() == "max" {
			return "Message must be 2000 characters or less"
		}
		return "Message must be at least 10 characters long"
	}
	return "Invalid value"
}
