// Package validation provides request field format checks.
package validation

import (
	"net/mail"
	"net/url"
	"strings"

	"skillbridge/internal/models"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// IsEmail reports whether s parses as an address with a dotted domain.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return strings.Contains(s[at+1:], ".")
}

// IsURL reports whether s parses as an absolute http(s) URL.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateSignup checks the signup fields and normalizes the role default.
func ValidateSignup(name, email, password, role string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", models.NewValidationError("Name is required")
	}
	if !IsEmail(email) {
		return "", models.NewValidationError("Please provide a valid email")
	}
	if len(password) < MinPasswordLength {
		return "", models.NewValidationError("Password must be at least 6 characters")
	}
	switch role {
	case "":
		return models.RoleStudent, nil
	case models.RoleStudent, models.RoleAdmin:
		return role, nil
	default:
		return "", models.NewValidationError("Role must be either student or admin")
	}
}

// ValidateLogin checks the login fields without leaking which one is wrong.
func ValidateLogin(email, password string) error {
	if !IsEmail(email) {
		return models.NewValidationError("Please provide a valid email")
	}
	if password == "" {
		return models.NewValidationError("Password is required")
	}
	return nil
}
