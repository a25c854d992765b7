package validation

import (
	"testing"

	"skillbridge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	valid := []string{
		"student@example.com",
		"first.last@sub.example.co",
		"a+tag@example.org",
	}
	for _, email := range valid {
		assert.True(t, IsEmail(email), email)
	}

	invalid := []string{
		"",
		"plainstring",
		"@example.com",
		"user@",
		"user@localhost",
		"User Name <user@example.com>",
	}
	for _, email := range invalid {
		assert.False(t, IsEmail(email), email)
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://github.com/someone"))
	assert.True(t, IsURL("http://example.com/resume.pdf"))
	assert.False(t, IsURL("not a url"))
	assert.False(t, IsURL("ftp://example.com/file"))
	assert.False(t, IsURL("/relative/path"))
}

func TestValidateSignup(t *testing.T) {
	t.Run("Defaults role to student", func(t *testing.T) {
		role, err := ValidateSignup("Student", "student@example.com", "password123", "")
		require.NoError(t, err)
		assert.Equal(t, models.RoleStudent, role)
	})

	t.Run("Accepts admin role", func(t *testing.T) {
		role, err := ValidateSignup("Admin", "admin@example.com", "password123", models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, role)
	})

	tests := []struct {
		name     string
		userName string
		email    string
		pw       string
		role     string
		message  string
	}{
		{"Blank name", "  ", "a@b.co", "password123", "", "Name is required"},
		{"Bad email", "Name", "nope", "password123", "", "valid email"},
		{"Short password", "Name", "a@b.co", "12345", "", "at least 6 characters"},
		{"Unknown role", "Name", "a@b.co", "password123", "superuser", "Role must be either student or admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSignup(tt.userName, tt.email, tt.pw, tt.role)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin("student@example.com", "whatever"))
	assert.Error(t, ValidateLogin("bad-email", "whatever"))
	assert.Error(t, ValidateLogin("student@example.com", ""))
}
