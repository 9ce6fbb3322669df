// Package validator provides input validation helpers for form and
// payload fields.
package validator

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation errors
var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInputTooLong = errors.New("input exceeds maximum length")
	ErrEmptyInput   = errors.New("input cannot be empty")
)

// Field length limits
const (
	MaxNameLength    = 255
	MaxSubjectLength = 255
	MaxBodyLength    = 64 * 1024
)

// ValidateEmail validates email address format according to RFC 5322.
// Returns nil if valid, or an appropriate error.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return ErrEmptyInput
	}

	// RFC 5321 specifies max email length of 254 characters
	if utf8.RuneCountInString(email) > 254 {
		return ErrInputTooLong
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateRequired checks that a field is non-blank and within maxLen runes.
func ValidateRequired(value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyInput
	}
	if utf8.RuneCountInString(value) > maxLen {
		return ErrInputTooLong
	}
	return nil
}

// ValidateProficiency clamps a skill proficiency rating into the 1..5 range.
func ValidateProficiency(p int) int {
	if p < 1 {
		return 1
	}
	if p > 5 {
		return 5
	}
	return p
}
