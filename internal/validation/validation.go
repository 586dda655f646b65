// Package validation provides structured validation error handling
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error represents a validation error with field-specific details
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors represents multiple validation errors
type Errors []Error

// Error implements the error interface
func (ve Errors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var messages []string
	for _, err := range ve {
		if err.Field != "" {
			messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
		} else {
			messages = append(messages, err.Message)
		}
	}

	return strings.Join(messages, "; ")
}

// Add adds a validation error
func (ve *Errors) Add(field, message string) {
	*ve = append(*ve, Error{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors
func (ve Errors) HasErrors() bool {
	return len(ve) > 0
}

// ValidateRequired checks if a value is not empty
func ValidateRequired(value string, fieldName string) *Error {
	if strings.TrimSpace(value) == "" {
		return &Error{
			Field:   fieldName,
			Message: "is required",
		}
	}
	return nil
}

// ValidateMaxLength checks if a string doesn't exceed the maximum length.
// A non-positive maxLength disables the check.
func ValidateMaxLength(value string, maxLength int, fieldName string) *Error {
	if maxLength > 0 && utf8.RuneCountInString(value) > maxLength {
		return &Error{
			Field:   fieldName,
			Message: fmt.Sprintf("must not exceed %d characters", maxLength),
		}
	}
	return nil
}

// TokenValidation validates inspection request parameters
type TokenValidation struct {
	Token     string
	MaxLength int
}

// Validate validates token fields
func (tv *TokenValidation) Validate() error {
	var errors Errors

	if err := ValidateRequired(tv.Token, "token"); err != nil {
		errors.Add(err.Field, err.Message)
	} else {
		if err := ValidateMaxLength(strings.TrimSpace(tv.Token), tv.MaxLength, "token"); err != nil {
			errors.Add(err.Field, err.Message)
		}
	}

	if errors.HasErrors() {
		return errors
	}

	return nil
}
