package utils

import (
	"fmt"
	"strings"

	"digistore/apperr"
)

// RequireFields checks the given name -> value pairs and returns a
// Validation error keyed per missing field, or nil when all are present.
func RequireFields(fields map[string]string) error {
	missing := map[string]string{}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing[name] = name + " is required"
		}
	}
	if len(missing) > 0 {
		return apperr.Validation("Validation failed", missing)
	}
	return nil
}

func ValidateEnum(value string, allowed []string, fieldName string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return apperr.BadRequest(fmt.Sprintf("Invalid %s. Allowed values: %s", fieldName, strings.Join(allowed, ", ")))
}

func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return apperr.BadRequest(fieldName + " must be a positive number")
	}
	return nil
}

// ValidateEmail performs the same loose shape check the registration flow
// has always used: one @, non-empty local part, dotted domain.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return apperr.BadRequest("Invalid email format")
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	if dot < 1 || dot == len(domain)-1 || strings.ContainsAny(email, " \t") {
		return apperr.BadRequest("Invalid email format")
	}
	return nil
}

// SanitizeInput trims surrounding whitespace from user-supplied strings.
func SanitizeInput(s string) string {
	return strings.TrimSpace(s)
}

// SanitizePtr trims a nullable string, mapping empty results to nil.
func SanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
