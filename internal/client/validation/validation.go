// Package validation contains the pure credential rules for the login form.
// UI-facing invalid flags are kept by the caller; everything here is a plain
// function over its input.
package validation

import (
	"regexp"
	"strings"
)

// emailRe matches local@domain.tld: non-empty local part, at least one domain
// label, and a final label of two or more letters. Deeper checks (MX, unicode
// locals) are the server's concern.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@.]+(\.[^\s@.]+)*\.[A-Za-z]{2,}$`)

// MinPasswordLength is the only password rule the form enforces.
const MinPasswordLength = 6

// SanitizeEmail trims surrounding whitespace and lowercases the address.
// Idempotent: applying it twice gives the same result.
func SanitizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateEmail reports whether value has an acceptable address shape.
func ValidateEmail(value string) bool {
	return emailRe.MatchString(value)
}

// IsPasswordInvalid reports whether value fails the length rule. There is no
// upper bound and no character-class requirement.
func IsPasswordInvalid(value string) bool {
	return len(value) < MinPasswordLength
}

// FormIsValid re-runs both field checks and reports whether the form may be
// submitted. Both checks always run so per-field state derived from them
// stays in sync with the latest input.
func FormIsValid(email string, password string) (emailValid bool, passwordValid bool, ok bool) {
	emailValid = ValidateEmail(email)
	passwordValid = !IsPasswordInvalid(password)
	return emailValid, passwordValid, emailValid && passwordValid
}
