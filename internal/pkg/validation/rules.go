package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Phone pattern - digits with optional country code, spaces and dashes
	PhonePattern = `^\+?[0-9][0-9 \-]{6,17}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// NormalizeEmail lower-cases and trims an email address.
// Emails are stored and compared in this normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the (normalized) email matches the pattern
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(NormalizeEmail(email))
}

// ValidPhone reports whether the phone number matches the pattern
func ValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(strings.TrimSpace(phone))
}

// NonEmpty reports whether the string has content after trimming
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
