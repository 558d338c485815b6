package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// emailPattern requires a non-whitespace local part and at least one dot in
// the domain. No network or DNS lookups are performed.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordSymbols is the fixed punctuation set accepted by the password
// policy.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// ValidEmail reports whether s looks like local-part@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// CheckPassword checks s against the password policy. The rules are applied
// in a fixed order and the first failing rule determines the returned reason.
// It returns (true, "") only when every rule passes.
func CheckPassword(s string) (bool, string) {
	if utf8.RuneCountInString(s) < 8 {
		return false, "password must be at least 8 characters long"
	}
	// bcrypt rejects inputs over 72 bytes, so catch oversized passwords
	// here where the failure is still user-correctable.
	if len(s) > 72 {
		return false, "password must be at most 72 characters long"
	}
	if !containsFunc(s, unicode.IsUpper) {
		return false, "password must contain at least one uppercase letter"
	}
	if !containsFunc(s, unicode.IsLower) {
		return false, "password must contain at least one lowercase letter"
	}
	if !containsFunc(s, unicode.IsDigit) {
		return false, "password must contain at least one digit"
	}
	if !strings.ContainsAny(s, passwordSymbols) {
		return false, "password must contain at least one special character"
	}
	return true, ""
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}
