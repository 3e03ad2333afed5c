package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PasswordSpecials is the set of characters that count as "special".
const PasswordSpecials = `!@#$%^&*()-_+=[]{}\|;:'",<.>/?`

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// CheckPassword enforces the password strength rules: at least
// MinPasswordLength characters, no whitespace, and at least one uppercase
// letter, one digit and one character from PasswordSpecials. Any character
// outside lowercase, uppercase, digits and PasswordSpecials is rejected.
func CheckPassword(password string) (string, error) {
	if password == "" {
		return "", Errorf("Password not provided")
	}
	if strings.IndexFunc(password, unicode.IsSpace) >= 0 {
		return "", Errorf("Password must not contain whitespace")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "", Errorf("Password must be at least %d characters long", MinPasswordLength)
	}

	var upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSpecials, r):
			special = true
		case r >= 'a' && r <= 'z':
		default:
			return "", Errorf("Password contains invalid characters")
		}
	}
	if !upper || !digit || !special {
		return "", Errorf("Password must contain an uppercase character, number, and special character")
	}
	return password, nil
}
