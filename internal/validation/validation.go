// Package validation holds the field-level validators shared by every
// data-access module. Each validator either returns the normalized value or
// an *Error describing the violated rule. Validators have no side effects.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/courtbook/internal/common"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience levels accepted by ValidExpLevel.
const (
	ExpBeginner     = "beginner"
	ExpIntermediate = "intermediate"
	ExpAdvanced     = "advanced"
)

// States lists the 50 US state abbreviations accepted by ValidState.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

const maxEmailLength = 320

var (
	zipRe        = regexp.MustCompile(`^\d{5}(?:[-\s]\d{4})?$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	loginEmailRe = regexp.MustCompile(`^[a-z0-9]+([._\-][a-z0-9]+)*@[a-z0-9]+(-[a-z0-9]+)*[a-z0-9]*\.[a-z0-9]+[a-z0-9]+$`)
)

// Error is a validation failure. Its message is safe to show to end users.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// Unwrap lets callers match any validation failure with
// errors.Is(err, common.ErrValidation).
func (e *Error) Unwrap() error { return common.ErrValidation }

// Errorf builds a validation *Error from a format string.
func Errorf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// ValidID trims id and checks that it is a store identifier (24 hex chars).
func ValidID(id, name string) (string, error) {
	name = nameOr(name, "id variable")
	if id == "" {
		return "", Errorf("%s not provided", name)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", Errorf("%s must be a non-empty string", name)
	}
	if !primitive.IsValidObjectID(id) {
		return "", Errorf("%s is not a valid ObjectId", name)
	}
	return id, nil
}

// ValidStr trims s and rejects empty results.
func ValidStr(s, name string) (string, error) {
	name = nameOr(name, "String variable")
	if s == "" {
		return "", Errorf("%s not provided", name)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", Errorf("%s must be a non-empty string", name)
	}
	return s, nil
}

// ValidStrArr checks that every element is a non-empty string after trimming
// and returns a new slice holding the trimmed elements. arr is not modified.
func ValidStrArr(arr []string, name string) ([]string, error) {
	name = nameOr(name, "String array")
	if arr == nil {
		return nil, Errorf("%s not provided", name)
	}
	out := make([]string, 0, len(arr))
	for _, elem := range arr {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			return nil, Errorf("%s must contain only non-empty string elements", name)
		}
		out = append(out, elem)
	}
	return out, nil
}

// ValidState returns the uppercased 2-letter abbreviation of a US state.
func ValidState(state string) (string, error) {
	state, err := ValidStr(state, "State")
	if err != nil {
		return "", err
	}
	if len(state) != 2 {
		return "", Errorf("State must be its 2 letter abbreviation")
	}
	state = strings.ToUpper(state)
	if !slices.Contains(States, state) {
		return "", Errorf("State must be valid state")
	}
	return state, nil
}

// ValidZip accepts 12345, 12345-6789 and 12345 6789.
func ValidZip(zip string) (string, error) {
	zip, err := ValidStr(zip, "Zip code")
	if err != nil {
		return "", err
	}
	if !zipRe.MatchString(zip) {
		return "", Errorf("Invalid US Zip Code")
	}
	return zip, nil
}

// ValidEmail checks the basic local@domain.tld shape.
func ValidEmail(email string) (string, error) {
	email, err := ValidStr(email, "Email")
	if err != nil {
		return "", err
	}
	if !emailRe.MatchString(email) {
		return "", Errorf("Invalid email address")
	}
	return email, nil
}

// ValidLoginEmail lowercases email and applies the stricter shape used by
// the login form.
func ValidLoginEmail(email string) (string, error) {
	email, err := ValidStr(email, "Email")
	if err != nil {
		return "", err
	}
	email = strings.ToLower(email)
	if len(email) > maxEmailLength || !loginEmailRe.MatchString(email) {
		return "", Errorf("Invalid email address")
	}
	return email, nil
}

// ValidExpLevel accepts one of ExpBeginner, ExpIntermediate or ExpAdvanced.
func ValidExpLevel(level string) (string, error) {
	level, err := ValidStr(level, "Experience level")
	if err != nil {
		return "", err
	}
	switch level {
	case ExpBeginner, ExpIntermediate, ExpAdvanced:
		return level, nil
	}
	return "", Errorf("invalid experience level")
}

// ValidImageURL accepts an absolute http(s) URL or a site-relative path.
func ValidImageURL(image string) (string, error) {
	image, err := ValidStr(image, "Image")
	if err != nil {
		return "", err
	}
	if strings.ContainsAny(image, " \t\r\n") {
		return "", Errorf("Image must be a valid URL")
	}
	if strings.HasPrefix(image, "/") && !strings.HasPrefix(image, "//") {
		return image, nil
	}
	u, err := url.Parse(image)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", Errorf("Image must be a valid URL")
	}
	return image, nil
}
