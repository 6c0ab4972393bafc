package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/scholarmatch-dev/scholarmatch/internal/models"
)

// Errors maps a form field to its first failing rule's message.
type Errors map[string]string

var (
	fullNamePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailPattern    = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	gradesPattern   = regexp.MustCompile(`^[0-9]+%?$`)
)

type SignupInput struct {
	Email                 string
	Password              string
	ConfirmPassword       string
	FullName              string
	Grades                string
	ProgramLevel          string
	PreferredProgramLevel string
}

// ValidateSignup checks every field and returns the full error map, so the
// frontend can mark all failing inputs in one round trip. Email uniqueness
// is checked separately against the store.
func ValidateSignup(in SignupInput) Errors {
	errors := Errors{}

	if in.FullName == "" {
		errors["full-name"] = "Full name is required"
	} else if utf8.RuneCountInString(in.FullName) > 50 {
		errors["full-name"] = "Full name must be 50 characters or less"
	} else if !fullNamePattern.MatchString(in.FullName) {
		errors["full-name"] = "Full name can only contain letters and spaces"
	}

	if in.Email == "" {
		errors["email"] = "Email is required"
	} else if utf8.RuneCountInString(in.Email) > 254 {
		errors["email"] = "Email address is too long (max 254 characters)"
	} else if !emailPattern.MatchString(in.Email) {
		errors["email"] = "Please enter a valid email address"
	}

	if in.Password == "" {
		errors["password"] = "Password is required"
	} else if utf8.RuneCountInString(in.Password) < 8 {
		errors["password"] = "Password must be at least 8 characters long"
	} else if utf8.RuneCountInString(in.Password) > 128 {
		errors["password"] = "Password must be 128 characters or less"
	}

	if in.Password != in.ConfirmPassword {
		errors["confirm-password"] = "Passwords do not match"
	}

	if in.Grades != "" {
		if utf8.RuneCountInString(in.Grades) > 10 {
			errors["grades"] = "Grades must be 10 characters or less"
		} else if !gradesPattern.MatchString(in.Grades) {
			errors["grades"] = "Grades must be numeric with optional % sign (e.g., 85 or 85%)"
		}
	}

	if in.ProgramLevel != "" && !models.ProgramLevel(in.ProgramLevel).Valid() {
		errors["program-level"] = "Please select a valid program level"
	}

	if in.PreferredProgramLevel != "" && !models.ProgramLevel(in.PreferredProgramLevel).ValidPreference() {
		errors["preferred-program-level"] = "Please select a valid program level"
	}

	return errors
}

// ParseCGPA returns nil for empty or unparseable input. Bad values are
// dropped rather than rejected; the signup form treats CGPA as optional.
func ParseCGPA(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &value
}

// ParseCheckbox accepts the value shapes browsers and JSON clients send for
// a checkbox: true, "on", "true" and "True" are all checked.
func ParseCheckbox(v interface{}) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		return value == "on" || value == "true" || value == "True"
	}
	return false
}

// NormalizeOptional maps empty or whitespace-only strings to nil so optional
// columns store NULL instead of "".
func NormalizeOptional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
