package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"versekids/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const maxNameLength = 50

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if utf8.RuneCountInString(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", maxNameLength)}
	}
	return nil
}

// ValidateAge checks that a learner's age is within the supported range
func ValidateAge(age int) error {
	if age < models.MinAge || age > models.MaxAge {
		return ValidationError{Field: "age", Message: fmt.Sprintf("age must be between %d and %d", models.MinAge, models.MaxAge)}
	}
	return nil
}

// ValidateTimezone checks an IANA zone name. Empty means the server default.
func ValidateTimezone(tz string) error {
	if tz == "" {
		return nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return ValidationError{Field: "timezone", Message: "unknown time zone"}
	}
	return nil
}

// ValidateDayOfWeek checks a forced day. Zero means no forced day.
func ValidateDayOfWeek(day int) error {
	if day < 0 || day > 7 {
		return ValidationError{Field: "force_day_of_week", Message: "day must be between 1 and 7, or 0 for none"}
	}
	return nil
}

// ValidateLearner checks every user-supplied field of a learner profile
func ValidateLearner(l *models.Learner) error {
	if err := ValidateName(l.Name); err != nil {
		return err
	}
	if l.Nickname != "" && utf8.RuneCountInString(l.Nickname) > maxNameLength {
		return ValidationError{Field: "nickname", Message: fmt.Sprintf("nickname must be at most %d characters", maxNameLength)}
	}
	if err := ValidateAge(l.Age); err != nil {
		return err
	}
	return ValidateTimezone(l.Timezone)
}
