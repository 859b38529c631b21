package validation

import (
	"errors"
	"testing"

	"versekids/internal/models"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "test@example.com",
			wantErr: false,
		},
		{
			name:    "valid email with subdomain",
			email:   "user@mail.example.com",
			wantErr: false,
		},
		{
			name:    "valid email with plus",
			email:   "user+tag@example.com",
			wantErr: false,
		},
		{
			name:    "missing @",
			email:   "testexample.com",
			wantErr: true,
		},
		{
			name:    "missing domain",
			email:   "test@",
			wantErr: true,
		},
		{
			name:    "missing local part",
			email:   "@example.com",
			wantErr: true,
		},
		{
			name:    "empty string",
			email:   "",
			wantErr: true,
		},
		{
			name:    "spaces in email",
			email:   "test @example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid name",
			input:   "John Doe",
			wantErr: false,
		},
		{
			name:    "single name",
			input:   "John",
			wantErr: false,
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: true,
		},
		{
			name:    "name too short",
			input:   "J",
			wantErr: true,
		},
		{
			name:    "name with hyphen",
			input:   "Mary-Jane",
			wantErr: false,
		},
		{
			name:    "name with apostrophe",
			input:   "O'Brien",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		age     int
		wantErr bool
	}{
		{age: 3, wantErr: true},
		{age: 4, wantErr: false},
		{age: 8, wantErr: false},
		{age: 12, wantErr: false},
		{age: 13, wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateAge(tt.age)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAge(%d) error = %v, wantErr %v", tt.age, err, tt.wantErr)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	if err := ValidateTimezone(""); err != nil {
		t.Errorf("empty time zone should be accepted: %v", err)
	}
	if err := ValidateTimezone("America/Chicago"); err != nil {
		t.Errorf("America/Chicago should be accepted: %v", err)
	}
	if err := ValidateTimezone("Nowhere/Special"); err == nil {
		t.Error("unknown time zone should be rejected")
	}
}

func TestValidateLearner(t *testing.T) {
	valid := &models.Learner{Name: "Ada", Age: 6, Timezone: "Europe/London"}
	if err := ValidateLearner(valid); err != nil {
		t.Fatalf("ValidateLearner() unexpected error: %v", err)
	}

	tooYoung := &models.Learner{Name: "Ada", Age: 2}
	err := ValidateLearner(tooYoung)
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Field != "age" {
		t.Errorf("expected age validation error, got %v", err)
	}

	if err := ValidateDayOfWeek(8); err == nil {
		t.Error("day 8 should be rejected")
	}
	if err := ValidateDayOfWeek(0); err != nil {
		t.Errorf("day 0 should be accepted: %v", err)
	}
}
