package validator_test

import (
	"strings"
	"testing"

	"lotus/shared/validator"
)

type intakeTestStruct struct {
	Name        string `validate:"required"            json:"name"`
	Phone       string `validate:"required,phone"      json:"phone"`
	DurationMin int    `validate:"required,gt=0"       json:"duration_min"`
	Status      string `validate:"omitempty,oneof=pending in_progress done cancelled" json:"status"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *intakeTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &intakeTestStruct{
				Name:        "Somsri",
				Phone:       "0812345678",
				DurationMin: 60,
				Status:      "pending",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &intakeTestStruct{
				Phone:       "0812345678",
				DurationMin: 60,
			},
			expectError: true,
		},
		{
			name: "phone too short",
			data: &intakeTestStruct{
				Name:        "Somsri",
				Phone:       "123",
				DurationMin: 60,
			},
			expectError: true,
		},
		{
			name: "zero duration",
			data: &intakeTestStruct{
				Name:  "Somsri",
				Phone: "0812345678",
			},
			expectError: true,
		},
		{
			name: "unknown status",
			data: &intakeTestStruct{
				Name:        "Somsri",
				Phone:       "0812345678",
				DurationMin: 60,
				Status:      "paused",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid phone",
			field:       "+66812345678",
			tag:         "phone",
			expectError: false,
		},
		{
			name:        "invalid phone",
			field:       "not a number",
			tag:         "phone",
			expectError: true,
		},
		{
			name:        "valid clock",
			field:       "09:30",
			tag:         "clock",
			expectError: false,
		},
		{
			name:        "clock out of range",
			field:       "25:00",
			tag:         "clock",
			expectError: true,
		},
		{
			name:        "clock missing padding",
			field:       "9:30",
			tag:         "clock",
			expectError: true,
		},
		{
			name:        "valid date",
			field:       "2025-06-02",
			tag:         "datetime=2006-01-02",
			expectError: false,
		},
		{
			name:        "invalid date",
			field:       "02/06/2025",
			tag:         "datetime=2006-01-02",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Somsri","phone":"0812345678","duration_min":60}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"name":"Somsri","phone":"123","duration_min":60}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Somsri","phone":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data intakeTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &intakeTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
