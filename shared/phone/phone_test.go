package phone_test

import (
	"testing"

	"lotus/shared/phone"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "digits only pass through",
			input:    "0812345678",
			expected: "0812345678",
		},
		{
			name:     "spaces and dashes stripped",
			input:    "081-234 5678",
			expected: "0812345678",
		},
		{
			name:     "parentheses stripped",
			input:    "(081) 234-5678",
			expected: "0812345678",
		},
		{
			name:     "leading plus preserved",
			input:    "+66 81 234 5678",
			expected: "+66812345678",
		},
		{
			name:     "plus only in the middle is dropped",
			input:    "081+2345678",
			expected: "0812345678",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  0812345678  ",
			expected: "0812345678",
		},
		{
			name:     "no digits yields empty",
			input:    "call me maybe",
			expected: "",
		},
		{
			name:     "bare plus yields empty",
			input:    "+",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := phone.Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "local number",
			input:    "0812345678",
			expected: true,
		},
		{
			name:     "international number",
			input:    "+66812345678",
			expected: true,
		},
		{
			name:     "seven digits is the minimum",
			input:    "1234567",
			expected: true,
		},
		{
			name:     "six digits is too short",
			input:    "123456",
			expected: false,
		},
		{
			name:     "fifteen digits is the maximum",
			input:    "123456789012345",
			expected: true,
		},
		{
			name:     "sixteen digits is too long",
			input:    "1234567890123456",
			expected: false,
		},
		{
			name:     "formatting does not count toward length",
			input:    "12-34-56",
			expected: false,
		},
		{
			name:     "empty input",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := phone.Valid(tt.input)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}
