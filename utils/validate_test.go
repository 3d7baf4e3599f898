package utils_test

import (
	"testing"

	"clinic-portal/utils"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@clinic.example.org", true},
		{"", false},
		{"plain", false},
		{"missing@tld", false},
		{"two@@at.com", false},
		{"spaces in@mail.com", false},
	}
	for _, tt := range tests {
		if got := utils.ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0123456789", true},
		{"(012) 345-6789", true},
		{"012 345 678 901 234", true},
		{"123456789", false},         // 9 digits
		{"0123456789012345", false},  // 16 digits
		{"01234abc89", false},        // letters survive stripping
		{"+10123456789", false},      // plus is not stripped
		{"", false},
	}
	for _, tt := range tests {
		if got := utils.ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestPhoneDigits(t *testing.T) {
	if got := utils.PhoneDigits("(012) 345-6789"); got != "0123456789" {
		t.Errorf("PhoneDigits = %q, want 0123456789", got)
	}
}
