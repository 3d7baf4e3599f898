package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var phoneStrip = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// ValidEmail checks the basic local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// PhoneDigits strips spaces, hyphens and parentheses from a phone number.
func PhoneDigits(phone string) string {
	return phoneStrip.Replace(phone)
}

// ValidPhone accepts 10-15 digits after stripping separators.
func ValidPhone(phone string) bool {
	digits := PhoneDigits(phone)
	if len(digits) < 10 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
