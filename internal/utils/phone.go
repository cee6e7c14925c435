package utils

import (
	"regexp"
	"strings"
)

// Indian mobile numbers: ten digits, first digit 6-9.
var mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

func IsValidMobileNumber(contact string) bool {
	return mobileRegex.MatchString(NormalizeContact(contact))
}

// NormalizeContact strips separators and a leading country prefix so that
// "+91 98765-43210" and "9876543210" validate the same way.
func NormalizeContact(contact string) string {
	cleaned := regexp.MustCompile(`[\s\-()]`).ReplaceAllString(contact, "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "91") {
		cleaned = cleaned[2:]
	}
	if len(cleaned) == 11 && strings.HasPrefix(cleaned, "0") {
		cleaned = cleaned[1:]
	}
	return cleaned
}
