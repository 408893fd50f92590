package utils

import "regexp"

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the email format
func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}
