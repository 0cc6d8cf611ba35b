package dataproc

import "strings"

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// ValidateEmail reports whether email looks like an address: it must contain
// both "@" and ".". Deliverability is not checked.
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// ValidatePhone reports whether phone looks like a phone number: an optional
// leading "+" followed by 7 to 15 digits, which may be separated by spaces,
// dashes, dots or parentheses.
func ValidatePhone(phone string) bool {
	phone = strings.TrimPrefix(phone, "+")

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}
