package utils

import (
	"strings"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
)

// NormalizeMSISDN cleans a phone number into canonical digit-only form.
// Non-digit characters are stripped, the stripped number must be 10-15
// digits long, and a leading "0" is then rewritten to the Indonesian
// country code "62".
func NormalizeMSISDN(msisdn string) (string, error) {
	var b strings.Builder
	for _, r := range msisdn {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) < 10 || len(digits) > 15 {
		return "", apperrors.Validation("phone number must be 10-15 digits")
	}

	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}

	return digits, nil
}

// IsNumericCode reports whether code consists of exactly n digits.
func IsNumericCode(code string, n int) bool {
	if len(code) != n {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
