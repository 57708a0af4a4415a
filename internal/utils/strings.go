package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// GenerateOTPCode generates a random numeric code of the given length.
func GenerateOTPCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n), nil
}

// FormatRupiah renders a rupiah amount with dot thousand separators,
// e.g. 1500000 -> "Rp1.500.000".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits
// visible. Used when phone numbers appear in logs.
func MaskPhoneNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	clean := digits.String()
	if len(clean) <= 4 {
		return clean
	}

	return strings.Repeat("*", len(clean)-4) + clean[len(clean)-4:]
}
