package service

import (
	"crypto/rand"
	"fmt"
)

// PNRLength is the fixed width of a Passenger Name Record number.
const PNRLength = 10

// GeneratePNR draws a 10-digit numeric string with uniform digits. Uniqueness
// is not guaranteed here; the booking ledger's unique index is the authority,
// and the allocator retries on collision.
func GeneratePNR() (string, error) {
	const charset = "0123456789"

	code := make([]byte, PNRLength)
	if _, err := rand.Read(code); err != nil {
		return "", fmt.Errorf("failed to draw pnr digits: %w", err)
	}

	for i := 0; i < PNRLength; i++ {
		code[i] = charset[int(code[i])%len(charset)]
	}

	return string(code), nil
}

// IsValidPNR reports whether pnr is exactly ten numeric digits.
func IsValidPNR(pnr string) bool {
	if len(pnr) != PNRLength {
		return false
	}
	for i := 0; i < len(pnr); i++ {
		if pnr[i] < '0' || pnr[i] > '9' {
			return false
		}
	}
	return true
}
