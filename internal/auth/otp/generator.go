package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeLength is deliberately short for human entry; the 5-minute
// validity window keeps the guessing space acceptable.
const CodeLength = 6

var codeSpace = big.NewInt(1_000_000)

// GenerateCode returns a 6-digit numeric one-time code, zero-padded.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n), nil
}
