package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP produces a numeric one-time password of the requested length.
// Digits come from crypto/rand, so leading zeros are possible and preserved.
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("otp length must be positive")
	}

	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate otp digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
