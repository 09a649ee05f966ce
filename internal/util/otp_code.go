package util

import (
	"crypto/rand"
	"math/big"
)

// GenerateOTPCode : генерирует цифровой одноразовый код длиной length
func GenerateOTPCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	digits := make([]byte, length)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", LogError("[util] ошибка генерации кода", err)
		}
		digits[i] = byte('0' + v.Int64())
	}

	return string(digits), nil
}
