package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const digitAlphabet = "0123456789"

var errNegativeLength = errors.New("length must be non-negative")

// RandomDigits returns a cryptographically secure, unbiased decimal string of
// the requested length.
func RandomDigits(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}

	limit := big.NewInt(int64(len(digitAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = digitAlphabet[position.Int64()]
	}

	return string(value), nil
}
