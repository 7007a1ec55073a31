package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var errEmptySecret = errors.New("secret must not be empty")

// SealSecret bcrypt-hashes an operator secret so the plaintext need not stay in memory.
func SealSecret(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	return bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
}

func SecretMatches(sealed []byte, candidate string) bool {
	if len(sealed) == 0 || candidate == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(sealed, []byte(candidate)) == nil
}
