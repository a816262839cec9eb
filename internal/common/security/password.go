package security

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHashed reports whether a stored password already looks like a bcrypt
// hash. Used by the startup migration that re-hashes legacy plaintext rows.
func IsHashed(password string) bool {
	return strings.HasPrefix(password, "$2")
}
