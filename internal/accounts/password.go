package accounts

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed; not tunable per call.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash. The salt is random, so hashing
// the same plaintext twice yields different strings.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored hash. A
// malformed stored hash counts as a mismatch rather than an error.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
