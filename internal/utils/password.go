package utils

import "golang.org/x/crypto/bcrypt"

const passwordCost = 10

// HashPassword derives a salted bcrypt hash. Each call salts freshly, so the
// same password never hashes to the same value twice.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. A wrong
// password is a plain false, never an error.
func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
