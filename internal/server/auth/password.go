package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the platform has always used for
// account passwords. Changing it only affects newly created hashes.
const bcryptCost = 10

// HashPassword derives a salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
