package services

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plain-text password with bcrypt at cost 10.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the provided password matches the
// stored hash.
func VerifyPassword(storedHash, providedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(providedPassword)) == nil
}
