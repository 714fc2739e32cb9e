package pkg

import "golang.org/x/crypto/bcrypt"

// cost used for newly hashed passwords; existing hashes carry their own
const passwordHashCost = 14

// HashPassword derives the bcrypt hash stored on the user profile.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return BytesToString(hash), err
}

// CheckPasswordHash reports whether password matches the stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
