package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost keeps offline brute force expensive while staying acceptable for
// interactive login latency.
const BcryptCost = 12

// HashPassword produces a salted bcrypt hash of the plaintext. Two calls with
// the same plaintext never produce the same hash.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether plaintext matches the stored hash. Malformed
// hash strings report false rather than erroring.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
