package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt cost used for the seeded directory
const DefaultCost = 12

// Hash hashes a plaintext password using bcrypt
func Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a plaintext password with a stored hash
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
