package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword generates a bcrypt digest of the plain password with the
// given cost. The digest embeds its own salt and cost, so CheckPassword
// works regardless of the cost the server is currently configured with.
func HashPassword(plain string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether plain matches the stored bcrypt digest.
// The comparison is constant-time within bcrypt itself.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
