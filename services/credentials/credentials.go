package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash produces a salted bcrypt digest of the plaintext. The salt is
// random per call, so hashing the same plaintext twice gives different
// digests. Empty plaintexts are hashed like any other.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext is the password the digest was
// generated from.
func Verify(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
