package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier isolates credential verification so the storage format can be
// swapped (plaintext legacy rows, bcrypt) without touching call sites.
type Verifier interface {
	// Verify reports whether the presented password matches the stored
	// credential.
	Verify(stored, presented string) bool
	// Hash prepares a password for storage.
	Hash(password string) (string, error)
}

// PlainVerifier compares credentials as stored by the legacy system.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, presented string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

func (PlainVerifier) Hash(password string) (string, error) {
	return password, nil
}

// BcryptVerifier is the drop-in hashed scheme.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

func (BcryptVerifier) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
