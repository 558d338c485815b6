// Package passhash wraps bcrypt into the credential hashing contract used by
// the authentication service: salted one-way hashing plus constant-time
// verification.
package passhash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash is returned by Verify when the stored digest is not a
// valid bcrypt hash. Callers should treat it as a verification failure.
var ErrMalformedHash = errors.New("malformed password hash")

// Hash derives a salted bcrypt digest from a plaintext password. The salt is
// generated per call, so hashing the same plaintext twice yields distinct
// digests.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify compares a plaintext candidate against a stored bcrypt digest using
// bcrypt's constant-time comparison. A mismatch returns (false, nil); a
// digest that cannot be parsed returns (false, ErrMalformedHash).
func Verify(plain, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
}
