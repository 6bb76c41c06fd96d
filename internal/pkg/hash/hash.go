// Package hash provides one-way password hashing.
package hash

// Hash hashes plaintext secrets and verifies them later.
type Hash interface {
	// Hash returns a one-way hash of plaintext.
	Hash(plaintext string) ([]byte, error)

	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
