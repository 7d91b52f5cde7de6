// Package hash implements the password digest used by the credential table.
//
// The scheme is a single unsalted SHA-256 round, hex-encoded. That is a
// placeholder-grade scheme kept for compatibility with the stored
// credential records; it is deterministic on purpose (lookups compare
// digests directly). A future upgrade would be a salted, tunable KDF and a
// one-time rehash of the table.
package hash

import (
	"crypto/sha256"
	"fmt"
)

// Password returns the hex SHA-256 digest of the plain-text password.
// Same input always yields the same output.
func Password(plain string) string {
	h := sha256.Sum256([]byte(plain))
	return fmt.Sprintf("%x", h)
}

// Verify reports whether plain hashes to digest.
func Verify(digest, plain string) bool {
	return Password(plain) == digest
}
