// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

// package auth implements password hashing and the authentication service.
// Stored password hashes use the form "salt$digest": a fresh random hex salt
// per hash, and a SHA-256 digest of salt+password. The format is fixed by the
// on-disk stores this tool manages, so it is implemented here rather than
// delegated to a KDF library with its own encoding.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// saltBytes is the entropy of each fresh salt; rendered as hex it doubles.
const saltBytes = 16

// HashPassword creates a salted hash of the password. Each call draws a new
// salt, so hashing the same password twice produces different stored values.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	digest := sha256.Sum256([]byte(saltHex + password))
	return saltHex + "$" + hex.EncodeToString(digest[:]), nil
}

// VerifyPassword checks a candidate password against a stored "salt$digest"
// value. Malformed stored values (missing separator, wrong arity) are simply
// not a match; the comparison itself is constant-time.
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	salt, storedDigest := parts[0], parts[1]

	digest := sha256.Sum256([]byte(salt + password))
	computed := hex.EncodeToString(digest[:])

	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}
