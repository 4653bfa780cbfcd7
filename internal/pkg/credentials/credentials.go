package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Stored hashes use the Werkzeug layout so accounts created by the previous
// deployment keep working: "pbkdf2:sha256:<iterations>$<salt>$<hexdigest>".
const (
	method     = "pbkdf2:sha256"
	iterations = 600000
	keyLength  = 32
	saltBytes  = 16
)

// Hash derives a password hash with a freshly generated random salt.
func Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return HashWithSalt(password, hex.EncodeToString(salt)), nil
}

// HashWithSalt derives a password hash deterministically from the given
// salt. The salt string is used verbatim as key-derivation input, matching
// how the legacy hashes were produced.
func HashWithSalt(password, salt string) string {
	digest := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", method, iterations, salt, hex.EncodeToString(digest))
}

// Verify reports whether password matches the stored hash. Any deviation
// from the expected three-field layout fails closed; Verify never returns
// an error.
func Verify(password, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 {
		return false
	}

	header, salt, storedDigest := parts[0], parts[1], parts[2]

	headerParts := strings.Split(header, ":")
	if len(headerParts) != 3 {
		return false
	}
	if headerParts[0]+":"+headerParts[1] != method {
		return false
	}

	iters, err := strconv.Atoi(headerParts[2])
	if err != nil || iters <= 0 {
		return false
	}

	digest := pbkdf2.Key([]byte(password), []byte(salt), iters, keyLength, sha256.New)
	computed := hex.EncodeToString(digest)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}
