package auth

import (
	"crypto/sha1"
	"encoding/hex"
)

// HashPassword computes the credential digest: lowercase hex of
// SHA1(password ++ secret). The scheme is not per-user salted and is kept
// only for compatibility with the existing account rows; changing it would
// lock out every registered user.
func HashPassword(password, secret string) string {
	sum := sha1.Sum([]byte(password + secret))
	return hex.EncodeToString(sum[:])
}
