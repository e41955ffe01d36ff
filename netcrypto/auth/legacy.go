package auth

import (
	"crypto/sha1"
	"encoding/base64"
)

// TranslatePassword computes the legacy (pre-SRP) password hash:
// base64(SHA1(name + password)), with no separator between the two. An
// empty password always maps to the empty string, matching the sentinel
// accounts never actually authenticate with this path.
func TranslatePassword(name, password string) string {
	if password == "" {
		return ""
	}
	sum := sha1.Sum([]byte(name + password))
	return base64.StdEncoding.EncodeToString(sum[:])
}
