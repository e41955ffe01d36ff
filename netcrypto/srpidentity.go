package netcrypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// MakeSRPIdentity returns the string an SRP exchange authenticates
// against: the player name, a colon, and the base64 encoding of an
// HMAC-SHA256 of the name keyed by the handshake digest.
//
// Binding the SRP identity to the handshake digest ties the authenticated
// session to this specific ECDH transcript; an attacker who replays an
// SRP exchange captured on one transcript cannot splice it onto another.
func MakeSRPIdentity(digest *[32]byte, name string) string {
	mac := hmac.New(sha256.New, digest[:])
	mac.Write([]byte(name))
	sum := mac.Sum(nil)
	return name + ":" + base64.StdEncoding.EncodeToString(sum)
}
