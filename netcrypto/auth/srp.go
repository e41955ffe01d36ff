package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/voxelnet/netcrypto/b64"
)

// saltSize is the length in bytes of a freshly generated SRP salt. The
// verifier format does not constrain salt length, but every verifier this
// package creates uses the same size.
const saltSize = 16

// ErrMalformedVerifier means a verifier record could not be parsed: it
// was not exactly four '#'-separated components, the tag component was
// not "1", or a component was not valid base64.
var ErrMalformedVerifier = errors.New("auth: malformed srp verifier record")

// GenerateVerifier computes the SRP-6a verifier v = g^x mod N for name
// and password under salt, where x = SHA256(salt || SHA256(lower(name) +
// ":" + password)).
//
// The name is lowercased before hashing so that verifiers are insensitive
// to the case a player happened to type their name in at account
// creation; the salt is not.
func GenerateVerifier(name, password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, errors.New("auth: salt must not be empty")
	}

	x := derivePrivateKey(name, password, salt)
	v := modExpG(x)
	return v.Bytes(), nil
}

// GenerateVerifierAndSalt draws a fresh random salt and returns it
// alongside the verifier it produces for name and password.
func GenerateVerifierAndSalt(name, password string) (verifier, salt []byte, err error) {
	salt = make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("auth: generate salt: %w", err)
	}

	verifier, err = GenerateVerifier(name, password, salt)
	if err != nil {
		return nil, nil, err
	}
	return verifier, salt, nil
}

// GetEncoded draws a fresh verifier and salt for name and password and
// returns them in the on-disk encoded form.
func GetEncoded(name, password string) (string, error) {
	verifier, salt, err := GenerateVerifierAndSalt(name, password)
	if err != nil {
		return "", err
	}
	return Encode(verifier, salt), nil
}

// Encode renders a verifier and salt in the on-disk format:
// "#1#" + base64(salt) + "#" + base64(verifier). The "1" tag identifies
// the encoding version; there has only ever been one.
func Encode(verifier, salt []byte) string {
	return "#1#" + b64.Encode(salt) + "#" + b64.Encode(verifier)
}

// Decode parses a verifier record produced by Encode. It requires
// exactly four '#'-separated components ("", "1", salt, verifier), and
// gates on b64.IsValid before ever calling b64.Decode on the salt and
// verifier components; any other shape is rejected wholesale rather
// than partially accepted.
func Decode(encoded string) (verifier, salt []byte, ok bool) {
	parts := strings.Split(encoded, "#")
	if len(parts) != 4 || parts[0] != "" || parts[1] != "1" {
		return nil, nil, false
	}

	saltB64, verifierB64 := parts[2], parts[3]
	if saltB64 == "" || verifierB64 == "" {
		return nil, nil, false
	}
	if !b64.IsValid(saltB64) || !b64.IsValid(verifierB64) {
		return nil, nil, false
	}

	salt, err := b64.Decode(saltB64)
	if err != nil {
		return nil, nil, false
	}
	verifier, err = b64.Decode(verifierB64)
	if err != nil {
		return nil, nil, false
	}
	return verifier, salt, true
}

func derivePrivateKey(name, password string, salt []byte) *big.Int {
	inner := sha256.Sum256([]byte(strings.ToLower(name) + ":" + password))
	outer := sha256.New()
	outer.Write(salt)
	outer.Write(inner[:])
	sum := outer.Sum(nil)

	return new(big.Int).SetBytes(sum)
}
