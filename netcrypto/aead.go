package netcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// maxPlaintextLen is the exclusive upper bound on plaintext size Seal
// accepts, per spec: plaintext.len() < 2^31.
const maxPlaintextLen = 1 << 31

// Seal encrypts plaintext under key using nonce and writes the result
// (ciphertext followed by the 16-byte tag) to out. Out must be exactly
// len(plaintext)+gcmTagSize bytes; plaintext must be shorter than 2^31
// bytes; out may not alias plaintext.
//
// The nonce is supplied by the caller rather than generated here: channel
// nonces are derived from packet sequence numbers on the wire, not drawn
// fresh per packet, so this package has no business picking them.
func Seal(key *[aesKeySize]byte, nonce *[gcmNonceSize]byte, plaintext []byte, out []byte) error {
	if len(out) != len(plaintext)+gcmTagSize || len(plaintext) >= maxPlaintextLen {
		return ErrInvalidParameters
	}

	gcm, err := newGCM(key)
	if err != nil {
		return fmt.Errorf("netcrypto: %w", err)
	}

	sealed := gcm.Seal(out[:0], nonce[:], plaintext, nil)
	if len(sealed) != len(out) {
		return ErrEncryptionFailure
	}
	return nil
}

// Open authenticates and decrypts inout in place under key and nonce.
// Inout holds ciphertext followed by the 16-byte tag; the returned slice
// aliases inout's backing array and holds only the recovered plaintext.
//
// On any failure inout is scrubbed with a fixed non-zero pattern before
// returning, so a caller that ignores the error cannot walk away with
// unverified data.
func Open(key *[aesKeySize]byte, nonce *[gcmNonceSize]byte, inout []byte) ([]byte, error) {
	if len(inout) <= gcmTagSize {
		scrub(inout)
		return nil, ErrMessageTooShort
	}

	gcm, err := newGCM(key)
	if err != nil {
		scrub(inout)
		return nil, fmt.Errorf("netcrypto: %w", err)
	}

	plain, err := gcm.Open(inout[:0], nonce[:], inout, nil)
	if err != nil {
		scrub(inout)
		return nil, ErrAuthenticationFailure
	}
	return plain, nil
}

func newGCM(key *[aesKeySize]byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, gcmNonceSize)
}
