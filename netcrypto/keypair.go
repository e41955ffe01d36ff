package netcrypto

import (
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// GenerateEphemeralKeyPair draws 32 bytes of secure randomness, applies
// Curve25519 clamping, and computes the matching public key via
// base-point multiplication.
func GenerateEphemeralKeyPair() (*KeyPair, error) {
	var scalar [ecdhKeySize]byte
	if err := fillRandom(scalar[:]); err != nil {
		return nil, err
	}

	// Curve25519 clamping (https://cr.yp.to/ecdh.html): clear the low 3
	// bits of the first byte, clear the high bit and set bit 6 of the
	// last byte.
	scalar[0] &= 0xF8
	scalar[31] &= 0x7F
	scalar[31] |= 0x40

	pub, err := curve25519.X25519(scalar[:], curve25519.Basepoint)
	if err != nil {
		zero(scalar[:])
		return nil, fmt.Errorf("netcrypto: compute public key: %w", err)
	}

	kp := &KeyPair{private: scalar}
	copy(kp.public[:], pub)
	zero(scalar[:])
	return kp, nil
}

// IsClamped reports whether priv satisfies the Curve25519 clamping
// invariant. Exported for tests that need to assert on freshly generated
// key pairs without reaching into package-private fields.
func IsClamped(priv [ecdhKeySize]byte) bool {
	return priv[0]&7 == 0 && priv[31]&0x80 == 0 && priv[31]&0x40 != 0
}

// clamped reports whether kp's private scalar satisfies the Curve25519
// clamping invariant. Used internally by tests in this package.
func (kp *KeyPair) clamped() bool {
	return IsClamped(kp.private)
}
