package netcrypto

import "errors"

// Error kinds returned by this package. Callers map these to user-visible
// behavior (handshake-phase failures reject the connection; steady-state
// AEAD failures drop the packet and keep the session alive).
var (
	// ErrRandomnessUnavailable means the OS RNG refused to fill a buffer.
	// Fatal for whatever operation requested it.
	ErrRandomnessUnavailable = errors.New("netcrypto: secure randomness unavailable")

	// ErrWeakPeerKey means ECDH produced an all-zero shared secret (a
	// low-order peer point). The session must be aborted.
	ErrWeakPeerKey = errors.New("netcrypto: ECDH produced a low-order (all-zero) shared secret")

	// ErrInvalidParameters means the caller supplied mismatched buffer
	// sizes or an oversize plaintext to Seal. Programmer error.
	ErrInvalidParameters = errors.New("netcrypto: invalid seal/open parameters")

	// ErrEncryptionFailure means the AEAD primitive failed during Seal.
	ErrEncryptionFailure = errors.New("netcrypto: AEAD seal failed")

	// ErrAuthenticationFailure means Open rejected the tag, or (via
	// ErrMessageTooShort) the input could not possibly carry one. The
	// buffer has been scrubbed; the caller must not consume it.
	ErrAuthenticationFailure = errors.New("netcrypto: AEAD authentication failed")

	// ErrMessageTooShort means Open was called on a buffer of 16 bytes or
	// fewer. Treated identically to ErrAuthenticationFailure by callers.
	ErrMessageTooShort = errors.New("netcrypto: ciphertext too short to contain a tag")
)
