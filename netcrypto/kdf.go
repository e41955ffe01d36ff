package netcrypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
)

// SharedSecret computes the X25519 ECDH shared secret between local's
// private scalar and peerPub. It returns ErrWeakPeerKey if the result is
// the all-zero point (a low-order peer key), which would make every
// subkey derived from it predictable.
func SharedSecret(local *KeyPair, peerPub [ecdhKeySize]byte) ([ecdhKeySize]byte, error) {
	var secret [ecdhKeySize]byte

	out, err := curve25519.X25519(local.private[:], peerPub[:])
	if err != nil {
		// With fixed 32-byte inputs, X25519's only failure is an all-zero
		// (low-order) result, which it reports as an error of its own.
		return secret, ErrWeakPeerKey
	}

	if isAllZero(out) {
		return secret, ErrWeakPeerKey
	}

	copy(secret[:], out)
	return secret, nil
}

func isAllZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

// DeriveSessionKeys runs the full key schedule: ECDH, HKDF-Extract over
// the shared secret with an empty salt to get a root key, then
// HKDF-Expand the root key three times under fixed info strings to get
// the client/server channel keys and the handshake digest.
//
// The info strings and the empty-salt choice are wire-protocol
// invariants; changing either breaks interoperability with any peer
// built against the original values.
func DeriveSessionKeys(local *KeyPair, peerPub [ecdhKeySize]byte) (*SessionKeys, error) {
	secret, err := SharedSecret(local, peerPub)
	if err != nil {
		return nil, err
	}
	defer zero(secret[:])

	root := hkdf.Extract(sha256.New, secret[:], nil)
	defer zero(root)

	keys := &SessionKeys{}

	clientSend := make([]byte, NChannels*aesKeySize)
	if err := expand(root, infoClientSendKeys, clientSend); err != nil {
		return nil, err
	}
	defer zero(clientSend)

	serverSend := make([]byte, NChannels*aesKeySize)
	if err := expand(root, infoServerSendKeys, serverSend); err != nil {
		return nil, err
	}
	defer zero(serverSend)

	digest := make([]byte, 32)
	if err := expand(root, infoHandshakeDigest, digest); err != nil {
		return nil, err
	}
	defer zero(digest)

	for i := 0; i < NChannels; i++ {
		copy(keys.ClientSendKeys[i][:], clientSend[i*aesKeySize:(i+1)*aesKeySize])
		copy(keys.ServerSendKeys[i][:], serverSend[i*aesKeySize:(i+1)*aesKeySize])
	}
	copy(keys.HandshakeDigest[:], digest)

	return keys, nil
}

func expand(prk []byte, info string, out []byte) error {
	r := hkdf.Expand(sha256.New, prk, []byte(info))
	if _, err := io.ReadFull(r, out); err != nil {
		return fmt.Errorf("netcrypto: HKDF-Expand(%s): %w", info, err)
	}
	return nil
}
