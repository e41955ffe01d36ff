// Package handshake sequences the cryptographic steps of session
// establishment: generate an ephemeral key pair, exchange public keys
// with the peer, derive the session key schedule, and bind an SRP
// identity to the resulting transcript. It performs no I/O of its own —
// callers own the transport and feed this package the bytes it needs.
package handshake

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/voxelnet/netcrypto"
)

// Role distinguishes which side of the exchange a Session plays, since
// the client and server ends of an X25519 handshake consume each other's
// public key but otherwise run the identical key schedule.
type Role int

const (
	RoleClient Role = iota
	RoleServer
)

// Session tracks one in-progress or completed handshake. ID uniquely
// identifies the session for logging and correlation; it has no
// cryptographic role.
type Session struct {
	ID   string
	Role Role

	local *netcrypto.KeyPair
	keys  *netcrypto.SessionKeys
}

// New starts a session by generating a fresh ephemeral key pair for
// role. Call LocalPublicKey to get the bytes to send to the peer, then
// CompleteWithPeerKey once the peer's public key arrives.
func New(role Role) (*Session, error) {
	kp, err := netcrypto.GenerateEphemeralKeyPair()
	if err != nil {
		return nil, fmt.Errorf("handshake: generate key pair: %w", err)
	}

	return &Session{
		ID:    uuid.NewString(),
		Role:  role,
		local: kp,
	}, nil
}

// LocalPublicKey returns the public key to send to the peer.
func (s *Session) LocalPublicKey() [32]byte {
	return s.local.PublicKey()
}

// CompleteWithPeerKey runs the shared-secret and key-schedule derivation
// against the peer's public key. It must be called exactly once per
// Session; calling it twice would derive a second, independent key
// schedule from the same local key pair, which is not a supported reuse.
func (s *Session) CompleteWithPeerKey(peerPub [32]byte) error {
	if s.keys != nil {
		return fmt.Errorf("handshake: session %s already completed", s.ID)
	}

	keys, err := netcrypto.DeriveSessionKeys(s.local, peerPub)
	if err != nil {
		return fmt.Errorf("handshake: derive session keys: %w", err)
	}
	s.keys = keys
	return nil
}

// Keys returns the derived session key schedule. It is nil until
// CompleteWithPeerKey has succeeded.
func (s *Session) Keys() *netcrypto.SessionKeys {
	return s.keys
}

// SRPIdentity binds name to this session's handshake digest, for the SRP
// exchange that authenticates the session. CompleteWithPeerKey must have
// already succeeded.
func (s *Session) SRPIdentity(name string) (string, error) {
	if s.keys == nil {
		return "", fmt.Errorf("handshake: session %s has no handshake digest yet", s.ID)
	}
	return netcrypto.MakeSRPIdentity(&s.keys.HandshakeDigest, name), nil
}

// Close zeroes the derived key schedule and the local ephemeral scalar
// so neither lingers in memory once the session ends.
func (s *Session) Close() {
	if s.keys != nil {
		s.keys.Zero()
	}
	if s.local != nil {
		s.local.Zero()
	}
}
