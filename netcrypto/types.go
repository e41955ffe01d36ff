// Package netcrypto implements the cryptographic core of a session
// establishment protocol: an ephemeral X25519 key agreement, an
// HKDF-SHA256 subkey derivation tree, per-channel AES-128-GCM packet
// encryption, and the HMAC binding that ties an SRP identity to the
// handshake transcript.
//
// Every operation here is synchronous and side-effect free beyond writing
// to caller-supplied buffers. Outside builds tagged netcrypto_debugdump
// (see DumpSessionKeys), nothing in this package performs I/O or logs;
// key material is zeroed before it goes out of scope.
package netcrypto

const (
	// NChannels is the number of logically independent packet streams
	// multiplexed over the transport. Both peers must compile against the
	// same value; this core fixes it to match the voxel-server protocol
	// it was extracted from (reliable-ordered, reliable-unordered,
	// unreliable).
	NChannels = 3

	// aesKeySize is the size in bytes of one AES-128 channel key.
	aesKeySize = 16

	// gcmNonceSize is the AES-GCM nonce size used throughout this core.
	gcmNonceSize = 12

	// gcmTagSize is the AES-GCM authentication tag size.
	gcmTagSize = 16

	// ecdhKeySize is the size of an X25519 private or public key.
	ecdhKeySize = 32

	// infoClientSendKeys, infoServerSendKeys and infoHandshakeDigest are
	// the HKDF-Expand "info" labels. These are part of the wire protocol:
	// changing them silently breaks interoperability with any peer built
	// against a different value, so they must never change.
	infoClientSendKeys   = "minetest-client-channel-send-key"
	infoServerSendKeys   = "minetest-server-channel-send-key"
	infoHandshakeDigest  = "minetest-handshake-digest-for-srp"
)

// KeyPair is an ephemeral X25519 key pair. The private scalar is never
// exposed by value; only the public key can be read back out.
type KeyPair struct {
	private [ecdhKeySize]byte
	public  [ecdhKeySize]byte
}

// PublicKey returns the 32-byte X25519 public key.
func (kp *KeyPair) PublicKey() [ecdhKeySize]byte {
	return kp.public
}

// Zero destroys the private scalar. Callers that hold onto a KeyPair
// past its last SharedSecret/DeriveSessionKeys call should zero it so
// the scalar does not linger in memory.
func (kp *KeyPair) Zero() {
	zero(kp.private[:])
}

// SessionKeys holds every subkey derived from one ECDH exchange: the
// per-channel, per-direction AES-128 keys and the handshake digest used
// only to bind SRP authentication to this transcript.
type SessionKeys struct {
	// ClientSendKeys[i] encrypts traffic the client sends on channel i.
	ClientSendKeys [NChannels][aesKeySize]byte
	// ServerSendKeys[i] encrypts traffic the server sends on channel i.
	ServerSendKeys [NChannels][aesKeySize]byte
	// HandshakeDigest binds the SRP identity to this ECDH transcript. It
	// has no other use and should be discarded once authentication ends.
	HandshakeDigest [32]byte
}

// Zero overwrites every subkey with a fixed pattern so the key material
// does not linger in memory once the session that owns it ends.
func (sk *SessionKeys) Zero() {
	for i := range sk.ClientSendKeys {
		zero(sk.ClientSendKeys[i][:])
	}
	for i := range sk.ServerSendKeys {
		zero(sk.ServerSendKeys[i][:])
	}
	zero(sk.HandshakeDigest[:])
}
