//go:build netcrypto_debugdump

package netcrypto

import (
	"encoding/hex"
	"fmt"
	"os"
)

// DumpSessionKeys prints the full session key schedule to stderr in hex.
// It only exists in builds tagged netcrypto_debugdump; production builds
// link debugdump_disabled.go instead, which makes this a compile-time
// choice rather than a runtime setting that could be flipped on by a
// misplaced config value.
func DumpSessionKeys(label string, keys *SessionKeys) {
	fmt.Fprintf(os.Stderr, "netcrypto debug dump [%s]\n", label)
	for i, k := range keys.ClientSendKeys {
		fmt.Fprintf(os.Stderr, "  client_send_key[%d] = %s\n", i, hex.EncodeToString(k[:]))
	}
	for i, k := range keys.ServerSendKeys {
		fmt.Fprintf(os.Stderr, "  server_send_key[%d] = %s\n", i, hex.EncodeToString(k[:]))
	}
	fmt.Fprintf(os.Stderr, "  handshake_digest = %s\n", hex.EncodeToString(keys.HandshakeDigest[:]))
}
