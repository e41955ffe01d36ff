//go:build !netcrypto_debugdump

package netcrypto

// DumpSessionKeys is a no-op unless the binary is built with the
// netcrypto_debugdump tag. See debugdump_enabled.go.
func DumpSessionKeys(label string, keys *SessionKeys) {}
