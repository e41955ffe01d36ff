package netcrypto

import (
	"crypto/rand"
	"io"
)

// setRandomSourceForTest overrides the package-wide randomness source for
// the duration of a test. It exists only so tests can build deterministic
// fixtures; being in a _test.go file, it never ships in a production
// binary. Passing nil restores crypto/rand.Reader.
func setRandomSourceForTest(r io.Reader) {
	randMu.Lock()
	defer randMu.Unlock()
	if r == nil {
		randSrc = rand.Reader
		return
	}
	randSrc = r
}
