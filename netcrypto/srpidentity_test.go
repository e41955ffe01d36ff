package netcrypto

import "testing"

func TestMakeSRPIdentityPinnedVector(t *testing.T) {
	var digest [32]byte // all-zero

	got := MakeSRPIdentity(&digest, "alice")
	want := "alice:zjg392pUpjUZGxcErHZyJk/BfDOX/1Ln2s/B7zYDpJM="
	if got != want {
		t.Errorf("MakeSRPIdentity = %q, want %q", got, want)
	}
}

func TestMakeSRPIdentityDeterministic(t *testing.T) {
	var digest [32]byte
	digest[0] = 1

	a := MakeSRPIdentity(&digest, "bob")
	b := MakeSRPIdentity(&digest, "bob")
	if a != b {
		t.Errorf("MakeSRPIdentity is not deterministic: %q != %q", a, b)
	}
}

func TestMakeSRPIdentityChangesWithDigest(t *testing.T) {
	var d1, d2 [32]byte
	d2[0] = 1

	a := MakeSRPIdentity(&d1, "carol")
	b := MakeSRPIdentity(&d2, "carol")
	if a == b {
		t.Errorf("MakeSRPIdentity did not change when the digest changed")
	}
}
