package netcrypto

import "testing"

func TestGenerateEphemeralKeyPairIsClamped(t *testing.T) {
	kp, err := GenerateEphemeralKeyPair()
	if err != nil {
		t.Fatalf("GenerateEphemeralKeyPair: %v", err)
	}
	if !kp.clamped() {
		t.Errorf("private scalar is not clamped")
	}
}

func TestGenerateEphemeralKeyPairUniqueness(t *testing.T) {
	a, err := GenerateEphemeralKeyPair()
	if err != nil {
		t.Fatalf("GenerateEphemeralKeyPair: %v", err)
	}
	b, err := GenerateEphemeralKeyPair()
	if err != nil {
		t.Fatalf("GenerateEphemeralKeyPair: %v", err)
	}

	if a.PublicKey() == b.PublicKey() {
		t.Errorf("two independent key pairs produced the same public key")
	}
}

func TestIsClamped(t *testing.T) {
	cases := []struct {
		name string
		priv [32]byte
		want bool
	}{
		{"all zero", [32]byte{}, false},
	}

	var clamped [32]byte
	clamped[31] = 0x40
	cases = append(cases, struct {
		name string
		priv [32]byte
		want bool
	}{"minimal clamped", clamped, true})

	for _, c := range cases {
		if got := IsClamped(c.priv); got != c.want {
			t.Errorf("%s: IsClamped = %v, want %v", c.name, got, c.want)
		}
	}
}
