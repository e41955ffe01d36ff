// Package auth implements account authentication: SRP-6a verifier
// generation and wire encoding, and the legacy SHA1-based password hash
// kept around for accounts that predate SRP.
package auth

import "math/big"

// group2048 is the RFC 5054 2048-bit "modp" SRP group: a safe prime N and
// generator g=2. Every verifier and proof in this package is computed
// modulo this N; changing it invalidates every verifier already on disk.
var group2048 = struct {
	N *big.Int
	g *big.Int
}{
	N: mustHex("AC6BDB41324A9A9BF166DE5E1389582FAF72B6651987EE07FC3192943DB56050A37329CBB4A099ED8193E0757767A13DD52312AB4B03310DCD7F48A9DA04FD50E8083969EDB767B0CF6095179A163AB3661A05FBD5FAAAE82918A9962F0B93B855F97993EC975EEAA80D740ADBF4FF747359D041D5C33EA71D281E446B14773BCA97B43A23FB801676BD207A436C6481F1D2B9078717461A5B9D32E688F87748544523B524B0D57D5EA77A2775D2ECFA032CFBDBF52FB3786160279004E57AE6AF874E7303CE53299CCC041C7BC308D82A5698F3A8D0C38271AE35F8E9DBFBB694B5C803D89F7AE435DE236D525F54759B65E372FCD68EF20FA7111F9E4AFF73"),
	g: big.NewInt(2),
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("auth: malformed group constant")
	}
	return n
}

// modExpG returns g^exp mod N in the 2048-bit group, i.e. the verifier
// computation v = g^x mod N.
func modExpG(exp *big.Int) *big.Int {
	return new(big.Int).Exp(group2048.g, exp, group2048.N)
}
