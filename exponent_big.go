//go:build !(linux && cgo)

package modexp

import "math/big"

// modExp computes base^exponent mod modulus over big-endian operands and
// returns the minimal big-endian encoding of the result.
//
// A modulus of zero or one yields zero, encoded as the empty slice. A base
// of one reduces directly, skipping the exponentiation entirely; the result
// is the same and the cost no longer depends on the exponent size.
func modExp(base, exponent, modulus []byte) []byte {
	mod := new(big.Int).SetBytes(modulus)
	if mod.BitLen() <= 1 {
		return nil
	}
	b := new(big.Int).SetBytes(base)
	if b.BitLen() == 1 {
		return b.Mod(b, mod).Bytes()
	}
	exp := new(big.Int).SetBytes(exponent)
	return b.Exp(b, exp, mod).Bytes()
}
