package field

import (
	"math/big"
)

// Mod returns a mod m in the range [0, m).
//
// Unlike big.Int.Rem, the result is never negative, so differences computed
// in the integers can be reduced directly: Mod(-1, 5) == 4.
func Mod(a, m *big.Int) *big.Int {
	// a mod m = ((a rem m) + m) rem m
	r := new(big.Int).Rem(a, m)
	r.Add(r, m)
	return r.Rem(r, m)
}

// ModPow returns base^exponent mod m. The exponent must not be negative.
func ModPow(base, exponent, m *big.Int) *big.Int {
	if exponent.Sign() < 0 {
		panic("field: negative exponent passed to ModPow")
	}
	return new(big.Int).Exp(base, exponent, m)
}
