package secp256k1

import (
	"math/big"
	"sync"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/field"
)

// params holds the secp256k1 domain parameters. It is built once and never
// modified; accessors hand out copies of the integers.
type params struct {
	p, n      *big.Int
	halfOrder *big.Int
	sqrtExp   *big.Int // (p+1)/4
	curve     curves.Curve
	g         curves.Point
}

// fromHex converts the passed hex string into a big integer pointer and will
// panic if there is an error. It must only be called for the hard-coded
// constants below.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

var domain = sync.OnceValue(func() *params {
	// Curve parameters taken from [SECG] section 2.4.1.
	p := fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	n := fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	gx := fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy := fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

	curve := curves.New(field.New(new(big.Int), p), field.New(big.NewInt(7), p))
	return &params{
		p:         p,
		n:         n,
		halfOrder: new(big.Int).Rsh(n, 1),
		sqrtExp:   new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2),
		curve:     curve,
		g:         curve.MustPoint(field.New(gx, p), field.New(gy, p)),
	}
})

// P returns the prime of the field coordinates live in.
func P() *big.Int {
	return new(big.Int).Set(domain().p)
}

// N returns the order of the generator, the modulus of the scalar field.
func N() *big.Int {
	return new(big.Int).Set(domain().n)
}

// HalfOrder returns floor(N/2), the largest s accepted in low-s form.
func HalfOrder() *big.Int {
	return new(big.Int).Set(domain().halfOrder)
}

// Curve returns y^2 = x^3 + 7 over the field of P.
func Curve() curves.Curve {
	return domain().curve
}

// Generator returns the base point G.
func Generator() Point {
	return Point{p: domain().g}
}

// Infinity returns the identity of the secp256k1 group.
func Infinity() Point {
	return Point{p: domain().curve.Identity()}
}
