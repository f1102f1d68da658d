package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Coordinate is an element of the field of P, the type of point coordinates.
// It cannot be mixed with a Scalar; ScalarFromCoordinate is the only
// conversion between the two.
type Coordinate struct {
	e field.Element
}

// NewCoordinate returns v as a coordinate. It panics with
// ecc.ErrInvalidFieldElement if v is not in [0, P).
func NewCoordinate(v *big.Int) Coordinate {
	return Coordinate{e: field.New(v, domain().p)}
}

// ParseCoordinate interprets b as a 32-byte big-endian integer. It returns
// ecc.ErrMalformedEncoding when b has the wrong length or is not below P.
func ParseCoordinate(b []byte) (Coordinate, error) {
	if len(b) != 32 {
		return Coordinate{}, ecc.NewError(ecc.ErrMalformedEncoding,
			fmt.Sprintf("secp256k1: coordinate must be 32 bytes, got %d", len(b)))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(domain().p) >= 0 {
		return Coordinate{}, ecc.NewError(ecc.ErrMalformedEncoding,
			"secp256k1: coordinate is not below the field prime")
	}
	return NewCoordinate(v), nil
}

// BigInt returns a copy of the coordinate's value.
func (c Coordinate) BigInt() *big.Int {
	return c.e.Value()
}

// Bytes returns the coordinate as a 32-byte big-endian array.
func (c Coordinate) Bytes() [32]byte {
	var b [32]byte
	c.e.Value().FillBytes(b[:])
	return b
}

func (c Coordinate) IsZero() bool { return c.e.IsZero() }
func (c Coordinate) IsOdd() bool  { return c.e.IsOdd() }

// Equal reports whether c and o are the same field element.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.e.Equal(o.e)
}

func (c Coordinate) Add(o Coordinate) Coordinate { return Coordinate{e: c.e.Add(o.e)} }
func (c Coordinate) Sub(o Coordinate) Coordinate { return Coordinate{e: c.e.Sub(o.e)} }
func (c Coordinate) Mul(o Coordinate) Coordinate { return Coordinate{e: c.e.Mul(o.e)} }
func (c Coordinate) Neg() Coordinate             { return Coordinate{e: c.e.Neg()} }
func (c Coordinate) Pow(k uint64) Coordinate     { return Coordinate{e: c.e.Pow(k)} }

// Div returns c / o. It returns ecc.ErrDivisionByZero when o is zero.
func (c Coordinate) Div(o Coordinate) (Coordinate, error) {
	q, err := c.e.Div(o.e)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{e: q}, nil
}

// Sqrt returns c^((P+1)/4), a square root of c when one exists. Since
// P = 3 mod 4 this is the only exponentiation needed; callers must square the
// result to learn whether c was a quadratic residue.
func (c Coordinate) Sqrt() Coordinate {
	return Coordinate{e: c.e.PowBig(domain().sqrtExp)}
}

// String returns the coordinate as 0x-prefixed hex.
func (c Coordinate) String() string {
	return fmt.Sprintf("0x%064x", c.e.Value())
}
