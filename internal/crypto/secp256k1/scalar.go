package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Scalar is an element of the integers modulo N, the order of the generator.
// Private keys, message digests and the r and s components of a signature
// are scalars; all their arithmetic reduces modulo N.
//
// The zero Scalar is not a constructed value: IsZero reports true for it and
// every other method panics. Use ScalarFromInt(0) for the scalar zero.
type Scalar struct {
	e field.Element
}

// NewScalar returns v as a scalar. It panics with ecc.ErrInvalidFieldElement
// if v is not in [0, N).
func NewScalar(v *big.Int) Scalar {
	return Scalar{e: field.New(v, domain().n)}
}

// ScalarFromInt returns v mod N.
func ScalarFromInt(v int64) Scalar {
	return Scalar{e: field.Reduce(big.NewInt(v), domain().n)}
}

// ReduceScalar returns v mod N.
func ReduceScalar(v *big.Int) Scalar {
	return Scalar{e: field.Reduce(v, domain().n)}
}

// ScalarFromBytes interprets b as a big-endian integer of any length and
// reduces it modulo N. It is meant for message digests.
func ScalarFromBytes(b []byte) Scalar {
	return ReduceScalar(new(big.Int).SetBytes(b))
}

// ParseScalar interprets b as a 32-byte big-endian integer. Unlike
// ScalarFromBytes it does not reduce: values not below N are rejected with
// ecc.ErrScalarOutOfRange and any other length with ecc.ErrMalformedEncoding.
func ParseScalar(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return Scalar{}, ecc.NewError(ecc.ErrMalformedEncoding,
			fmt.Sprintf("secp256k1: scalar must be 32 bytes, got %d", len(b)))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(domain().n) >= 0 {
		return Scalar{}, ecc.NewError(ecc.ErrScalarOutOfRange,
			"secp256k1: scalar is not below the group order")
	}
	return NewScalar(v), nil
}

// ScalarFromCoordinate reduces an x coordinate modulo N. This is how the r
// component of a signature is derived from a point.
func ScalarFromCoordinate(c Coordinate) Scalar {
	return ReduceScalar(c.BigInt())
}

// BigInt returns a copy of the scalar's value.
func (s Scalar) BigInt() *big.Int {
	return s.e.Value()
}

// Bytes returns the scalar as a 32-byte big-endian array.
func (s Scalar) Bytes() [32]byte {
	var b [32]byte
	s.e.Value().FillBytes(b[:])
	return b
}

// IsZero reports whether s is zero. An unset zero-value Scalar counts as
// zero.
func (s Scalar) IsZero() bool {
	return !s.e.IsValid() || s.e.IsZero()
}

// IsOverHalfOrder reports whether s > N/2. Signatures are normalized so that
// their s component never is.
func (s Scalar) IsOverHalfOrder() bool {
	return s.e.Value().Cmp(domain().halfOrder) > 0
}

// Equal reports whether s and o are the same scalar.
func (s Scalar) Equal(o Scalar) bool {
	return s.e.Equal(o.e)
}

// Add returns s + o mod N.
func (s Scalar) Add(o Scalar) Scalar {
	return Scalar{e: s.e.Add(o.e)}
}

// Sub returns s - o mod N.
func (s Scalar) Sub(o Scalar) Scalar {
	return Scalar{e: s.e.Sub(o.e)}
}

// Mul returns s * o mod N.
func (s Scalar) Mul(o Scalar) Scalar {
	return Scalar{e: s.e.Mul(o.e)}
}

// Neg returns -s mod N.
func (s Scalar) Neg() Scalar {
	return Scalar{e: s.e.Neg()}
}

// Inverse returns s^-1 mod N, or ecc.ErrDivisionByZero when s is zero.
func (s Scalar) Inverse() (Scalar, error) {
	inv, err := s.e.Inverse()
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{e: inv}, nil
}

// Div returns s / o mod N, or ecc.ErrDivisionByZero when o is zero.
func (s Scalar) Div(o Scalar) (Scalar, error) {
	q, err := s.e.Div(o.e)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{e: q}, nil
}

// String returns the scalar as 0x-prefixed hex.
func (s Scalar) String() string {
	return fmt.Sprintf("0x%064x", s.e.Value())
}
