package secp256k1

import (
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

// Point is a point of the secp256k1 group. It wraps a curves.Point so the
// generic group law does the work, while coordinates are exposed as
// Coordinate values and multipliers as Scalar values.
//
// The zero Point is the point at infinity.
type Point struct {
	p curves.Point
}

// point returns the wrapped point, substituting the identity of the
// secp256k1 curve for an unset zero value.
func (p Point) point() curves.Point {
	if p.p.IsInfinity() {
		return Curve().Identity()
	}
	return p.p
}

// NewPoint returns the point (x, y), or ecc.ErrPointNotOnCurve if it does not
// satisfy y^2 = x^3 + 7.
func NewPoint(x, y Coordinate) (Point, error) {
	p, err := Curve().NewPoint(x.e, y.e)
	if err != nil {
		return Point{}, err
	}
	return Point{p: p}, nil
}

// IsInfinity reports whether p is the group identity.
func (p Point) IsInfinity() bool {
	return p.p.IsInfinity()
}

// X returns the x coordinate. It panics with ecc.ErrUnwrapInfinity for the
// point at infinity.
func (p Point) X() Coordinate {
	return Coordinate{e: p.p.X()}
}

// Y returns the y coordinate. It panics with ecc.ErrUnwrapInfinity for the
// point at infinity.
func (p Point) Y() Coordinate {
	return Coordinate{e: p.p.Y()}
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.point().Equal(q.point())
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p: p.point().Add(q.point())}
}

// Double returns 2p.
func (p Point) Double() Point {
	return Point{p: p.point().Double()}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{p: p.point().Neg()}
}

// Mul returns k*p. A scalar is already reduced modulo N, the order of every
// point in the group.
func (p Point) Mul(k Scalar) Point {
	return Point{p: p.point().ScalarMul(k.BigInt())}
}

// MulBig returns k*p for any integer k, reducing k modulo N first since
// N*p is the identity.
func (p Point) MulBig(k *big.Int) Point {
	return p.Mul(ReduceScalar(k))
}

// ScalarBaseMul returns k*G.
func ScalarBaseMul(k Scalar) Point {
	return Generator().Mul(k)
}

// String returns the point's coordinates in hex, or "Point(infinity)".
func (p Point) String() string {
	return p.p.String()
}
