package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Point is either the point at infinity or an affine point (x, y) on its
// curve. Points are immutable; Add, Double, Neg and ScalarMul return new
// values.
//
// The zero Point is the point at infinity of the zero Curve. It is only
// useful as an "unset" marker: the group law panics when mixing it with
// points of a real curve.
type Point struct {
	curve    Curve
	x, y   field.Element
	affine bool
}

// Curve returns the curve p lies on.
func (p Point) Curve() Curve {
	return p.curve
}

// IsInfinity reports whether p is the group identity.
func (p Point) IsInfinity() bool {
	return !p.affine
}

// X returns the x coordinate of p. It panics with ecc.ErrUnwrapInfinity when p
// is the point at infinity.
func (p Point) X() field.Element {
	p.mustBeAffine()
	return p.x
}

// Y returns the y coordinate of p. It panics with ecc.ErrUnwrapInfinity when p
// is the point at infinity.
func (p Point) Y() field.Element {
	p.mustBeAffine()
	return p.y
}

// Coords returns the affine coordinates of p, with ok set to false for the
// point at infinity.
func (p Point) Coords() (x, y field.Element, ok bool) {
	if !p.affine {
		return field.Element{}, field.Element{}, false
	}
	return p.x, p.y, true
}

// IsOnCurve reports whether p satisfies its curve equation. The point at
// infinity is always on the curve.
func (p Point) IsOnCurve() bool {
	if !p.affine {
		return true
	}
	return p.curve.Contains(p.x, p.y)
}

// Equal reports whether p and q are the same point on the same curve.
func (p Point) Equal(q Point) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	if !p.affine || !q.affine {
		return p.affine == q.affine
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns -p, the reflection of p over the x axis.
func (p Point) Neg() Point {
	if !p.affine {
		return p
	}
	return p.curve.MustPoint(p.x, p.y.Neg())
}

// Add returns p + q. It panics with ecc.ErrCurveMismatch when the points lie
// on different curves.
func (p Point) Add(q Point) Point {
	if !p.curve.Equal(q.curve) {
		panic(ecc.NewError(ecc.ErrCurveMismatch,
			fmt.Sprintf("curves: cannot add a point on %s to a point on %s", p.curve, q.curve)))
	}

	switch {
	case !p.affine:
		return q
	case !q.affine:
		return p

	case p.x.Equal(q.x) && !p.y.Equal(q.y):
		// Vertical chord, q = -p.
		return p.curve.Identity()

	case !p.x.Equal(q.x):
		// s = (y2 - y1) / (x2 - x1)
		s := q.y.Sub(p.y).MustDiv(q.x.Sub(p.x))
		// x3 = s^2 - x1 - x2
		x3 := s.Pow(2).Sub(p.x).Sub(q.x)
		// y3 = s(x1 - x3) - y1
		y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
		return p.curve.MustPoint(x3, y3)

	case p.y.IsZero():
		// Vertical tangent.
		return p.curve.Identity()

	default:
		return p.double()
	}
}

// Double returns 2p.
func (p Point) Double() Point {
	if !p.affine || p.y.IsZero() {
		return p.curve.Identity()
	}
	return p.double()
}

// double requires p to be affine with y != 0.
func (p Point) double() Point {
	// s = (3x^2 + a) / 2y
	s := p.x.Pow(2).MulInt(3).Add(p.curve.a).MustDiv(p.y.MulInt(2))
	// x3 = s^2 - 2x
	x3 := s.Pow(2).Sub(p.x.MulInt(2))
	// y3 = s(x - x3) - y
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	return p.curve.MustPoint(x3, y3)
}

// ScalarMul returns k*p using binary expansion: the bits of k are walked from
// least to most significant, adding the running double of p into the result
// for every set bit. A negative k multiplies -p by |k|.
func (p Point) ScalarMul(k *big.Int) Point {
	if k.Sign() < 0 {
		return p.Neg().ScalarMul(new(big.Int).Neg(k))
	}

	result := p.curve.Identity()
	current := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(current)
		}
		current = current.Double()
	}
	return result
}

// String returns "Point(infinity)" or "Point(x, y)" with hex coordinates.
func (p Point) String() string {
	x, y, ok := p.Coords()
	if !ok {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%#x, %#x)", x.Value(), y.Value())
}

func (p Point) mustBeAffine() {
	if !p.affine {
		panic(ecc.NewError(ecc.ErrUnwrapInfinity,
			"curves: coordinate requested from the point at infinity"))
	}
}
