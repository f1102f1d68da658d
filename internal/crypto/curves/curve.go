package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Curve is the short Weierstrass curve y^2 = x^3 + ax + b over a prime field.
// A Curve is immutable and shared by every Point built from it.
type Curve struct {
	a field.Element
	b field.Element
}

// New returns the curve y^2 = x^3 + ax + b. Both coefficients must belong to
// the same field; New panics with ecc.ErrModulusMismatch otherwise.
func New(a, b field.Element) Curve {
	if !a.SameField(b) {
		panic(ecc.NewError(ecc.ErrModulusMismatch,
			fmt.Sprintf("curves: coefficients a=%s and b=%s are in different fields", a, b)))
	}
	return Curve{a: a, b: b}
}

// A returns the linear coefficient of the curve equation.
func (c Curve) A() field.Element {
	return c.a
}

// B returns the constant term of the curve equation.
func (c Curve) B() field.Element {
	return c.b
}

// Modulus returns the prime of the field the curve is defined over.
func (c Curve) Modulus() *big.Int {
	return c.a.Modulus()
}

// Equal reports whether c and o have the same coefficients over the same
// field.
func (c Curve) Equal(o Curve) bool {
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// Polynomial returns x^3 + ax + b.
func (c Curve) Polynomial(x field.Element) field.Element {
	return x.Pow(3).Add(c.a.Mul(x)).Add(c.b)
}

// Contains reports whether (x, y) satisfies the curve equation.
func (c Curve) Contains(x, y field.Element) bool {
	if !x.SameField(c.a) || !y.SameField(c.a) {
		return false
	}
	return y.Pow(2).Equal(c.Polynomial(x))
}

// Identity returns the point at infinity, the identity of the group law.
func (c Curve) Identity() Point {
	return Point{curve: c}
}

// NewPoint returns the point (x, y) on c. It returns ecc.ErrPointNotOnCurve
// when the coordinates do not satisfy the curve equation, and is the
// constructor to use for coordinates coming from outside the package.
func (c Curve) NewPoint(x, y field.Element) (Point, error) {
	if !c.Contains(x, y) {
		return Point{}, ecc.NewError(ecc.ErrPointNotOnCurve,
			fmt.Sprintf("curves: (%s, %s) is not on %s", x.Value(), y.Value(), c))
	}
	return Point{curve: c, x: x, y: y, affine: true}, nil
}

// MustPoint is like NewPoint but panics when (x, y) is not on the curve. It is
// reserved for coordinates that are on the curve by construction, such as the
// results of the group law.
func (c Curve) MustPoint(x, y field.Element) Point {
	p, err := c.NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the curve equation.
func (c Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %sx + %s (mod %s)", c.a.Value(), c.b.Value(), c.a.Modulus())
}
