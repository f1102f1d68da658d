package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Element is a value in {0, ..., modulus-1} with arithmetic performed modulo
// modulus.
//
// Elements are immutable: every operation returns a new Element and the
// underlying integers are never modified after construction. The zero value
// is not a valid element; use New or NewInt.
//
// Division, inversion and exponent reduction rely on Fermat's little theorem
// and are only correct when the modulus is prime. The modulus is never checked
// for primality.
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// New creates a field element. It panics with ecc.ErrInvalidFieldElement if
// value is not in [0, modulus) or the modulus is smaller than two.
func New(value, modulus *big.Int) Element {
	if modulus.Cmp(bigTwo) < 0 {
		panic(ecc.NewError(ecc.ErrInvalidFieldElement,
			fmt.Sprintf("field: modulus %s is smaller than 2", modulus)))
	}
	if value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		panic(ecc.NewError(ecc.ErrInvalidFieldElement,
			fmt.Sprintf("field: value %s not in range [0, %s)", value, modulus)))
	}
	return Element{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}
}

// NewInt is a convenience wrapper around New for small values.
func NewInt(value, modulus int64) Element {
	return New(big.NewInt(value), big.NewInt(modulus))
}

// Reduce creates a field element from any integer by reducing it modulo
// modulus first.
func Reduce(value, modulus *big.Int) Element {
	return New(Mod(value, modulus), modulus)
}

// Value returns a copy of the element's value.
func (e Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the element's modulus.
func (e Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// IsValid reports whether e was built by a constructor. The zero Element is
// not.
func (e Element) IsValid() bool {
	return e.modulus != nil
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.value.Sign() == 0
}

// IsOdd reports whether the value of e is odd.
func (e Element) IsOdd() bool {
	return e.value.Bit(0) == 1
}

// Equal reports whether e and o have the same value and the same modulus.
func (e Element) Equal(o Element) bool {
	return e.modulus.Cmp(o.modulus) == 0 && e.value.Cmp(o.value) == 0
}

// SameField reports whether e and o share a modulus.
func (e Element) SameField(o Element) bool {
	return e.modulus.Cmp(o.modulus) == 0
}

// Zero returns the additive identity of e's field.
func (e Element) Zero() Element {
	return Element{value: new(big.Int), modulus: e.modulus}
}

// One returns the multiplicative identity of e's field.
func (e Element) One() Element {
	return Element{value: big.NewInt(1), modulus: e.modulus}
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	e.mustMatch(o)
	v := new(big.Int).Add(e.value, o.value)
	return e.with(Mod(v, e.modulus))
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	e.mustMatch(o)
	v := new(big.Int).Sub(e.value, o.value)
	return e.with(Mod(v, e.modulus))
}

// Neg returns -e.
func (e Element) Neg() Element {
	return e.Zero().Sub(e)
}

// Mul returns e * o.
func (e Element) Mul(o Element) Element {
	e.mustMatch(o)
	v := new(big.Int).Mul(e.value, o.value)
	return e.with(Mod(v, e.modulus))
}

// MulInt returns e * k where k is an integer outside the field.
func (e Element) MulInt(k int64) Element {
	v := new(big.Int).Mul(e.value, big.NewInt(k))
	return e.with(Mod(v, e.modulus))
}

// Inverse returns e^-1. It returns ecc.ErrDivisionByZero when e is zero.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, ecc.NewError(ecc.ErrDivisionByZero,
			fmt.Sprintf("field: zero has no inverse modulo %s", e.modulus))
	}
	// e^-1 = e^(p-2) mod p
	exponent := new(big.Int).Sub(e.modulus, bigTwo)
	return e.with(ModPow(e.value, exponent, e.modulus)), nil
}

// Div returns e / o, computed as e * o^(p-2). It returns ecc.ErrDivisionByZero
// when o is zero.
func (e Element) Div(o Element) (Element, error) {
	e.mustMatch(o)
	inv, err := o.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// MustDiv is like Div but panics when o is zero. It is meant for callers that
// have already established o != 0.
func (e Element) MustDiv(o Element) Element {
	q, err := e.Div(o)
	if err != nil {
		panic(err)
	}
	return q
}

// Pow returns e^exponent.
func (e Element) Pow(exponent uint64) Element {
	return e.exp(new(big.Int).SetUint64(exponent))
}

// PowSigned returns e^exponent for a possibly negative exponent, using
// e^-k = e^(p-1-k). It returns ecc.ErrDivisionByZero for a zero base with a
// negative exponent.
func (e Element) PowSigned(exponent int64) (Element, error) {
	if exponent < 0 && e.IsZero() {
		return Element{}, ecc.NewError(ecc.ErrDivisionByZero,
			"field: negative power of zero")
	}
	return e.exp(big.NewInt(exponent)), nil
}

// PowBig returns e^exponent for a non-negative exponent of any size.
func (e Element) PowBig(exponent *big.Int) Element {
	if exponent.Sign() < 0 {
		panic("field: negative exponent passed to PowBig")
	}
	return e.exp(exponent)
}

// exp reduces the exponent modulo p-1, the order of the multiplicative group,
// before exponentiating. Zero is handled separately since it is not part of
// that group.
func (e Element) exp(k *big.Int) Element {
	if e.IsZero() {
		if k.Sign() == 0 {
			return e.One()
		}
		return e
	}
	order := new(big.Int).Sub(e.modulus, bigOne)
	k = Mod(k, order)
	return e.with(ModPow(e.value, k, e.modulus))
}

// String returns the element as "value (mod modulus)".
func (e Element) String() string {
	return fmt.Sprintf("%s (mod %s)", e.value, e.modulus)
}

// with returns a new element in e's field. The caller guarantees v is reduced.
func (e Element) with(v *big.Int) Element {
	return Element{value: v, modulus: e.modulus}
}

func (e Element) mustMatch(o Element) {
	if !e.SameField(o) {
		panic(ecc.NewError(ecc.ErrModulusMismatch,
			fmt.Sprintf("field: modulus %s does not match %s", e.modulus, o.modulus)))
	}
}
