package ecc

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// Common errors returned by the library.
const (
	// ErrInvalidFieldElement is used when a field element is constructed with
	// a value outside [0, modulus).
	ErrInvalidFieldElement = ErrorKind("ErrInvalidFieldElement")

	// ErrModulusMismatch is used when two field elements with different moduli
	// are combined.
	ErrModulusMismatch = ErrorKind("ErrModulusMismatch")

	// ErrDivisionByZero is returned when dividing by, or inverting, the
	// additive identity of a field.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrPointNotOnCurve is returned when coordinates do not satisfy the curve
	// equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrCurveMismatch is used when points on different curves are combined.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrUnwrapInfinity is used when a coordinate is requested from the point
	// at infinity.
	ErrUnwrapInfinity = ErrorKind("ErrUnwrapInfinity")

	// ErrMalformedEncoding is returned when serialized input has the wrong
	// length, an unknown format byte or an out of range component.
	ErrMalformedEncoding = ErrorKind("ErrMalformedEncoding")

	// ErrEncodeInfinity is returned when serializing the point at infinity.
	ErrEncodeInfinity = ErrorKind("ErrEncodeInfinity")

	// ErrScalarOutOfRange is returned when a scalar is not below the group
	// order, or is zero where zero is not allowed.
	ErrScalarOutOfRange = ErrorKind("ErrScalarOutOfRange")

	// ErrInvalidPrivateKey is returned when a private key scalar is zero.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrNonceExhausted is returned when deterministic nonce generation does
	// not produce a usable nonce within the iteration bound.
	ErrNonceExhausted = ErrorKind("ErrNonceExhausted")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error raised by the field, curve or signature code. It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error given a set of arguments.
func NewError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
