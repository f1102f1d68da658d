package ecc

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidFieldElement, "ErrInvalidFieldElement"},
		{ErrModulusMismatch, "ErrModulusMismatch"},
		{ErrDivisionByZero, "ErrDivisionByZero"},
		{ErrPointNotOnCurve, "ErrPointNotOnCurve"},
		{ErrCurveMismatch, "ErrCurveMismatch"},
		{ErrUnwrapInfinity, "ErrUnwrapInfinity"},
		{ErrMalformedEncoding, "ErrMalformedEncoding"},
		{ErrEncodeInfinity, "ErrEncodeInfinity"},
		{ErrScalarOutOfRange, "ErrScalarOutOfRange"},
		{ErrInvalidPrivateKey, "ErrInvalidPrivateKey"},
		{ErrNonceExhausted, "ErrNonceExhausted"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrPointNotOnCurve == ErrPointNotOnCurve",
		err:       ErrPointNotOnCurve,
		target:    ErrPointNotOnCurve,
		wantMatch: true,
		wantAs:    ErrPointNotOnCurve,
	}, {
		name:      "Error.ErrPointNotOnCurve == ErrPointNotOnCurve",
		err:       NewError(ErrPointNotOnCurve, ""),
		target:    ErrPointNotOnCurve,
		wantMatch: true,
		wantAs:    ErrPointNotOnCurve,
	}, {
		name:      "Error.ErrPointNotOnCurve == Error.ErrPointNotOnCurve",
		err:       NewError(ErrPointNotOnCurve, ""),
		target:    NewError(ErrPointNotOnCurve, ""),
		wantMatch: true,
		wantAs:    ErrPointNotOnCurve,
	}, {
		name:      "ErrMalformedEncoding != ErrPointNotOnCurve",
		err:       ErrMalformedEncoding,
		target:    ErrPointNotOnCurve,
		wantMatch: false,
		wantAs:    ErrMalformedEncoding,
	}, {
		name:      "Error.ErrMalformedEncoding != ErrPointNotOnCurve",
		err:       NewError(ErrMalformedEncoding, ""),
		target:    ErrPointNotOnCurve,
		wantMatch: false,
		wantAs:    ErrMalformedEncoding,
	}, {
		name:      "ErrDivisionByZero != Error.ErrScalarOutOfRange",
		err:       ErrDivisionByZero,
		target:    NewError(ErrScalarOutOfRange, ""),
		wantMatch: false,
		wantAs:    ErrDivisionByZero,
	}, {
		name:      "Error.ErrNonceExhausted != Error.ErrInvalidPrivateKey",
		err:       NewError(ErrNonceExhausted, ""),
		target:    NewError(ErrInvalidPrivateKey, ""),
		wantMatch: false,
		wantAs:    ErrNonceExhausted,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
