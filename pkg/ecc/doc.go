// Package ecc holds the error vocabulary shared by the field, curve,
// secp256k1 and ECDSA packages of this module.
//
// Every recoverable failure is reported as an [Error] wrapping one of the
// [ErrorKind] constants, and every fatal invariant violation panics with such
// an [Error], so both can be classified with errors.Is:
//
//	if _, err := secp256k1.ParsePoint(b); errors.Is(err, ecc.ErrPointNotOnCurve) {
//		// reject the key
//	}
package ecc
