// Package encoding converts between hex strings, byte slices and the
// fixed-width big-endian integers used for keys and digests.
package encoding

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// DecodeHex decodes s, with or without a 0x prefix. Failures wrap
// ecc.ErrMalformedEncoding.
func DecodeHex(s string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(trimmed)%2 == 1 {
		trimmed = "0" + trimmed
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, errors.Wrapf(ecc.NewError(ecc.ErrMalformedEncoding, err.Error()),
			"error decoding hex string [%s]", s)
	}
	return b, nil
}

// MustDecodeHex is like DecodeHex but panics on error. It is meant for
// hard-coded constants and test vectors.
func MustDecodeHex(s string) []byte {
	b, err := DecodeHex(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BigFromHex parses s as a big-endian unsigned integer.
func BigFromHex(s string) (*big.Int, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// PadLeft returns b left-padded with zeros to size bytes. Longer input is
// returned unchanged.
func PadLeft(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// Bytes32 returns v as a 32-byte big-endian slice. It panics if v is negative
// or does not fit.
func Bytes32(v *big.Int) []byte {
	return v.FillBytes(make([]byte, 32))
}
