package secp256k1

// References:
//   [SEC1] Elliptic Curve Cryptography
//     https://www.secg.org/sec1-v2.pdf

import (
	"fmt"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

const (
	// PointBytesLenCompressed is the length of a compressed SEC encoding.
	PointBytesLenCompressed = 33

	// PointBytesLenUncompressed is the length of an uncompressed SEC encoding.
	PointBytesLenUncompressed = 65

	// FormatCompressedEven prefixes a compressed point whose y is even, per
	// section 2.3.3 of [SEC1].
	FormatCompressedEven byte = 0x02

	// FormatCompressedOdd prefixes a compressed point whose y is odd.
	FormatCompressedOdd byte = 0x03

	// FormatUncompressed prefixes an uncompressed point.
	FormatUncompressed byte = 0x04
)

// SerializeUncompressed encodes p as 0x04 || x || y with 32-byte big-endian
// coordinates. The point at infinity has no encoding and yields
// ecc.ErrEncodeInfinity.
func (p Point) SerializeUncompressed() ([]byte, error) {
	if p.IsInfinity() {
		return nil, ecc.NewError(ecc.ErrEncodeInfinity,
			"secp256k1: the point at infinity has no SEC encoding")
	}
	x, y := p.X().Bytes(), p.Y().Bytes()

	b := make([]byte, 0, PointBytesLenUncompressed)
	b = append(b, FormatUncompressed)
	b = append(b, x[:]...)
	return append(b, y[:]...), nil
}

// SerializeCompressed encodes p as 0x02 || x when y is even and 0x03 || x
// when y is odd. The point at infinity yields ecc.ErrEncodeInfinity.
func (p Point) SerializeCompressed() ([]byte, error) {
	if p.IsInfinity() {
		return nil, ecc.NewError(ecc.ErrEncodeInfinity,
			"secp256k1: the point at infinity has no SEC encoding")
	}
	format := FormatCompressedEven
	if p.Y().IsOdd() {
		format = FormatCompressedOdd
	}
	x := p.X().Bytes()

	b := make([]byte, 0, PointBytesLenCompressed)
	b = append(b, format)
	return append(b, x[:]...), nil
}

// ParsePoint decodes a compressed or uncompressed SEC encoding. Unknown format
// bytes, wrong lengths and coordinates not below P are reported as
// ecc.ErrMalformedEncoding; well-formed input that does not describe a curve
// point is reported as ecc.ErrPointNotOnCurve.
func ParsePoint(serialized []byte) (Point, error) {
	if len(serialized) == 0 {
		return Point{}, ecc.NewError(ecc.ErrMalformedEncoding,
			"secp256k1: empty point encoding")
	}

	format := serialized[0]
	switch format {
	case FormatUncompressed:
		if len(serialized) != PointBytesLenUncompressed {
			return Point{}, lengthError(format, len(serialized))
		}
		x, err := ParseCoordinate(serialized[1:33])
		if err != nil {
			return Point{}, err
		}
		y, err := ParseCoordinate(serialized[33:])
		if err != nil {
			return Point{}, err
		}
		return NewPoint(x, y)

	case FormatCompressedEven, FormatCompressedOdd:
		if len(serialized) != PointBytesLenCompressed {
			return Point{}, lengthError(format, len(serialized))
		}
		x, err := ParseCoordinate(serialized[1:])
		if err != nil {
			return Point{}, err
		}
		y, err := decompressY(x, format == FormatCompressedOdd)
		if err != nil {
			return Point{}, err
		}
		return NewPoint(x, y)

	default:
		return Point{}, ecc.NewError(ecc.ErrMalformedEncoding,
			fmt.Sprintf("secp256k1: unsupported point format %#02x", format))
	}
}

// decompressY recovers the y with the requested parity from y^2 = x^3 + 7.
func decompressY(x Coordinate, odd bool) (Coordinate, error) {
	alpha := Coordinate{e: Curve().Polynomial(x.e)}
	beta := alpha.Sqrt()
	if !beta.Pow(2).Equal(alpha) {
		return Coordinate{}, ecc.NewError(ecc.ErrPointNotOnCurve,
			fmt.Sprintf("secp256k1: x coordinate %s is not on the curve", x))
	}
	if beta.IsOdd() != odd {
		beta = beta.Neg()
	}
	return beta, nil
}

func lengthError(format byte, n int) error {
	return ecc.NewError(ecc.ErrMalformedEncoding,
		fmt.Sprintf("secp256k1: invalid length %d for point format %#02x", n, format))
}
