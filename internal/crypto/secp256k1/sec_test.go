package secp256k1

import (
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name         string
		secret       *big.Int
		uncompressed string
		compressed   string
	}{{
		name:         "5000",
		secret:       big.NewInt(5000),
		uncompressed: "04ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c315dc72890a4f10a1481c031b03b351b0dc79901ca18a00cf009dbdb157a1d10",
		compressed:   "02ffe558e388852f0120e46af2d1b370f85854a8eb0841811ece0e3e03d282d57c",
	}, {
		name:         "2018^5",
		secret:       new(big.Int).Exp(big.NewInt(2018), big.NewInt(5), nil),
		uncompressed: "04027f3da1918455e03c46f659266a1bb5204e959db7364d2f473bdf8f0a13cc9dff87647fd023c13b4a4994f17691895806e1b40b57f4fd22581a4f46851f3b06",
		compressed:   "02027f3da1918455e03c46f659266a1bb5204e959db7364d2f473bdf8f0a13cc9d",
	}, {
		name:         "0xdeadbeef12345",
		secret:       big.NewInt(0xdeadbeef12345),
		uncompressed: "04d90cd625ee87dd38656dd95cf79f65f60f7273b67d3096e68bd81e4f5342691f842efa762fd59961d0e99803c61edba8b3e3f7dc3a341836f97733aebf987121",
		compressed:   "03d90cd625ee87dd38656dd95cf79f65f60f7273b67d3096e68bd81e4f5342691f",
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := ScalarBaseMul(NewScalar(test.secret))

			u, err := p.SerializeUncompressed()
			require.NoError(t, err)
			assert.Equal(t, test.uncompressed, hex.EncodeToString(u))

			c, err := p.SerializeCompressed()
			require.NoError(t, err)
			assert.Equal(t, test.compressed, hex.EncodeToString(c))

			for _, encoded := range [][]byte{u, c} {
				parsed, err := ParsePoint(encoded)
				require.NoError(t, err)
				if !parsed.Equal(p) {
					t.Fatalf("round trip mismatch:\n%s", spew.Sdump(encoded, parsed.String(), p.String()))
				}
			}
		})
	}
}

func TestSerializeInfinity(t *testing.T) {
	_, err := Infinity().SerializeCompressed()
	assert.True(t, errors.Is(err, ecc.ErrEncodeInfinity))
	_, err = Infinity().SerializeUncompressed()
	assert.True(t, errors.Is(err, ecc.ErrEncodeInfinity))
}

func TestParsePointRoundTrip(t *testing.T) {
	p := Generator()
	for i := 0; i < 32; i++ {
		u, err := p.SerializeUncompressed()
		require.NoError(t, err)
		c, err := p.SerializeCompressed()
		require.NoError(t, err)

		fromU, err := ParsePoint(u)
		require.NoError(t, err)
		fromC, err := ParsePoint(c)
		require.NoError(t, err)
		require.True(t, fromU.Equal(p), "uncompressed %x", u)
		require.True(t, fromC.Equal(p), "compressed %x", c)

		p = p.Add(Generator()).Double()
	}
}

func TestParsePointErrors(t *testing.T) {
	g, err := Generator().SerializeUncompressed()
	require.NoError(t, err)
	gc, err := Generator().SerializeCompressed()
	require.NoError(t, err)

	// (G.x, G.y + 1) is well formed but not on the curve.
	offCurve := append([]byte(nil), g...)
	offCurve[64]++

	// x = 5 has no y on the curve since 5^3 + 7 is not a square.
	noSquareRoot := append([]byte{FormatCompressedEven}, make([]byte, 32)...)
	noSquareRoot[32] = 5

	xAboveP := append([]byte{FormatCompressedOdd}, P().FillBytes(make([]byte, 32))...)

	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, ecc.ErrMalformedEncoding},
		{"unknown format", append([]byte{0x05}, gc[1:]...), ecc.ErrMalformedEncoding},
		{"hybrid format", append([]byte{0x06}, g[1:]...), ecc.ErrMalformedEncoding},
		{"compressed too long", append(gc, 0), ecc.ErrMalformedEncoding},
		{"uncompressed truncated", g[:64], ecc.ErrMalformedEncoding},
		{"uncompressed tag on compressed length", append([]byte{FormatUncompressed}, gc[1:]...), ecc.ErrMalformedEncoding},
		{"x not below p", xAboveP, ecc.ErrMalformedEncoding},
		{"uncompressed off curve", offCurve, ecc.ErrPointNotOnCurve},
		{"compressed off curve", noSquareRoot, ecc.ErrPointNotOnCurve},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParsePoint(test.in)
			assert.True(t, errors.Is(err, test.want), "got %v, want %v", err, test.want)
		})
	}
}

func TestParsePointParity(t *testing.T) {
	g := Generator()
	c, err := g.SerializeCompressed()
	require.NoError(t, err)

	// Flipping the parity byte selects -G.
	c[0] ^= 0x01
	p, err := ParsePoint(c)
	require.NoError(t, err)
	assert.True(t, p.Equal(g.Neg()))
}

// TestParsePointMatchesDecred parses encodings produced by decred.
func TestParsePointMatchesDecred(t *testing.T) {
	for _, secret := range []string{
		"0000000000000000000000000000000000000000000000000000000000000001",
		"8b387de39861728c92ec9f589c303b1038ff60eb3963b12cd212263a1d1e0f00",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
	} {
		pub := dcrsecp.PrivKeyFromBytes(mustHex(t, secret)).PubKey()
		want := ScalarBaseMul(ScalarFromBytes(mustHex(t, secret)))

		for _, encoded := range [][]byte{pub.SerializeCompressed(), pub.SerializeUncompressed()} {
			got, err := ParsePoint(encoded)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "secret %s, encoding %x", secret, encoded)
		}
	}
}
