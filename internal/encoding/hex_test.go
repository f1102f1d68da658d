package encoding

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"00ff", []byte{0x00, 0xff}},
		{"0x00FF", []byte{0x00, 0xff}},
		{"abc", []byte{0x0a, 0xbc}},
	}

	for _, test := range tests {
		got, err := DecodeHex(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}

	empty, err := DecodeHex("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDecodeHexError(t *testing.T) {
	_, err := DecodeHex("zz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecc.ErrMalformedEncoding))
	assert.Contains(t, err.Error(), "error decoding hex string [zz]")

	assert.Panics(t, func() { MustDecodeHex("0xg0") })
}

func TestBigFromHex(t *testing.T) {
	v, err := BigFromHex("0xdeadbeef12345")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0xdeadbeef12345).String(), v.String())

	_, err = BigFromHex("xyz")
	assert.Error(t, err)
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 1, 2}, PadLeft([]byte{1, 2}, 4))
	assert.Equal(t, []byte{1, 2, 3}, PadLeft([]byte{1, 2, 3}, 2))
	assert.Len(t, Bytes32(big.NewInt(1)), 32)
	assert.Equal(t, byte(1), Bytes32(big.NewInt(1))[31])
}
