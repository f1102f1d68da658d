package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash256(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"},
		{"hello", "9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50"},
	}

	for _, test := range tests {
		got := Hash256([]byte(test.in))
		assert.Equal(t, test.want, hex.EncodeToString(got[:]), "hash256(%q)", test.in)
	}
}

func TestHash256Parts(t *testing.T) {
	msg := []byte("Programming Bitcoin!")
	assert.Equal(t, Hash256(msg), Hash256Parts(msg[:5], msg[5:]))
	assert.Equal(t, Hash256(nil), Hash256Parts())
}

func TestNew(t *testing.T) {
	h := New()
	h.Write([]byte("abc"))
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(h.Sum(nil)))
	assert.Equal(t, Size, h.Size())
}
