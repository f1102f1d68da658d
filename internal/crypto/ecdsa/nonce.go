package ecdsa

// References:
//   [RFC6979] Deterministic Usage of the Digital Signature Algorithm (DSA)
//     and Elliptic Curve Digital Signature Algorithm (ECDSA)
//     https://tools.ietf.org/html/rfc6979

import (
	"bytes"
	"crypto/hmac"
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecc/internal/crypto/hash"
	"github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// MaxNonceIterations bounds the number of HMAC_DRBG outputs drawn while
// looking for a usable nonce. Each output is rejected with probability about
// 2^-128, so the bound is never reached in practice.
const MaxNonceIterations = 1024

var (
	singleZero = []byte{0x00}
	singleOne  = []byte{0x01}
	bigOne     = big.NewInt(1)
)

// nonceStream is the HMAC_DRBG of [RFC6979] section 3.2 seeded with a private
// key and a digest. Successive calls to next yield the candidates of step H,
// which lets signing move on to a fresh nonce when r or s turns out to be zero
// as described in section 3.4.
type nonceStream struct {
	k, v      []byte
	order     *big.Int
	generated int
	limit     int
	started   bool
}

// newNonceStream runs steps B through G for the 32-byte private key x and the
// 32-byte digest h.
func newNonceStream(x, h []byte) *nonceStream {
	// Step B.
	//
	// V = 0x01 0x01 0x01 ... 0x01
	v := bytes.Repeat([]byte{0x01}, hash.Size)

	// Step C.
	//
	// K = 0x00 0x00 0x00 ... 0x00
	k := make([]byte, hash.Size)

	// Step D.
	//
	// K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h1))
	k = mac(k, v, singleZero, x, h)

	// Step E.
	//
	// V = HMAC_K(V)
	v = mac(k, v)

	// Step F.
	//
	// K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h1))
	k = mac(k, v, singleOne, x, h)

	// Step G.
	//
	// V = HMAC_K(V)
	v = mac(k, v)

	return &nonceStream{
		k:     k,
		v:     v,
		order: secp256k1.N(),
		limit: MaxNonceIterations,
	}
}

// next returns the next candidate k with 1 < k < N. It fails with
// ecc.ErrNonceExhausted once the iteration bound is reached.
func (s *nonceStream) next() (secp256k1.Scalar, error) {
	for s.generated < s.limit {
		if s.started {
			// K = HMAC_K(V || 0x00)
			// V = HMAC_K(V)
			s.k = mac(s.k, s.v, singleZero)
			s.v = mac(s.k, s.v)
		}
		s.started = true
		s.generated++

		// Step H.
		//
		// qlen equals hlen for secp256k1 and SHA-256, so a single
		// V = HMAC_K(V) fills T.
		s.v = mac(s.k, s.v)
		candidate := new(big.Int).SetBytes(s.v)
		if candidate.Cmp(bigOne) > 0 && candidate.Cmp(s.order) < 0 {
			return secp256k1.NewScalar(candidate), nil
		}

		log.WithFields(logrus.Fields{
			"iteration": s.generated,
		}).Debug("Rejected nonce candidate outside (1, N)")
	}

	return secp256k1.Scalar{}, ecc.NewError(ecc.ErrNonceExhausted,
		fmt.Sprintf("ecdsa: no valid nonce after %d iterations", s.limit))
}

// NonceRFC6979 returns the first deterministic nonce for signing the digest z
// with the private scalar secret.
func NonceRFC6979(secret, z secp256k1.Scalar) (secp256k1.Scalar, error) {
	x, h := secret.Bytes(), z.Bytes()
	return newNonceStream(x[:], h[:]).next()
}

// mac returns HMAC-SHA256 keyed with key over the concatenation of data.
func mac(key []byte, data ...[]byte) []byte {
	h := hmac.New(hash.New, key)
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
