package ecdsa

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// SignatureBytesLen is the length of a serialized r || s signature.
const SignatureBytesLen = 64

// Signature is an ECDSA signature (r, s) over secp256k1. A zero or nil
// Signature never verifies.
type Signature struct {
	r secp256k1.Scalar
	s secp256k1.Scalar
}

// NewSignature returns the signature (r, s).
func NewSignature(r, s secp256k1.Scalar) *Signature {
	return &Signature{r: r, s: s}
}

// ParseSignature decodes a 64-byte r || s signature. Each component must be a
// nonzero scalar below N.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureBytesLen {
		return nil, ecc.NewError(ecc.ErrMalformedEncoding,
			fmt.Sprintf("ecdsa: signature must be %d bytes, got %d", SignatureBytesLen, len(b)))
	}
	r, err := secp256k1.ParseScalar(b[:32])
	if err != nil {
		return nil, err
	}
	s, err := secp256k1.ParseScalar(b[32:])
	if err != nil {
		return nil, err
	}
	if r.IsZero() || s.IsZero() {
		return nil, ecc.NewError(ecc.ErrScalarOutOfRange,
			"ecdsa: signature component is zero")
	}
	return NewSignature(r, s), nil
}

// R returns the r component.
func (sig *Signature) R() secp256k1.Scalar {
	return sig.r
}

// S returns the s component.
func (sig *Signature) S() secp256k1.Scalar {
	return sig.s
}

// Serialize returns r || s, each as 32 big-endian bytes.
func (sig *Signature) Serialize() []byte {
	r, s := sig.r.Bytes(), sig.s.Bytes()
	b := make([]byte, 0, SignatureBytesLen)
	b = append(b, r[:]...)
	return append(b, s[:]...)
}

// Equal reports whether sig and other have the same components.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.r.Equal(other.r) && sig.s.Equal(other.s)
}

// Verify reports whether sig is a valid signature of the digest z under pub.
//
// With u = z/s and v = r/s, the signature is valid when the x coordinate of
// uG + v*pub, reduced modulo N, equals r.
func (sig *Signature) Verify(z secp256k1.Scalar, pub secp256k1.Point) bool {
	if sig == nil || sig.r.IsZero() || sig.s.IsZero() {
		log.WithFields(logrus.Fields{"reason": "zero component"}).Debug("Rejected signature")
		return false
	}
	if pub.IsInfinity() {
		log.WithFields(logrus.Fields{"reason": "public key at infinity"}).Debug("Rejected signature")
		return false
	}

	sInv, err := sig.s.Inverse()
	if err != nil {
		return false
	}
	u := z.Mul(sInv)
	v := sig.r.Mul(sInv)

	total := secp256k1.ScalarBaseMul(u).Add(pub.Mul(v))
	if total.IsInfinity() {
		log.WithFields(logrus.Fields{"reason": "total at infinity"}).Debug("Rejected signature")
		return false
	}
	return secp256k1.ScalarFromCoordinate(total.X()).Equal(sig.r)
}

// VerifyMessage reports whether sig is a valid signature of the Hash256 digest
// of msg under pub.
func (sig *Signature) VerifyMessage(msg []byte, pub secp256k1.Point) bool {
	return sig.Verify(MessageDigest(msg), pub)
}

// String returns "Signature(r, s)" with hex components.
func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%s, %s)", sig.r, sig.s)
}
