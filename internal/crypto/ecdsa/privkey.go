package ecdsa

import (
	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecc/internal/crypto/hash"
	"github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// PrivKeyBytesLen is the length of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secp256k1 secret scalar together with its public point,
// which is derived once at construction.
type PrivateKey struct {
	secret secp256k1.Scalar
	pub    secp256k1.Point
}

// NewPrivateKey returns the private key for secret. A zero secret has no
// usable public key and is rejected with ecc.ErrInvalidPrivateKey.
func NewPrivateKey(secret secp256k1.Scalar) (*PrivateKey, error) {
	if secret.IsZero() {
		return nil, ecc.NewError(ecc.ErrInvalidPrivateKey,
			"ecdsa: private key scalar is zero")
	}
	return &PrivateKey{
		secret: secret,
		pub:    secp256k1.ScalarBaseMul(secret),
	}, nil
}

// PrivKeyFromBytes parses a 32-byte big-endian secret. Values not below N are
// rejected with ecc.ErrScalarOutOfRange.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	secret, err := secp256k1.ParseScalar(b)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(secret)
}

// Secret returns the private scalar.
func (p *PrivateKey) Secret() secp256k1.Scalar {
	return p.secret
}

// PubKey returns secret*G.
func (p *PrivateKey) PubKey() secp256k1.Point {
	return p.pub
}

// Serialize returns the secret as 32 big-endian bytes.
func (p *PrivateKey) Serialize() []byte {
	b := p.secret.Bytes()
	return b[:]
}

// Sign produces a low-s signature of the digest z using a deterministic
// RFC 6979 nonce.
func (p *PrivateKey) Sign(z secp256k1.Scalar) (*Signature, error) {
	x, h := p.secret.Bytes(), z.Bytes()
	nonces := newNonceStream(x[:], h[:])

	for {
		k, err := nonces.next()
		if err != nil {
			return nil, err
		}

		// r = (kG).x mod N
		R := secp256k1.ScalarBaseMul(k)
		r := secp256k1.ScalarFromCoordinate(R.X())
		if r.IsZero() {
			log.WithFields(logrus.Fields{"reason": "r is zero"}).Debug("Retrying signature with next nonce")
			continue
		}

		// s = (z + r*secret) / k
		kInv, err := k.Inverse()
		if err != nil {
			return nil, err
		}
		s := z.Add(r.Mul(p.secret)).Mul(kInv)
		if s.IsZero() {
			log.WithFields(logrus.Fields{"reason": "s is zero"}).Debug("Retrying signature with next nonce")
			continue
		}

		// N - s is an equally valid s; only the low one is produced.
		if s.IsOverHalfOrder() {
			s = s.Neg()
		}
		return NewSignature(r, s), nil
	}
}

// SignMessage signs the Hash256 digest of msg.
func (p *PrivateKey) SignMessage(msg []byte) (*Signature, error) {
	return p.Sign(MessageDigest(msg))
}

// Verify reports whether sig is a valid signature of z by this key.
func (p *PrivateKey) Verify(z secp256k1.Scalar, sig *Signature) bool {
	return sig.Verify(z, p.pub)
}

// VerifyMessage reports whether sig is a valid signature of msg by this key.
func (p *PrivateKey) VerifyMessage(msg []byte, sig *Signature) bool {
	return sig.VerifyMessage(msg, p.pub)
}

// MessageDigest returns the Hash256 digest of msg read as a big-endian
// integer modulo N.
func MessageDigest(msg []byte) secp256k1.Scalar {
	digest := hash.Hash256(msg)
	return secp256k1.ScalarFromBytes(digest[:])
}
