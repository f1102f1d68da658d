package schnorr

import (
	crand "crypto/rand"

	"github.com/smallyu/go-ecc/internal/crypto/ecdsa"
	"github.com/smallyu/go-ecc/internal/crypto/hash"
	"github.com/smallyu/go-ecc/internal/crypto/secp256k1"
)

// Proof is a Schnorr proof of knowledge of the discrete logarithm x of a
// public key X = x*G. It lets a key holder show possession of the private key
// without producing an ECDSA signature over a chosen message.
type Proof struct {
	R secp256k1.Point  // Commitment R = k*G
	S secp256k1.Scalar // Response s = k + e*x
}

// Prove generates a proof for key using a fresh random nonce.
func Prove(key *ecdsa.PrivateKey) (*Proof, error) {
	var buf [32]byte
	for {
		// 1. Generate random nonce k in [1, N)
		if _, err := crand.Read(buf[:]); err != nil {
			return nil, err
		}
		k, err := secp256k1.ParseScalar(buf[:])
		if err != nil || k.IsZero() {
			continue
		}

		// 2. Compute R = k*G
		R := secp256k1.ScalarBaseMul(k)

		// 3. Compute challenge e = H(X, R)
		e, err := challenge(key.PubKey(), R)
		if err != nil {
			return nil, err
		}

		// 4. Compute s = k + e*x mod N
		s := k.Add(e.Mul(key.Secret()))
		return &Proof{R: R, S: s}, nil
	}
}

// Verify checks the proof against the public key X by testing
// s*G == R + e*X.
func (p *Proof) Verify(X secp256k1.Point) bool {
	if p == nil || p.R.IsInfinity() || X.IsInfinity() {
		return false
	}

	e, err := challenge(X, p.R)
	if err != nil {
		return false
	}

	lhs := secp256k1.ScalarBaseMul(p.S)
	rhs := p.R.Add(X.Mul(e))
	return lhs.Equal(rhs)
}

// challenge computes Hash256(X || R) mod N over the compressed encodings.
func challenge(X, R secp256k1.Point) (secp256k1.Scalar, error) {
	xb, err := X.SerializeCompressed()
	if err != nil {
		return secp256k1.Scalar{}, err
	}
	rb, err := R.SerializeCompressed()
	if err != nil {
		return secp256k1.Scalar{}, err
	}
	digest := hash.Hash256Parts(xb, rb)
	return secp256k1.ScalarFromBytes(digest[:]), nil
}
