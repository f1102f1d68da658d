package hash

import (
	gohash "hash"

	"github.com/minio/sha256-simd"
)

// Size is the length of a Hash256 digest in bytes.
const Size = sha256.Size

// New returns a SHA-256 hash.Hash. It is the constructor handed to HMAC when
// deriving signing nonces.
func New() gohash.Hash {
	return sha256.New()
}

// Hash256 computes SHA256(SHA256(data)), the digest signed messages are
// reduced to.
func Hash256(data []byte) [Size]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Hash256Parts is Hash256 over the concatenation of parts.
func Hash256Parts(parts ...[]byte) [Size]byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var first [Size]byte
	h.Sum(first[:0])
	return sha256.Sum256(first[:])
}
