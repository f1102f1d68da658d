//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecc/internal/crypto/ecdsa"
	"github.com/smallyu/go-ecc/internal/crypto/secp256k1"
	"github.com/smallyu/go-ecc/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-ecc/internal/encoding"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"PublicKey":  js.FuncOf(PublicKey),
		"Sign":       js.FuncOf(Sign),
		"Verify":     js.FuncOf(Verify),
		"ParsePoint": js.FuncOf(ParsePoint),

		"ProvePossession":  js.FuncOf(ProvePossession),
		"VerifyPossession": js.FuncOf(VerifyPossession),
	})

	<-c
}

// PublicKey derives the public key of a private key.
// Arguments:
// 0: private key (hex, 32 bytes)
// Returns:
// JSON string { compressed, uncompressed } or an error string
func PublicKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (privKeyHex)"
	}

	key, err := parseKey(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	resp, err := encodePoint(key.PubKey())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(resp)
}

// Sign signs the Hash256 digest of a message.
// Arguments:
// 0: private key (hex, 32 bytes)
// 1: message (string)
// Returns:
// JSON string { r, s, signature } or an error string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (privKeyHex, message)"
	}

	key, err := parseKey(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := key.SignMessage([]byte(args[1].String()))
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}

	return marshal(map[string]interface{}{
		"r":         sig.R().String(),
		"s":         sig.S().String(),
		"signature": hex.EncodeToString(sig.Serialize()),
	})
}

// Verify checks a signature over the Hash256 digest of a message.
// Arguments:
// 0: SEC encoded public key (hex)
// 1: message (string)
// 2: r || s signature (hex, 64 bytes)
// Returns:
// bool or an error string
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (pubKeyHex, message, signatureHex)"
	}

	pubBytes, err := encoding.DecodeHex(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pub, err := secp256k1.ParsePoint(pubBytes)
	if err != nil {
		return fmt.Sprintf("error: invalid public key: %v", err)
	}

	sigBytes, err := encoding.DecodeHex(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	sig, err := ecdsa.ParseSignature(sigBytes)
	if err != nil {
		return fmt.Sprintf("error: invalid signature: %v", err)
	}

	return sig.VerifyMessage([]byte(args[1].String()), pub)
}

// ParsePoint decodes a SEC point and re-encodes it in both formats.
// Arguments:
// 0: SEC encoded point (hex)
// Returns:
// JSON string { x, y, compressed, uncompressed } or an error string
func ParsePoint(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (pointHex)"
	}

	b, err := encoding.DecodeHex(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, err := secp256k1.ParsePoint(b)
	if err != nil {
		return fmt.Sprintf("error: invalid point: %v", err)
	}

	resp, err := encodePoint(p)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	resp["x"] = p.X().String()
	resp["y"] = p.Y().String()
	return marshal(resp)
}

// ProvePossession proves knowledge of a private key without signing.
// Arguments:
// 0: private key (hex, 32 bytes)
// Returns:
// JSON string { R, s } or an error string
func ProvePossession(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (privKeyHex)"
	}

	key, err := parseKey(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	proof, err := schnorr.Prove(key)
	if err != nil {
		return fmt.Sprintf("error: prove failed: %v", err)
	}
	R, err := proof.R.SerializeCompressed()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	s := proof.S.Bytes()

	return marshal(map[string]interface{}{
		"R": hex.EncodeToString(R),
		"s": hex.EncodeToString(s[:]),
	})
}

// VerifyPossession checks a proof of possession against a public key.
// Arguments:
// 0: SEC encoded public key (hex)
// 1: SEC encoded commitment R (hex)
// 2: response s (hex, 32 bytes)
// Returns:
// bool or an error string
func VerifyPossession(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (pubKeyHex, RHex, sHex)"
	}

	points := make([]secp256k1.Point, 2)
	for i := range points {
		b, err := encoding.DecodeHex(args[i].String())
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		if points[i], err = secp256k1.ParsePoint(b); err != nil {
			return fmt.Sprintf("error: invalid point: %v", err)
		}
	}

	sBytes, err := encoding.DecodeHex(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	s, err := secp256k1.ParseScalar(encoding.PadLeft(sBytes, 32))
	if err != nil {
		return fmt.Sprintf("error: invalid response: %v", err)
	}

	proof := &schnorr.Proof{R: points[1], S: s}
	return proof.Verify(points[0])
}

// Helpers

func parseKey(privHex string) (*ecdsa.PrivateKey, error) {
	v, err := encoding.BigFromHex(privHex)
	if err != nil {
		return nil, err
	}
	if v.BitLen() > 8*ecdsa.PrivKeyBytesLen {
		return nil, ecc.NewError(ecc.ErrScalarOutOfRange, "private key is longer than 32 bytes")
	}
	return ecdsa.PrivKeyFromBytes(encoding.Bytes32(v))
}

func encodePoint(p secp256k1.Point) (map[string]interface{}, error) {
	compressed, err := p.SerializeCompressed()
	if err != nil {
		return nil, err
	}
	uncompressed, err := p.SerializeUncompressed()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"compressed":   hex.EncodeToString(compressed),
		"uncompressed": hex.EncodeToString(uncompressed),
	}, nil
}

func marshal(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
