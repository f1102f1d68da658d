// Package secp256k1 instantiates the generic curve arithmetic for the curve
// y^2 = x^3 + 7 used by Bitcoin and Ethereum.
//
// Two field types are kept apart on purpose: Coordinate holds point
// coordinates modulo the field prime P, and Scalar holds private keys,
// digests and signature components modulo the group order N. Neither can be
// passed where the other is expected; ScalarFromCoordinate is the one explicit
// conversion, used to turn the x coordinate of a nonce point into the r value
// of a signature.
//
// Points are serialized with the SEC 1 compressed (33 bytes) and
// uncompressed (65 bytes) formats.
package secp256k1
