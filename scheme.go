// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package multikey implements a polymorphic public key and signature
// abstraction over a closed set of signature schemes, plus K-of-N threshold
// key sets whose signing events are recorded as a signer bitmap with the
// matching signatures. All values serialize to a canonical binary form that
// independent implementations agree on byte for byte.
package multikey

// SchemeVariant is the discriminant identifying which concrete scheme a
// wrapped key or signature belongs to. It is encoded as a ULEB128 varint.
//
// The set is closed: decoding any unassigned value fails with
// ErrUnknownVariant. Adding a scheme means adding a constant here and a
// case in WrapPublicKey, WrapSignature, and the two unmarshal dispatchers.
type SchemeVariant uint32

const (
	// VariantEd25519 tags Ed25519 keys and signatures.
	VariantEd25519 SchemeVariant = 0

	// VariantSecp256k1 tags secp256k1 ECDSA keys and signatures.
	VariantSecp256k1 SchemeVariant = 1

	// VariantBLS tags BLS12-381 keys and signatures.
	VariantBLS SchemeVariant = 2
)

// String returns the scheme name for logging and CLI output.
func (v SchemeVariant) String() string {
	switch v {
	case VariantEd25519:
		return "ed25519"
	case VariantSecp256k1:
		return "secp256k1"
	case VariantBLS:
		return "bls12-381"
	default:
		return "unknown"
	}
}

// Authentication key derivation schemes. These are domain separators for
// address derivation and live in a different discriminant space than the
// variant tags above: a wrapped single key always derives under
// SchemeSingleKey regardless of its inner variant.
const (
	// SchemeSingleKey derives the authentication key of one wrapped key.
	SchemeSingleKey uint8 = 2

	// SchemeMultiKey derives the authentication key of a threshold key set.
	SchemeMultiKey uint8 = 3
)
