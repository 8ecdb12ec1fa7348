// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

// PublicKey is implemented by every primitive public key scheme.
type PublicKey interface {
	// Bytes returns the canonical fixed-length encoding of the key.
	Bytes() []byte

	// Verify reports whether sig is a valid signature over msg by this key.
	// A signature from a different scheme verifies as false.
	Verify(msg []byte, sig Signature) bool
}

// Signature is implemented by every primitive signature scheme.
type Signature interface {
	// Bytes returns the canonical fixed-length encoding of the signature.
	Bytes() []byte
}

// PrivateKey produces signatures for one of the supported schemes.
type PrivateKey interface {
	// PublicKey returns the verifying key for this private key.
	PublicKey() PublicKey

	// Sign signs msg and returns the scheme's signature type.
	Sign(msg []byte) (Signature, error)
}
