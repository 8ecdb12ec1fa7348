// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"errors"
	"fmt"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

const (
	// Secp256k1PublicKeyLen is the length of an uncompressed secp256k1
	// public key.
	Secp256k1PublicKeyLen = 65

	// Secp256k1SignatureLen is the length of a secp256k1 ECDSA signature,
	// serialized as r || s with each scalar as 32 big-endian bytes.
	Secp256k1SignatureLen = 64
)

var (
	_ PublicKey  = (*Secp256k1PublicKey)(nil)
	_ Signature  = (*Secp256k1Signature)(nil)
	_ PrivateKey = (*Secp256k1PrivateKey)(nil)

	errScalarOverflow = errors.New("signature scalar overflows curve order")
)

// Secp256k1PublicKey is an uncompressed secp256k1 ECDSA verifying key.
type Secp256k1PublicKey struct {
	key *secp256k1.PublicKey
}

// ParseSecp256k1PublicKey validates raw uncompressed secp256k1 key bytes.
func ParseSecp256k1PublicKey(b []byte) (*Secp256k1PublicKey, error) {
	if len(b) != Secp256k1PublicKeyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(b), Secp256k1PublicKeyLen)
	}
	key, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse secp256k1 public key: %w", err)
	}
	return &Secp256k1PublicKey{key: key}, nil
}

// Bytes returns the uncompressed 65-byte key.
func (k *Secp256k1PublicKey) Bytes() []byte {
	return k.key.SerializeUncompressed()
}

// Verify reports whether sig is a valid ECDSA signature over the SHA3-256
// digest of msg.
func (k *Secp256k1PublicKey) Verify(msg []byte, sig Signature) bool {
	s, ok := sig.(*Secp256k1Signature)
	if !ok {
		return false
	}
	digest := sha3.Sum256(msg)
	return s.sig.Verify(digest[:], k.key)
}

// Secp256k1Signature is a secp256k1 ECDSA signature.
type Secp256k1Signature struct {
	sig *secpecdsa.Signature
}

// ParseSecp256k1Signature validates raw r || s signature bytes.
func ParseSecp256k1Signature(b []byte) (*Secp256k1Signature, error) {
	if len(b) != Secp256k1SignatureLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignatureLength, len(b), Secp256k1SignatureLen)
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(b[:32]); overflow {
		return nil, fmt.Errorf("failed to parse secp256k1 signature: r %w", errScalarOverflow)
	}
	if overflow := s.SetByteSlice(b[32:]); overflow {
		return nil, fmt.Errorf("failed to parse secp256k1 signature: s %w", errScalarOverflow)
	}
	return &Secp256k1Signature{sig: secpecdsa.NewSignature(&r, &s)}, nil
}

// Bytes returns the signature as r || s.
func (s *Secp256k1Signature) Bytes() []byte {
	out := make([]byte, Secp256k1SignatureLen)
	r := s.sig.R()
	sv := s.sig.S()
	rb := r.Bytes()
	sb := sv.Bytes()
	copy(out[:32], rb[:])
	copy(out[32:], sb[:])
	return out
}

// Secp256k1PrivateKey signs messages with secp256k1 ECDSA.
type Secp256k1PrivateKey struct {
	key *secp256k1.PrivateKey
}

// GenerateSecp256k1PrivateKey creates a new random secp256k1 private key.
func GenerateSecp256k1PrivateKey() (*Secp256k1PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secp256k1 key: %w", err)
	}
	return &Secp256k1PrivateKey{key: key}, nil
}

// PublicKey returns the verifying key.
func (k *Secp256k1PrivateKey) PublicKey() PublicKey {
	return &Secp256k1PublicKey{key: k.key.PubKey()}
}

// Sign signs the SHA3-256 digest of msg with ECDSA.
func (k *Secp256k1PrivateKey) Sign(msg []byte) (Signature, error) {
	digest := sha3.Sum256(msg)
	return &Secp256k1Signature{sig: secpecdsa.Sign(k.key, digest[:])}, nil
}
