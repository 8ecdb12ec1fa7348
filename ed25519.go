// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

const (
	// Ed25519PublicKeyLen is the canonical length of an Ed25519 public key.
	Ed25519PublicKeyLen = ed25519.PublicKeySize

	// Ed25519SignatureLen is the canonical length of an Ed25519 signature.
	Ed25519SignatureLen = ed25519.SignatureSize
)

var (
	_ PublicKey  = (*Ed25519PublicKey)(nil)
	_ Signature  = (*Ed25519Signature)(nil)
	_ PrivateKey = (*Ed25519PrivateKey)(nil)
)

// Ed25519PublicKey is a 32-byte Ed25519 verifying key.
type Ed25519PublicKey struct {
	key ed25519.PublicKey
}

// ParseEd25519PublicKey copies and validates raw Ed25519 key bytes.
func ParseEd25519PublicKey(b []byte) (*Ed25519PublicKey, error) {
	if len(b) != Ed25519PublicKeyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(b), Ed25519PublicKeyLen)
	}
	key := make(ed25519.PublicKey, Ed25519PublicKeyLen)
	copy(key, b)
	return &Ed25519PublicKey{key: key}, nil
}

// Bytes returns the raw 32-byte key.
func (k *Ed25519PublicKey) Bytes() []byte {
	out := make([]byte, Ed25519PublicKeyLen)
	copy(out, k.key)
	return out
}

// Verify reports whether sig is a valid Ed25519 signature over msg.
func (k *Ed25519PublicKey) Verify(msg []byte, sig Signature) bool {
	s, ok := sig.(*Ed25519Signature)
	if !ok {
		return false
	}
	return ed25519.Verify(k.key, msg, s.sig[:])
}

// Ed25519Signature is a 64-byte Ed25519 signature.
type Ed25519Signature struct {
	sig [Ed25519SignatureLen]byte
}

// ParseEd25519Signature copies and validates raw Ed25519 signature bytes.
func ParseEd25519Signature(b []byte) (*Ed25519Signature, error) {
	if len(b) != Ed25519SignatureLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignatureLength, len(b), Ed25519SignatureLen)
	}
	s := &Ed25519Signature{}
	copy(s.sig[:], b)
	return s, nil
}

// Bytes returns the raw 64-byte signature.
func (s *Ed25519Signature) Bytes() []byte {
	out := make([]byte, Ed25519SignatureLen)
	copy(out, s.sig[:])
	return out
}

// Ed25519PrivateKey signs messages with Ed25519.
type Ed25519PrivateKey struct {
	key ed25519.PrivateKey
}

// GenerateEd25519PrivateKey creates a new random Ed25519 private key.
func GenerateEd25519PrivateKey() (*Ed25519PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 key: %w", err)
	}
	return &Ed25519PrivateKey{key: key}, nil
}

// PublicKey returns the verifying key.
func (k *Ed25519PrivateKey) PublicKey() PublicKey {
	pub := k.key.Public().(ed25519.PublicKey)
	return &Ed25519PublicKey{key: pub}
}

// Sign signs msg with Ed25519.
func (k *Ed25519PrivateKey) Sign(msg []byte) (Signature, error) {
	s := &Ed25519Signature{}
	copy(s.sig[:], ed25519.Sign(k.key, msg))
	return s, nil
}
