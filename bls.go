// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"fmt"

	"github.com/luxfi/crypto/bls"
)

const (
	// BLSPublicKeyLen is the length of a compressed BLS12-381 public key.
	BLSPublicKeyLen = 48

	// BLSSignatureLen is the length of a BLS12-381 signature.
	BLSSignatureLen = 96
)

var (
	_ PublicKey  = (*BLSPublicKey)(nil)
	_ Signature  = (*BLSSignature)(nil)
	_ PrivateKey = (*BLSPrivateKey)(nil)
)

// BLSPublicKey is a compressed BLS12-381 verifying key.
type BLSPublicKey struct {
	key *bls.PublicKey
}

// ParseBLSPublicKey validates compressed BLS public key bytes.
func ParseBLSPublicKey(b []byte) (*BLSPublicKey, error) {
	if len(b) != BLSPublicKeyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(b), BLSPublicKeyLen)
	}
	key, err := bls.PublicKeyFromCompressedBytes(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bls public key: %w", err)
	}
	return &BLSPublicKey{key: key}, nil
}

// Bytes returns the compressed 48-byte key.
func (k *BLSPublicKey) Bytes() []byte {
	return bls.PublicKeyToCompressedBytes(k.key)
}

// Verify reports whether sig is a valid BLS signature over msg.
func (k *BLSPublicKey) Verify(msg []byte, sig Signature) bool {
	s, ok := sig.(*BLSSignature)
	if !ok {
		return false
	}
	return bls.Verify(k.key, s.sig, msg)
}

// BLSSignature is a BLS12-381 signature.
type BLSSignature struct {
	sig *bls.Signature
}

// ParseBLSSignature validates raw BLS signature bytes.
func ParseBLSSignature(b []byte) (*BLSSignature, error) {
	if len(b) != BLSSignatureLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignatureLength, len(b), BLSSignatureLen)
	}
	sig, err := bls.SignatureFromBytes(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bls signature: %w", err)
	}
	return &BLSSignature{sig: sig}, nil
}

// Bytes returns the raw 96-byte signature.
func (s *BLSSignature) Bytes() []byte {
	return bls.SignatureToBytes(s.sig)
}

// BLSPrivateKey signs messages with BLS12-381.
type BLSPrivateKey struct {
	sk *bls.SecretKey
}

// GenerateBLSPrivateKey creates a new random BLS private key.
func GenerateBLSPrivateKey() (*BLSPrivateKey, error) {
	sk, err := bls.NewSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate bls key: %w", err)
	}
	return &BLSPrivateKey{sk: sk}, nil
}

// PublicKey returns the verifying key.
func (k *BLSPrivateKey) PublicKey() PublicKey {
	return &BLSPublicKey{key: bls.PublicFromSecretKey(k.sk)}
}

// Sign signs msg with BLS.
func (k *BLSPrivateKey) Sign(msg []byte) (Signature, error) {
	sig, err := k.sk.Sign(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return &BLSSignature{sig: sig}, nil
}
