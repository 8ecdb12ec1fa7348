// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemeVariantString(t *testing.T) {
	tests := []struct {
		variant SchemeVariant
		want    string
	}{
		{VariantEd25519, "ed25519"},
		{VariantSecp256k1, "secp256k1"},
		{VariantBLS, "bls12-381"},
		{SchemeVariant(99), "unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.variant.String())
	}
}

func TestParseEd25519Lengths(t *testing.T) {
	_, err := ParseEd25519PublicKey(make([]byte, Ed25519PublicKeyLen-1))
	require.ErrorIs(t, err, ErrInvalidKeyLength)
	_, err = ParseEd25519PublicKey(make([]byte, Ed25519PublicKeyLen+1))
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = ParseEd25519Signature(make([]byte, Ed25519SignatureLen-1))
	require.ErrorIs(t, err, ErrInvalidSignatureLength)
}

func TestEd25519SignVerify(t *testing.T) {
	msg := []byte("ed25519 message")

	signer, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	key := signer.PublicKey()
	require.True(t, key.Verify(msg, sig))
	require.False(t, key.Verify([]byte("other"), sig))

	// Keys round-trip through their raw bytes.
	parsed, err := ParseEd25519PublicKey(key.Bytes())
	require.NoError(t, err)
	require.True(t, parsed.Verify(msg, sig))

	parsedSig, err := ParseEd25519Signature(sig.Bytes())
	require.NoError(t, err)
	require.True(t, key.Verify(msg, parsedSig))
}

func TestParseSecp256k1Lengths(t *testing.T) {
	_, err := ParseSecp256k1PublicKey(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	// Right length but not a curve point.
	_, err = ParseSecp256k1PublicKey(make([]byte, Secp256k1PublicKeyLen))
	require.Error(t, err)

	_, err = ParseSecp256k1Signature(make([]byte, Secp256k1SignatureLen-1))
	require.ErrorIs(t, err, ErrInvalidSignatureLength)
}

func TestSecp256k1SignVerify(t *testing.T) {
	msg := []byte("secp256k1 message")

	signer, err := GenerateSecp256k1PrivateKey()
	require.NoError(t, err)
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	key := signer.PublicKey()
	require.True(t, key.Verify(msg, sig))
	require.False(t, key.Verify([]byte("other"), sig))

	parsed, err := ParseSecp256k1PublicKey(key.Bytes())
	require.NoError(t, err)
	require.True(t, parsed.Verify(msg, sig))

	parsedSig, err := ParseSecp256k1Signature(sig.Bytes())
	require.NoError(t, err)
	require.True(t, key.Verify(msg, parsedSig))
	require.Equal(t, sig.Bytes(), parsedSig.Bytes())
}

func TestPrimitiveVerifyRejectsForeignScheme(t *testing.T) {
	msg := []byte("scheme mismatch")

	ed, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	secp, err := GenerateSecp256k1PrivateKey()
	require.NoError(t, err)

	edSig, err := ed.Sign(msg)
	require.NoError(t, err)
	secpSig, err := secp.Sign(msg)
	require.NoError(t, err)

	require.False(t, ed.PublicKey().Verify(msg, secpSig))
	require.False(t, secp.PublicKey().Verify(msg, edSig))
}

func TestBLSSignVerify(t *testing.T) {
	msg := []byte("bls message")

	signer, err := GenerateBLSPrivateKey()
	require.NoError(t, err)
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	key := signer.PublicKey()
	require.True(t, key.Verify(msg, sig))
	require.False(t, key.Verify([]byte("other"), sig))

	parsed, err := ParseBLSPublicKey(key.Bytes())
	require.NoError(t, err)
	require.True(t, parsed.Verify(msg, sig))

	_, err = ParseBLSPublicKey(make([]byte, 10))
	require.ErrorIs(t, err, ErrInvalidKeyLength)
	_, err = ParseBLSSignature(make([]byte, 10))
	require.ErrorIs(t, err, ErrInvalidSignatureLength)
}
