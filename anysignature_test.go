// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/multikey/codec"
)

func TestWrapSignature(t *testing.T) {
	msg := []byte("sign me")

	ed, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	secp, err := GenerateSecp256k1PrivateKey()
	require.NoError(t, err)

	edSig, err := ed.Sign(msg)
	require.NoError(t, err)
	secpSig, err := secp.Sign(msg)
	require.NoError(t, err)

	tests := []struct {
		name    string
		sig     Signature
		variant SchemeVariant
	}{
		{"ed25519", edSig, VariantEd25519},
		{"secp256k1", secpSig, VariantSecp256k1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped, err := WrapSignature(tt.sig)
			require.NoError(t, err)
			require.Equal(t, tt.variant, wrapped.Variant())
			require.Equal(t, tt.sig, wrapped.Signature())

			again, err := WrapSignature(wrapped)
			require.NoError(t, err)
			require.Same(t, wrapped, again)
		})
	}
}

func TestWrapSignatureUnsupported(t *testing.T) {
	_, err := WrapSignature(stubSignature{})
	require.ErrorIs(t, err, ErrUnsupportedSignatureType)
}

func TestAnySignatureSerializesStoredVariant(t *testing.T) {
	ed, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	sig, err := ed.Sign([]byte("msg"))
	require.NoError(t, err)

	wrapped, err := WrapSignature(sig)
	require.NoError(t, err)

	// The emitted tag comes from the variant recorded at construction.
	encoded := wrapped.Bytes()
	require.Len(t, encoded, 1+Ed25519SignatureLen)
	require.Equal(t, byte(wrapped.Variant()), encoded[0])
	require.Equal(t, sig.Bytes(), encoded[1:])
}

func TestAnySignatureRoundTrip(t *testing.T) {
	msg := []byte("round trip")

	ed, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	secp, err := GenerateSecp256k1PrivateKey()
	require.NoError(t, err)

	for _, signer := range []PrivateKey{ed, secp} {
		sig, err := signer.Sign(msg)
		require.NoError(t, err)

		wrapped, err := WrapSignature(sig)
		require.NoError(t, err)

		parsed, err := ParseAnySignature(wrapped.Bytes())
		require.NoError(t, err)
		require.True(t, wrapped.Equal(parsed))

		// The parsed signature still verifies.
		key, err := WrapPublicKey(signer.PublicKey())
		require.NoError(t, err)
		require.True(t, key.VerifySignature(msg, parsed))
	}
}

func TestAnySignatureBLSRoundTrip(t *testing.T) {
	msg := []byte("bls round trip")

	bls, err := GenerateBLSPrivateKey()
	require.NoError(t, err)
	sig, err := bls.Sign(msg)
	require.NoError(t, err)

	wrapped, err := WrapSignature(sig)
	require.NoError(t, err)
	require.Equal(t, VariantBLS, wrapped.Variant())

	parsed, err := ParseAnySignature(wrapped.Bytes())
	require.NoError(t, err)
	require.True(t, wrapped.Equal(parsed))

	key, err := WrapPublicKey(bls.PublicKey())
	require.NoError(t, err)
	require.True(t, key.VerifySignature(msg, parsed))
}

func TestAnySignatureUnknownTag(t *testing.T) {
	encoded := append([]byte{99}, make([]byte, Ed25519SignatureLen)...)
	_, err := ParseAnySignature(encoded)
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestAnySignatureTruncated(t *testing.T) {
	encoded := append([]byte{0x00}, make([]byte, Ed25519SignatureLen-1)...)
	_, err := ParseAnySignature(encoded)
	require.ErrorIs(t, err, codec.ErrTruncated)
}

func TestAnySignatureTrailingBytes(t *testing.T) {
	ed, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	sig, err := ed.Sign([]byte("msg"))
	require.NoError(t, err)

	wrapped, err := WrapSignature(sig)
	require.NoError(t, err)

	_, err = ParseAnySignature(append(wrapped.Bytes(), 0xff))
	require.ErrorIs(t, err, codec.ErrTrailingBytes)
}
