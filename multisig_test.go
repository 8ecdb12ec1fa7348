// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/multikey/codec"
)

func testEd25519Signature(t *testing.T, msg []byte) Signature {
	t.Helper()
	signer, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	sig, err := signer.Sign(msg)
	require.NoError(t, err)
	return sig
}

func TestMultiKeySignatureCrossCheck(t *testing.T) {
	msg := []byte("cross check")
	sigs := []Signature{testEd25519Signature(t, msg), testEd25519Signature(t, msg)}

	// Two signatures against a bitmap naming three signers.
	bm, err := NewBitmap([]int{0, 1, 2})
	require.NoError(t, err)
	_, err = NewMultiKeySignature(sigs, bm.Bytes())
	require.ErrorIs(t, err, ErrSignatureCountMismatch)

	_, err = NewMultiKeySignatureFromIndices(sigs, []int{0, 1, 2})
	require.ErrorIs(t, err, ErrSignatureCountMismatch)

	// Matching counts succeed.
	mks, err := NewMultiKeySignatureFromIndices(sigs, []int{0, 2})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, mks.SignerIndices())
}

func TestMultiKeySignatureTooMany(t *testing.T) {
	msg := []byte("too many")
	sig := testEd25519Signature(t, msg)

	sigs := make([]Signature, MaxSignatures+1)
	for i := range sigs {
		sigs[i] = sig
	}

	_, err := NewMultiKeySignature(sigs, []byte{0xff, 0xff, 0xff, 0xff})
	require.ErrorIs(t, err, ErrTooManySignatures)
}

func TestMultiKeySignatureBitmapLength(t *testing.T) {
	sig := testEd25519Signature(t, []byte("len"))

	_, err := NewMultiKeySignature([]Signature{sig}, []byte{0x80})
	require.ErrorIs(t, err, ErrInvalidBitmapLength)

	_, err = NewMultiKeySignature([]Signature{sig}, make([]byte, 5))
	require.ErrorIs(t, err, ErrInvalidBitmapLength)
}

func TestMultiKeySignatureUnsupported(t *testing.T) {
	_, err := NewMultiKeySignatureFromIndices([]Signature{stubSignature{}}, []int{0})
	require.ErrorIs(t, err, ErrUnsupportedSignatureType)
}

func TestMultiKeySignatureCopiesBitmap(t *testing.T) {
	sig := testEd25519Signature(t, []byte("copy"))

	raw := []byte{0x80, 0x00, 0x00, 0x00}
	mks, err := NewMultiKeySignature([]Signature{sig}, raw)
	require.NoError(t, err)

	// Ownership transfers on construction; later caller writes must not
	// show through.
	raw[0] = 0xff
	require.Equal(t, []int{0}, mks.SignerIndices())
}

func TestMultiKeySignatureRoundTrip(t *testing.T) {
	msg := []byte("round trip")
	sigs := []Signature{testEd25519Signature(t, msg), testEd25519Signature(t, msg)}

	mks, err := NewMultiKeySignatureFromIndices(sigs, []int{0, 2})
	require.NoError(t, err)

	encoded := mks.Bytes()
	// Length-prefixed 4-byte bitmap, then two wrapped ed25519 signatures
	// with no explicit count.
	wantLen := 1 + BitmapLen + 2*(1+Ed25519SignatureLen)
	require.Len(t, encoded, wantLen)
	require.Equal(t, []byte{0x04, 0xa0, 0x00, 0x00, 0x00}, encoded[:5])

	parsed, err := ParseMultiKeySignature(encoded)
	require.NoError(t, err)
	require.True(t, mks.Equal(parsed))
	require.Equal(t, encoded, parsed.Bytes())
}

func TestParseMultiKeySignatureCountFromBitmap(t *testing.T) {
	msg := []byte("popcount")
	sigs := []Signature{testEd25519Signature(t, msg), testEd25519Signature(t, msg)}

	mks, err := NewMultiKeySignatureFromIndices(sigs, []int{0, 2})
	require.NoError(t, err)
	encoded := mks.Bytes()

	// The bitmap names two signers; input holding only one signature is a
	// decode failure, not a silent truncation.
	short := encoded[:1+BitmapLen+1+Ed25519SignatureLen]
	_, err = ParseMultiKeySignature(short)
	require.ErrorIs(t, err, codec.ErrTruncated)

	// Extra input past the second signature is rejected too.
	_, err = ParseMultiKeySignature(append(encoded, 0x00))
	require.ErrorIs(t, err, codec.ErrTrailingBytes)
}

func TestParseMultiKeySignatureBadBitmap(t *testing.T) {
	// Length prefix claims 3 bitmap bytes.
	_, err := ParseMultiKeySignature([]byte{0x03, 0x00, 0x00, 0x00})
	require.ErrorIs(t, err, ErrInvalidBitmapLength)

	_, err = ParseMultiKeySignature([]byte{0x04, 0x00})
	require.ErrorIs(t, err, codec.ErrTruncated)
}

func TestMultiKeySignatureEmpty(t *testing.T) {
	// Zero signatures with an empty bitmap is internally consistent.
	mks, err := NewMultiKeySignature(nil, make([]byte, BitmapLen))
	require.NoError(t, err)
	require.Empty(t, mks.SignerIndices())

	parsed, err := ParseMultiKeySignature(mks.Bytes())
	require.NoError(t, err)
	require.True(t, mks.Equal(parsed))
}
