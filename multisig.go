// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"fmt"

	"github.com/luxfi/multikey/codec"
)

// MultiKeySignature binds the ordered signatures of a K-of-N signing event
// to the bitmap of signer positions that produced them. The i-th signature
// corresponds to the i-th set bit in ascending bit-index order, which in
// turn names a position in the associated MultiKey.
type MultiKeySignature struct {
	signatures []*AnySignature
	bitmap     Bitmap
}

// NewMultiKeySignature builds a threshold signature from a raw 4-byte
// bitmap. Primitive signatures are wrapped into AnySignature as needed.
func NewMultiKeySignature(sigs []Signature, bitmap []byte) (*MultiKeySignature, error) {
	bm, err := BitmapFromBytes(bitmap)
	if err != nil {
		return nil, err
	}
	return newMultiKeySignature(sigs, bm)
}

// NewMultiKeySignatureFromIndices builds a threshold signature, encoding
// the signer positions itself. sigs must be ordered by ascending position.
func NewMultiKeySignatureFromIndices(sigs []Signature, indices []int) (*MultiKeySignature, error) {
	bm, err := NewBitmap(indices)
	if err != nil {
		return nil, err
	}
	return newMultiKeySignature(sigs, bm)
}

func newMultiKeySignature(sigs []Signature, bm Bitmap) (*MultiKeySignature, error) {
	if len(sigs) > MaxSignatures {
		return nil, fmt.Errorf("%w: %d signatures, max %d", ErrTooManySignatures, len(sigs), MaxSignatures)
	}
	// The bitmap and the signature list are supplied independently;
	// popcount(bitmap) == len(sigs) is the cross-check binding them.
	if got := bm.Count(); got != len(sigs) {
		return nil, fmt.Errorf("%w: bitmap names %d signers, got %d signatures", ErrSignatureCountMismatch, got, len(sigs))
	}
	wrapped := make([]*AnySignature, len(sigs))
	for i, sig := range sigs {
		s, err := WrapSignature(sig)
		if err != nil {
			return nil, fmt.Errorf("signature %d: %w", i, err)
		}
		wrapped[i] = s
	}
	return &MultiKeySignature{signatures: wrapped, bitmap: bm}, nil
}

// Signatures returns the wrapped signatures in set-bit order.
func (s *MultiKeySignature) Signatures() []*AnySignature {
	sigs := make([]*AnySignature, len(s.signatures))
	copy(sigs, s.signatures)
	return sigs
}

// Bitmap returns the signer bitmap.
func (s *MultiKeySignature) Bitmap() Bitmap {
	return s.bitmap
}

// SignerIndices returns the signer positions in ascending order.
func (s *MultiKeySignature) SignerIndices() []int {
	return s.bitmap.Indices()
}

// Equal reports whether two threshold signatures have the same bitmap and
// signatures.
func (s *MultiKeySignature) Equal(other *MultiKeySignature) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.bitmap != other.bitmap || len(s.signatures) != len(other.signatures) {
		return false
	}
	for i, sig := range s.signatures {
		if !sig.Equal(other.signatures[i]) {
			return false
		}
	}
	return true
}

func (s *MultiKeySignature) marshal(w *codec.Writer) {
	w.WriteBytes(s.bitmap.Bytes())
	// The signature count is always recoverable as popcount(bitmap), so it
	// is never written.
	for _, sig := range s.signatures {
		sig.marshal(w)
	}
}

// Bytes returns the canonical encoding: the length-prefixed 4-byte bitmap
// followed by each signature's encoding in sequence order.
func (s *MultiKeySignature) Bytes() []byte {
	w := &codec.Writer{}
	s.marshal(w)
	return w.Bytes()
}

func unmarshalMultiKeySignature(r *codec.Reader) (*MultiKeySignature, error) {
	raw, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	bm, err := BitmapFromBytes(raw)
	if err != nil {
		return nil, err
	}
	count := bm.Count()
	sigs := make([]*AnySignature, 0, count)
	for i := 0; i < count; i++ {
		sig, err := unmarshalAnySignature(r)
		if err != nil {
			return nil, fmt.Errorf("signature %d: %w", i, err)
		}
		sigs = append(sigs, sig)
	}
	return &MultiKeySignature{signatures: sigs, bitmap: bm}, nil
}

// ParseMultiKeySignature decodes the canonical encoding of a threshold
// signature, reading exactly popcount(bitmap) signatures. Running out of
// input before that count is a decode failure.
func ParseMultiKeySignature(b []byte) (*MultiKeySignature, error) {
	r := codec.NewReader(b)
	sig, err := unmarshalMultiKeySignature(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse multikey signature: %w", err)
	}
	if !r.Done() {
		return nil, fmt.Errorf("failed to parse multikey signature: %w", codec.ErrTrailingBytes)
	}
	return sig, nil
}
