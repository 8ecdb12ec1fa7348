// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"bytes"
	"fmt"

	"github.com/luxfi/multikey/codec"
)

var _ Signature = (*AnySignature)(nil)

// AnySignature pairs a primitive signature with its scheme variant,
// mirroring AnyPublicKey. The pairing is fixed at construction; the
// serializer always emits the stored variant rather than re-deriving it
// from the concrete type.
type AnySignature struct {
	variant SchemeVariant
	sig     Signature
}

// WrapSignature tags sig with the variant matching its concrete type.
// Passing an already-wrapped signature through is a no-op.
func WrapSignature(sig Signature) (*AnySignature, error) {
	switch s := sig.(type) {
	case *AnySignature:
		return s, nil
	case *Ed25519Signature:
		return &AnySignature{variant: VariantEd25519, sig: s}, nil
	case *Secp256k1Signature:
		return &AnySignature{variant: VariantSecp256k1, sig: s}, nil
	case *BLSSignature:
		return &AnySignature{variant: VariantBLS, sig: s}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSignatureType, sig)
	}
}

// Variant returns the scheme discriminant recorded at construction.
func (s *AnySignature) Variant() SchemeVariant {
	return s.variant
}

// Signature returns the wrapped primitive signature.
func (s *AnySignature) Signature() Signature {
	return s.sig
}

// Equal reports whether two wrapped signatures have the same variant and
// signature bytes.
func (s *AnySignature) Equal(other *AnySignature) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.variant == other.variant && bytes.Equal(s.sig.Bytes(), other.sig.Bytes())
}

func (s *AnySignature) marshal(w *codec.Writer) {
	w.WriteUvarint(uint64(s.variant))
	w.WriteFixedBytes(s.sig.Bytes())
}

// Bytes returns the canonical encoding: the variant tag as a ULEB128
// varint, then the signature's fixed-length bytes.
func (s *AnySignature) Bytes() []byte {
	w := &codec.Writer{}
	s.marshal(w)
	return w.Bytes()
}

func unmarshalAnySignature(r *codec.Reader) (*AnySignature, error) {
	tag, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}

	var (
		variant = SchemeVariant(tag)
		sigLen  int
		parse   func([]byte) (Signature, error)
	)
	switch variant {
	case VariantEd25519:
		sigLen = Ed25519SignatureLen
		parse = func(b []byte) (Signature, error) { return ParseEd25519Signature(b) }
	case VariantSecp256k1:
		sigLen = Secp256k1SignatureLen
		parse = func(b []byte) (Signature, error) { return ParseSecp256k1Signature(b) }
	case VariantBLS:
		sigLen = BLSSignatureLen
		parse = func(b []byte) (Signature, error) { return ParseBLSSignature(b) }
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, tag)
	}

	raw, err := r.ReadFixedBytes(sigLen)
	if err != nil {
		return nil, err
	}
	sig, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &AnySignature{variant: variant, sig: sig}, nil
}

// ParseAnySignature decodes the canonical encoding of a wrapped signature.
// The input must contain exactly one value.
func ParseAnySignature(b []byte) (*AnySignature, error) {
	r := codec.NewReader(b)
	sig, err := unmarshalAnySignature(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signature: %w", err)
	}
	if !r.Done() {
		return nil, fmt.Errorf("failed to parse signature: %w", codec.ErrTrailingBytes)
	}
	return sig, nil
}
