// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"bytes"
	"fmt"

	"github.com/luxfi/multikey/codec"
)

var _ PublicKey = (*AnyPublicKey)(nil)

// AnyPublicKey pairs a primitive public key with its scheme variant so
// heterogeneous keys can be stored, serialized, and dispatched uniformly.
// The variant/key pairing is fixed at construction and never changes.
type AnyPublicKey struct {
	variant SchemeVariant
	key     PublicKey
}

// WrapPublicKey tags key with the variant matching its concrete type.
// Passing an already-wrapped key through is a no-op. This switch is the
// single extension point for supporting a new scheme's keys.
func WrapPublicKey(key PublicKey) (*AnyPublicKey, error) {
	switch k := key.(type) {
	case *AnyPublicKey:
		return k, nil
	case *Ed25519PublicKey:
		return &AnyPublicKey{variant: VariantEd25519, key: k}, nil
	case *Secp256k1PublicKey:
		return &AnyPublicKey{variant: VariantSecp256k1, key: k}, nil
	case *BLSPublicKey:
		return &AnyPublicKey{variant: VariantBLS, key: k}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKeyType, key)
	}
}

// Variant returns the scheme discriminant recorded at construction.
func (k *AnyPublicKey) Variant() SchemeVariant {
	return k.variant
}

// Key returns the wrapped primitive key.
func (k *AnyPublicKey) Key() PublicKey {
	return k.key
}

// VerifySignature reports whether sig verifies over msg. A signature whose
// variant does not match the key's compares as not verified rather than
// failing.
func (k *AnyPublicKey) VerifySignature(msg []byte, sig *AnySignature) bool {
	if sig == nil || k.variant != sig.variant {
		return false
	}
	return k.key.Verify(msg, sig.sig)
}

// Verify implements PublicKey so a wrapped key can stand in wherever a
// primitive key is accepted.
func (k *AnyPublicKey) Verify(msg []byte, sig Signature) bool {
	if s, ok := sig.(*AnySignature); ok {
		return k.VerifySignature(msg, s)
	}
	return k.key.Verify(msg, sig)
}

// AuthKey derives the authentication key binding this key to an account
// address, under the single-key derivation scheme.
func (k *AnyPublicKey) AuthKey() AuthenticationKey {
	return DeriveAuthenticationKey(SchemeSingleKey, k.Bytes())
}

// Equal reports whether two wrapped keys have the same variant and key
// bytes.
func (k *AnyPublicKey) Equal(other *AnyPublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.variant == other.variant && bytes.Equal(k.key.Bytes(), other.key.Bytes())
}

func (k *AnyPublicKey) marshal(w *codec.Writer) {
	w.WriteUvarint(uint64(k.variant))
	w.WriteFixedBytes(k.key.Bytes())
}

// Bytes returns the canonical encoding: the variant tag as a ULEB128
// varint, then the key's fixed-length bytes.
func (k *AnyPublicKey) Bytes() []byte {
	w := &codec.Writer{}
	k.marshal(w)
	return w.Bytes()
}

func unmarshalAnyPublicKey(r *codec.Reader) (*AnyPublicKey, error) {
	tag, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}

	var (
		variant = SchemeVariant(tag)
		keyLen  int
		parse   func([]byte) (PublicKey, error)
	)
	switch variant {
	case VariantEd25519:
		keyLen = Ed25519PublicKeyLen
		parse = func(b []byte) (PublicKey, error) { return ParseEd25519PublicKey(b) }
	case VariantSecp256k1:
		keyLen = Secp256k1PublicKeyLen
		parse = func(b []byte) (PublicKey, error) { return ParseSecp256k1PublicKey(b) }
	case VariantBLS:
		keyLen = BLSPublicKeyLen
		parse = func(b []byte) (PublicKey, error) { return ParseBLSPublicKey(b) }
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, tag)
	}

	raw, err := r.ReadFixedBytes(keyLen)
	if err != nil {
		return nil, err
	}
	key, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &AnyPublicKey{variant: variant, key: key}, nil
}

// ParseAnyPublicKey decodes the canonical encoding of a wrapped public key.
// The input must contain exactly one value.
func ParseAnyPublicKey(b []byte) (*AnyPublicKey, error) {
	r := codec.NewReader(b)
	key, err := unmarshalAnyPublicKey(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	if !r.Done() {
		return nil, fmt.Errorf("failed to parse public key: %w", codec.ErrTrailingBytes)
	}
	return key, nil
}
