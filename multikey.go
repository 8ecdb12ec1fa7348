// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"fmt"

	"github.com/luxfi/multikey/codec"
)

// MultiKey is an ordered set of wrapped public keys with a K-of-N signing
// threshold. A key's position in the set is its bit index in signer
// bitmaps, so order is significant.
type MultiKey struct {
	keys      []*AnyPublicKey
	threshold uint8
}

// NewMultiKey builds a threshold key set. Primitive keys are wrapped into
// AnyPublicKey as needed. The threshold must satisfy
// 1 <= threshold <= len(keys).
func NewMultiKey(keys []PublicKey, threshold uint8) (*MultiKey, error) {
	if threshold < 1 || int(threshold) > len(keys) {
		return nil, fmt.Errorf("%w: threshold %d with %d keys", ErrInvalidThreshold, threshold, len(keys))
	}
	wrapped := make([]*AnyPublicKey, len(keys))
	for i, key := range keys {
		k, err := WrapPublicKey(key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		wrapped[i] = k
	}
	return &MultiKey{keys: wrapped, threshold: threshold}, nil
}

// Keys returns the wrapped keys in bitmap order.
func (m *MultiKey) Keys() []*AnyPublicKey {
	keys := make([]*AnyPublicKey, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Threshold returns the number of valid signers required.
func (m *MultiKey) Threshold() uint8 {
	return m.threshold
}

// Len returns the number of keys in the set.
func (m *MultiKey) Len() int {
	return len(m.keys)
}

// CreateBitmap encodes signer positions within this key set, rejecting
// duplicates and positions past the last key.
func (m *MultiKey) CreateBitmap(indices []int) (Bitmap, error) {
	return encodeBitmap(indices, len(m.keys))
}

// VerifySignature reports whether sig satisfies this key set's policy over
// msg: every signature must verify against the key at its claimed bitmap
// position, and the number of distinct valid signers must reach the
// threshold.
func (m *MultiKey) VerifySignature(msg []byte, sig *MultiKeySignature) bool {
	if sig == nil {
		return false
	}
	indices := sig.bitmap.Indices()
	if len(indices) != len(sig.signatures) {
		return false
	}
	if len(indices) < int(m.threshold) {
		return false
	}
	for j, i := range indices {
		if i >= len(m.keys) {
			return false
		}
		if !m.keys[i].VerifySignature(msg, sig.signatures[j]) {
			return false
		}
	}
	return true
}

// AuthKey derives the authentication key binding this key set to an
// account address, under the multi-key derivation scheme.
func (m *MultiKey) AuthKey() AuthenticationKey {
	return DeriveAuthenticationKey(SchemeMultiKey, m.Bytes())
}

// Equal reports whether two key sets have the same keys and threshold.
func (m *MultiKey) Equal(other *MultiKey) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.threshold != other.threshold || len(m.keys) != len(other.keys) {
		return false
	}
	for i, k := range m.keys {
		if !k.Equal(other.keys[i]) {
			return false
		}
	}
	return true
}

func (m *MultiKey) marshal(w *codec.Writer) {
	w.WriteUvarint(uint64(len(m.keys)))
	for _, k := range m.keys {
		k.marshal(w)
	}
	w.WriteUint8(m.threshold)
}

// Bytes returns the canonical encoding: a ULEB128-counted key sequence
// followed by a single threshold byte.
func (m *MultiKey) Bytes() []byte {
	w := &codec.Writer{}
	m.marshal(w)
	return w.Bytes()
}

func unmarshalMultiKey(r *codec.Reader) (*MultiKey, error) {
	count, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	// Each key consumes at least one byte, so the count can be bounded by
	// the remaining input before allocating.
	if count > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: key sequence of length %d", codec.ErrTruncated, count)
	}
	keys := make([]PublicKey, 0, count)
	for i := uint64(0); i < count; i++ {
		key, err := unmarshalAnyPublicKey(r)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		keys = append(keys, key)
	}
	threshold, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	return NewMultiKey(keys, threshold)
}

// ParseMultiKey decodes the canonical encoding of a threshold key set,
// revalidating the threshold bounds. The input must contain exactly one
// value.
func ParseMultiKey(b []byte) (*MultiKey, error) {
	r := codec.NewReader(b)
	m, err := unmarshalMultiKey(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse multikey: %w", err)
	}
	if !r.Done() {
		return nil, fmt.Errorf("failed to parse multikey: %w", codec.ErrTrailingBytes)
	}
	return m, nil
}
