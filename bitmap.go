// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"fmt"
	"math/bits"
)

const (
	// BitmapLen is the wire size of a signer bitmap in bytes.
	BitmapLen = 4

	// MaxSignatures is the number of signer slots a bitmap can address.
	MaxSignatures = 32
)

// Bitmap records which signer slots contributed a signature. Bit index 0
// is the most significant bit of byte 0; bit index 31 is the least
// significant bit of byte 3. Bitmap is a value type, so construction copies
// any caller-supplied buffer.
type Bitmap [BitmapLen]byte

// NewBitmap sets the given signer indices in a fresh 32-slot bitmap.
// Indices may arrive in any order; the encoding only records membership.
func NewBitmap(indices []int) (Bitmap, error) {
	return encodeBitmap(indices, MaxSignatures)
}

// encodeBitmap validates indices against a slot bound and sets the matching
// bits. The bound is the key count when scoped to a key set and
// MaxSignatures for a standalone bitmap; it never exceeds MaxSignatures.
func encodeBitmap(indices []int, slots int) (Bitmap, error) {
	if slots > MaxSignatures {
		slots = MaxSignatures
	}
	var b Bitmap
	for _, i := range indices {
		if i < 0 || i >= slots {
			return Bitmap{}, fmt.Errorf("%w: index %d with %d slots", ErrIndexOutOfRange, i, slots)
		}
		mask := byte(0x80) >> (i % 8)
		if b[i/8]&mask != 0 {
			return Bitmap{}, fmt.Errorf("%w: index %d", ErrDuplicateIndex, i)
		}
		b[i/8] |= mask
	}
	return b, nil
}

// BitmapFromBytes copies a raw bitmap, requiring exactly BitmapLen bytes.
func BitmapFromBytes(b []byte) (Bitmap, error) {
	if len(b) != BitmapLen {
		return Bitmap{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBitmapLength, len(b), BitmapLen)
	}
	var bm Bitmap
	copy(bm[:], b)
	return bm, nil
}

// Contains reports whether signer slot i is set.
func (b Bitmap) Contains(i int) bool {
	if i < 0 || i >= MaxSignatures {
		return false
	}
	return b[i/8]&(byte(0x80)>>(i%8)) != 0
}

// Count returns the number of set signer slots.
func (b Bitmap) Count() int {
	count := 0
	for _, v := range b {
		count += bits.OnesCount8(v)
	}
	return count
}

// Indices returns the set signer slots in ascending order.
func (b Bitmap) Indices() []int {
	indices := make([]int, 0, b.Count())
	for i := 0; i < MaxSignatures; i++ {
		if b.Contains(i) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Bytes returns the 4-byte wire form of the bitmap.
func (b Bitmap) Bytes() []byte {
	return b[:]
}

// String returns the set indices for logging and CLI output.
func (b Bitmap) String() string {
	return fmt.Sprintf("%v", b.Indices())
}
