// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"
	"fmt"
)

// Reader consumes canonically encoded values from an input slice.
// Variable-length reads copy out of the input, so the caller may reuse the
// backing buffer once parsing completes.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader over b. The Reader never mutates b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// ReadUvarint consumes a smallest-form ULEB128 varint. Encodings with
// redundant trailing groups fail with ErrNonCanonical; values wider than
// 64 bits fail with ErrOverflow.
func (r *Reader) ReadUvarint() (uint64, error) {
	var (
		x     uint64
		shift uint
	)
	for i := 0; ; i++ {
		if r.off >= len(r.buf) {
			return 0, fmt.Errorf("%w: varint", ErrTruncated)
		}
		b := r.buf[r.off]
		r.off++

		if shift > 63 || (shift == 63 && b > 1) {
			return 0, ErrOverflow
		}
		x |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			if i > 0 && b == 0 {
				return 0, ErrNonCanonical
			}
			return x, nil
		}
		shift += 7
	}
}

// ReadUint8 consumes a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.off >= len(r.buf) {
		return 0, fmt.Errorf("%w: uint8", ErrTruncated)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// ReadUint32 consumes four little-endian bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.off+4 > len(r.buf) {
		return 0, fmt.Errorf("%w: uint32", ErrTruncated)
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

// ReadBytes consumes a length-prefixed byte string and returns a copy.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if n > uint64(len(r.buf)-r.off) {
		return nil, fmt.Errorf("%w: byte string of length %d", ErrTruncated, n)
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:])
	r.off += int(n)
	return out, nil
}

// ReadFixedBytes consumes exactly n raw bytes and returns a copy.
func (r *Reader) ReadFixedBytes(n int) ([]byte, error) {
	if n > len(r.buf)-r.off {
		return nil, fmt.Errorf("%w: fixed bytes of length %d", ErrTruncated, n)
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:])
	r.off += n
	return out, nil
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Done reports whether all input has been consumed.
func (r *Reader) Done() bool {
	return r.off == len(r.buf)
}
