// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "encoding/binary"

// Writer appends canonically encoded values to an in-memory buffer.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// WriteUvarint appends v in smallest-form ULEB128.
func (w *Writer) WriteUvarint(v uint64) {
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint32 appends v as four little-endian bytes.
func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteBytes appends a length-prefixed byte string: the ULEB128 length
// followed by the raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteUvarint(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteFixedBytes appends raw bytes with no length prefix. The reader is
// expected to know the length from context.
func (w *Writer) WriteFixedBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the encoded output. The returned slice aliases the writer's
// buffer; callers must not write to the Writer afterwards.
func (w *Writer) Bytes() []byte {
	return w.buf
}
