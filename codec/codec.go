// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec implements the canonical binary encoding shared by all
// independent implementations of the wire format. Every value has exactly
// one valid byte representation: unsigned varints use the smallest ULEB128
// form, fixed-width integers are little-endian, and byte strings are
// varint-length-prefixed.
package codec

import "errors"

var (
	// ErrTruncated is returned when the input runs out before the expected
	// length or count is satisfied.
	ErrTruncated = errors.New("truncated input")

	// ErrNonCanonical is returned when a varint is not in its smallest form.
	ErrNonCanonical = errors.New("non-canonical varint")

	// ErrOverflow is returned when a varint exceeds the requested width.
	ErrOverflow = errors.New("varint overflow")

	// ErrTrailingBytes is returned when a parse leaves unconsumed input.
	ErrTrailingBytes = errors.New("trailing bytes after value")
)
