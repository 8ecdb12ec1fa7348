// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import "errors"

var (
	// ErrUnsupportedKeyType is returned when wrapping a public key whose
	// concrete type is not one of the supported schemes.
	ErrUnsupportedKeyType = errors.New("unsupported public key type")

	// ErrUnsupportedSignatureType is the signature counterpart of
	// ErrUnsupportedKeyType.
	ErrUnsupportedSignatureType = errors.New("unsupported signature type")

	// ErrUnknownVariant is returned when a decoded variant tag is outside
	// the enumerated scheme set.
	ErrUnknownVariant = errors.New("unknown scheme variant")

	// ErrInvalidThreshold is returned when a key set's threshold is zero or
	// exceeds the key count.
	ErrInvalidThreshold = errors.New("invalid signature threshold")

	// ErrDuplicateIndex is returned when a signer index repeats.
	ErrDuplicateIndex = errors.New("duplicate signer index")

	// ErrIndexOutOfRange is returned when a signer index exceeds the
	// available slots.
	ErrIndexOutOfRange = errors.New("signer index out of range")

	// ErrTooManySignatures is returned when a threshold signature holds
	// more signatures than a bitmap can address.
	ErrTooManySignatures = errors.New("too many signatures")

	// ErrInvalidBitmapLength is returned when a raw bitmap is not exactly
	// BitmapLen bytes.
	ErrInvalidBitmapLength = errors.New("invalid bitmap length")

	// ErrSignatureCountMismatch is returned when the bitmap's set-bit count
	// disagrees with the number of signatures supplied.
	ErrSignatureCountMismatch = errors.New("signature count does not match bitmap")

	// ErrInvalidKeyLength is returned when raw key material has the wrong
	// length for its scheme.
	ErrInvalidKeyLength = errors.New("invalid public key length")

	// ErrInvalidSignatureLength is the signature counterpart of
	// ErrInvalidKeyLength.
	ErrInvalidSignatureLength = errors.New("invalid signature length")

	// ErrInvalidSignature is returned when a signature fails verification
	// in a context that reports errors rather than booleans.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInsufficientSignatures is returned when assembling a threshold
	// signature before the threshold is met.
	ErrInsufficientSignatures = errors.New("insufficient signatures")
)
