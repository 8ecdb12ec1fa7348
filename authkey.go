// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"encoding/hex"

	"github.com/luxfi/ids"
	"golang.org/x/crypto/sha3"
)

// AuthenticationKeyLen is the length of a derived authentication key.
const AuthenticationKeyLen = 32

// AuthenticationKey is the fixed-length value binding a key or key set's
// canonical bytes and derivation scheme to an account address.
type AuthenticationKey [AuthenticationKeyLen]byte

// DeriveAuthenticationKey hashes the canonical encoding with the derivation
// scheme appended as a domain separator, so identical payloads under
// different schemes never collide.
func DeriveAuthenticationKey(scheme uint8, canonical []byte) AuthenticationKey {
	h := sha3.New256()
	h.Write(canonical)
	h.Write([]byte{scheme})

	var out AuthenticationKey
	copy(out[:], h.Sum(nil))
	return out
}

// Address returns the account address form of the authentication key.
func (a AuthenticationKey) Address() ids.ID {
	return ids.ID(a)
}

// Bytes returns the raw 32-byte authentication key.
func (a AuthenticationKey) Bytes() []byte {
	return a[:]
}

// String returns the 0x-prefixed hex form.
func (a AuthenticationKey) String() string {
	return "0x" + hex.EncodeToString(a[:])
}
