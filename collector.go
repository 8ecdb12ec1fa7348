// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package multikey

import (
	"fmt"
	"sort"

	"github.com/luxfi/log"
)

// NewSignatureCollector returns a collector that accumulates verified
// partial signatures for key until its threshold is met.
func NewSignatureCollector(log log.Logger, key *MultiKey) *SignatureCollector {
	return &SignatureCollector{
		log:  log,
		key:  key,
		sigs: make(map[int]*AnySignature),
	}
}

// SignatureCollector gathers partial signatures from the signers of a
// MultiKey and assembles them into a MultiKeySignature once enough distinct
// signers have contributed. Every signature is verified against the key at
// its claimed position before being accepted. Not safe for concurrent use.
type SignatureCollector struct {
	log  log.Logger
	key  *MultiKey
	sigs map[int]*AnySignature
}

// Add verifies sig against the key at index over msg and records it.
// A duplicate index is dropped without error.
func (c *SignatureCollector) Add(msg []byte, index int, sig Signature) error {
	if index < 0 || index >= c.key.Len() {
		return fmt.Errorf("%w: index %d with %d keys", ErrIndexOutOfRange, index, c.key.Len())
	}
	wrapped, err := WrapSignature(sig)
	if err != nil {
		return err
	}
	if _, ok := c.sigs[index]; ok {
		c.log.Debug(
			"dropping duplicate signature",
			log.Int("index", index),
		)
		return nil
	}
	if !c.key.keys[index].VerifySignature(msg, wrapped) {
		return fmt.Errorf("%w: signer %d", ErrInvalidSignature, index)
	}

	c.sigs[index] = wrapped
	c.log.Debug(
		"collected signature",
		log.Int("index", index),
		log.Int("collected", len(c.sigs)),
		log.Int("threshold", int(c.key.Threshold())),
	)
	return nil
}

// Ready reports whether enough distinct signers have contributed.
func (c *SignatureCollector) Ready() bool {
	return len(c.sigs) >= int(c.key.Threshold())
}

// Assemble builds the threshold signature from the collected partials.
func (c *SignatureCollector) Assemble() (*MultiKeySignature, error) {
	if !c.Ready() {
		return nil, fmt.Errorf("%w: have %d of %d", ErrInsufficientSignatures, len(c.sigs), c.key.Threshold())
	}

	indices := make([]int, 0, len(c.sigs))
	for i := range c.sigs {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	sigs := make([]Signature, len(indices))
	for j, i := range indices {
		sigs[j] = c.sigs[i]
	}
	return NewMultiKeySignatureFromIndices(sigs, indices)
}
