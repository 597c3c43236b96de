// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"context"
	"crypto/sha256"
	"sync"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
)

// Dispatched records one dispatch accepted by a FakeRelay.
type Dispatched struct {
	Value        *uint256.Int
	TargetDomain uint16
	Target       common.Address
	Payload      []byte
	GasLimit     uint64
	DeliveryID   ids.ID
}

// FakeRelay is a test implementation of RelayService with a fixed price per
// delivery. It records every dispatch and fabricates delivery IDs from the
// payload hash.
type FakeRelay struct {
	Price *uint256.Int

	// QuoteErr and DispatchErr, when set, are returned verbatim.
	QuoteErr    error
	DispatchErr error

	mu         sync.Mutex
	dispatched []Dispatched
}

// NewFakeRelay returns a fake relay quoting price for every domain.
func NewFakeRelay(price uint64) *FakeRelay {
	return &FakeRelay{Price: uint256.NewInt(price)}
}

func (f *FakeRelay) QuoteDeliveryPrice(
	_ context.Context,
	_ uint16,
	_ *uint256.Int,
	_ uint64,
) (*uint256.Int, *uint256.Int, error) {
	if f.QuoteErr != nil {
		return nil, nil, f.QuoteErr
	}
	return new(uint256.Int).Set(f.Price), uint256.NewInt(0), nil
}

func (f *FakeRelay) Dispatch(
	_ context.Context,
	value *uint256.Int,
	targetDomain uint16,
	target common.Address,
	payload []byte,
	_ *uint256.Int,
	gasLimit uint64,
) (ids.ID, error) {
	if f.DispatchErr != nil {
		return ids.Empty, f.DispatchErr
	}
	d := Dispatched{
		Value:        new(uint256.Int).Set(value),
		TargetDomain: targetDomain,
		Target:       target,
		Payload:      payload,
		GasLimit:     gasLimit,
		DeliveryID:   ids.ID(sha256.Sum256(payload)),
	}
	f.mu.Lock()
	f.dispatched = append(f.dispatched, d)
	f.mu.Unlock()
	return d.DeliveryID, nil
}

// Dispatched returns a copy of all recorded dispatches.
func (f *FakeRelay) Dispatched() []Dispatched {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Dispatched, len(f.dispatched))
	copy(out, f.dispatched)
	return out
}
