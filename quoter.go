// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"
)

// DeliveryGasLimit is the execution budget the relay is paid to spend running
// the delivery callback on the destination domain. Quoting and dispatch must
// use the same value; a mismatch under- or over-charges the sender.
const DeliveryGasLimit uint64 = 50_000

// FeeQuoter prices deliveries through the relay service. Every call re-quotes;
// prices are never cached, so the result may vary as the relay reprices.
type FeeQuoter struct {
	relay RelayService
}

// NewFeeQuoter returns a quoter backed by the given relay service.
func NewFeeQuoter(relay RelayService) *FeeQuoter {
	return &FeeQuoter{relay: relay}
}

// Quote returns the current cost of delivering a greeting to targetDomain.
// Relay failures are surfaced unmodified apart from error wrapping.
func (q *FeeQuoter) Quote(ctx context.Context, targetDomain uint16) (*uint256.Int, error) {
	cost, _, err := q.relay.QuoteDeliveryPrice(ctx, targetDomain, uint256.NewInt(0), DeliveryGasLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return cost, nil
}
