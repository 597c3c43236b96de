// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package greeter implements a minimal cross-domain greeting client: it
// sends a text greeting to a contract on another domain through an external
// delivery relayer, paying the relayer's quoted fee up front, and applies
// greetings delivered by that relayer exactly as received, keeping only the
// latest one.
package greeter

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
)

// RelayService is the narrow interface to the external relay responsible for
// carrying payloads between domains. The relay owns delivery retries,
// verification of cross-domain proofs, and anti-replay; this client only
// quotes, dispatches, and accepts deliveries.
type RelayService interface {
	// QuoteDeliveryPrice returns the cost of delivering a payload to the
	// target domain with the given receiver-side value and execution budget.
	// The refund value is reported by the relay but unused by this client.
	QuoteDeliveryPrice(
		ctx context.Context,
		targetDomain uint16,
		receiverValue *uint256.Int,
		gasLimit uint64,
	) (cost *uint256.Int, refund *uint256.Int, err error)

	// Dispatch asks the relay to deliver payload to target on targetDomain,
	// forwarding value to the relay as payment. Completion is asynchronous;
	// the returned ID identifies the delivery attempt.
	Dispatch(
		ctx context.Context,
		value *uint256.Int,
		targetDomain uint16,
		target common.Address,
		payload []byte,
		receiverValue *uint256.Int,
		gasLimit uint64,
	) (ids.ID, error)
}
