// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"
)

// Client sends greetings to other domains through the relay service. Sending
// mutates no local state; once dispatched, delivery is entirely the relay's
// responsibility.
type Client struct {
	log      log.Logger
	relay    RelayService
	quoter   *FeeQuoter
	identity common.Address
}

// NewClient returns a sending client. identity is the address stamped into
// outbound payloads as the greeting's sender.
func NewClient(logger log.Logger, relay RelayService, identity common.Address) (*Client, error) {
	if identity == (common.Address{}) {
		return nil, fmt.Errorf("%w: zero sender identity", ErrInvalidArgument)
	}
	return &Client{
		log:      logger,
		relay:    relay,
		quoter:   NewFeeQuoter(relay),
		identity: identity,
	}, nil
}

// Quote returns the current delivery cost for targetDomain.
func (c *Client) Quote(ctx context.Context, targetDomain uint16) (*uint256.Int, error) {
	return c.quoter.Quote(ctx, targetDomain)
}

// SendGreeting validates the request, takes a fresh quote, and dispatches the
// encoded greeting. Exactly the quoted cost is forwarded to the relay; surplus
// funds are the relay's to handle. The quote is taken immediately before
// dispatch so the price paid always matches the price charged.
func (c *Client) SendGreeting(
	ctx context.Context,
	targetDomain uint16,
	targetAddress common.Address,
	greeting string,
	funds *uint256.Int,
) error {
	if targetAddress == (common.Address{}) {
		return fmt.Errorf("%w: target address", ErrInvalidArgument)
	}
	if len(greeting) == 0 {
		return fmt.Errorf("%w: empty message", ErrInvalidArgument)
	}

	cost, err := c.quoter.Quote(ctx, targetDomain)
	if err != nil {
		return err
	}
	if funds == nil || funds.Lt(cost) {
		return fmt.Errorf("%w: need %s", ErrInsufficientFunds, cost)
	}

	payload := NewGreetingPayload(greeting, c.identity)
	deliveryID, err := c.relay.Dispatch(
		ctx,
		cost,
		targetDomain,
		targetAddress,
		payload.Bytes(),
		uint256.NewInt(0),
		DeliveryGasLimit,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	c.log.Info(
		"dispatched greeting",
		log.Uint16("targetDomain", targetDomain),
		log.Stringer("targetAddress", targetAddress),
		log.Stringer("cost", cost),
		log.Stringer("deliveryID", deliveryID),
	)
	return nil
}
