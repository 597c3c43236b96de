// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"context"
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

var (
	testIdentity = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testTarget   = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

func TestNewClientZeroIdentity(t *testing.T) {
	_, err := NewClient(log.NoLog{}, NewFakeRelay(100), common.Address{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSendGreetingValidation(t *testing.T) {
	tests := []struct {
		name     string
		target   common.Address
		greeting string
		funds    *uint256.Int
		wantErr  error
	}{
		{
			name:     "zero target address",
			target:   common.Address{},
			greeting: "hello",
			funds:    uint256.NewInt(1000),
			wantErr:  ErrInvalidArgument,
		},
		{
			name:     "zero target wins over empty message",
			target:   common.Address{},
			greeting: "",
			funds:    uint256.NewInt(1000),
			wantErr:  ErrInvalidArgument,
		},
		{
			name:     "empty message with sufficient funds",
			target:   testTarget,
			greeting: "",
			funds:    uint256.NewInt(1000),
			wantErr:  ErrInvalidArgument,
		},
		{
			name:     "insufficient funds",
			target:   testTarget,
			greeting: "hello",
			funds:    uint256.NewInt(99),
			wantErr:  ErrInsufficientFunds,
		},
		{
			name:     "nil funds",
			target:   testTarget,
			greeting: "hello",
			funds:    nil,
			wantErr:  ErrInsufficientFunds,
		},
		{
			name:     "exact funds succeed",
			target:   testTarget,
			greeting: "hello",
			funds:    uint256.NewInt(100),
		},
		{
			name:     "surplus funds succeed",
			target:   testTarget,
			greeting: "hello",
			funds:    uint256.NewInt(101),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			relay := NewFakeRelay(100)
			client, err := NewClient(log.NoLog{}, relay, testIdentity)
			require.NoError(err)

			err = client.SendGreeting(context.Background(), 5, tt.target, tt.greeting, tt.funds)
			if tt.wantErr != nil {
				require.ErrorIs(err, tt.wantErr)
				require.Empty(relay.Dispatched())
				return
			}
			require.NoError(err)
			require.Len(relay.Dispatched(), 1)
		})
	}
}

func TestSendGreetingDispatchShape(t *testing.T) {
	require := require.New(t)

	relay := NewFakeRelay(250)
	client, err := NewClient(log.NoLog{}, relay, testIdentity)
	require.NoError(err)

	require.NoError(client.SendGreeting(context.Background(), 7, testTarget, "hola", uint256.NewInt(500)))

	dispatched := relay.Dispatched()
	require.Len(dispatched, 1)
	d := dispatched[0]

	// Exactly the quoted cost is forwarded, with the same execution budget
	// used for the quote.
	require.Equal(uint256.NewInt(250), d.Value)
	require.Equal(uint16(7), d.TargetDomain)
	require.Equal(testTarget, d.Target)
	require.Equal(DeliveryGasLimit, d.GasLimit)

	decoded, err := ParseGreetingPayload(d.Payload)
	require.NoError(err)
	require.Equal("hola", decoded.Greeting)
	require.Equal(testIdentity, decoded.Sender)
}

func TestSendGreetingUpstreamErrors(t *testing.T) {
	require := require.New(t)
	boom := errors.New("unknown domain")

	relay := NewFakeRelay(100)
	relay.QuoteErr = boom
	client, err := NewClient(log.NoLog{}, relay, testIdentity)
	require.NoError(err)

	err = client.SendGreeting(context.Background(), 5, testTarget, "hello", uint256.NewInt(1000))
	require.ErrorIs(err, ErrUpstream)
	// The relay's own error stays reachable in the chain.
	require.ErrorIs(err, boom)

	relay.QuoteErr = nil
	relay.DispatchErr = boom
	err = client.SendGreeting(context.Background(), 5, testTarget, "hello", uint256.NewInt(1000))
	require.ErrorIs(err, ErrUpstream)
}

func TestQuoteIsFreshPerCall(t *testing.T) {
	require := require.New(t)

	relay := NewFakeRelay(100)
	client, err := NewClient(log.NoLog{}, relay, testIdentity)
	require.NoError(err)

	cost, err := client.Quote(context.Background(), 5)
	require.NoError(err)
	require.Equal(uint256.NewInt(100), cost)

	// Reprice; the next send must use the new quote, not the old one.
	relay.Price = uint256.NewInt(400)
	err = client.SendGreeting(context.Background(), 5, testTarget, "hello", uint256.NewInt(100))
	require.ErrorIs(err, ErrInsufficientFunds)

	require.NoError(client.SendGreeting(context.Background(), 5, testTarget, "hello", uint256.NewInt(400)))
	require.Equal(uint256.NewInt(400), relay.Dispatched()[0].Value)
}
