// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func TestGreetingPayloadRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		greeting string
		sender   common.Address
	}{
		{
			name:     "short greeting",
			greeting: "hello",
			sender:   common.HexToAddress("0x0100000000000000000000000000000000000001"),
		},
		{
			name:     "utf8 greeting",
			greeting: "håfa ådai ✈",
			sender:   common.HexToAddress("0xdeadbeef00000000000000000000000000000001"),
		},
		{
			name:     "long greeting",
			greeting: string(make([]byte, 1024)),
			sender:   common.HexToAddress("0x0000000000000000000000000000000000000002"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			p := NewGreetingPayload(tt.greeting, tt.sender)
			b := p.Bytes()
			require.NotEmpty(b)

			parsed, err := ParseGreetingPayload(b)
			require.NoError(err)
			require.Equal(tt.greeting, parsed.Greeting)
			require.Equal(tt.sender, parsed.Sender)
		})
	}
}

func TestParseGreetingPayloadMalformed(t *testing.T) {
	for _, b := range [][]byte{
		nil,
		{},
		{0x01, 0x02, 0x03},
		make([]byte, 64),
	} {
		_, err := ParseGreetingPayload(b)
		require.ErrorIs(t, err, ErrDecode)
	}
}

func TestParseGreetingPayloadEmptyGreeting(t *testing.T) {
	// The empty-text check applies to the send path only; an empty greeting
	// decodes fine.
	sender := common.HexToAddress("0x0100000000000000000000000000000000000001")
	p := NewGreetingPayload("", sender)

	parsed, err := ParseGreetingPayload(p.Bytes())
	require.NoError(t, err)
	require.Empty(t, parsed.Greeting)
	require.Equal(t, sender, parsed.Sender)
}
