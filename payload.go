// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/rlp"
)

// GreetingPayload is the wire form of a cross-domain greeting. It is a
// self-describing two-field tuple (length-prefixed string + fixed-width
// address) so it can ride the relay service's generic byte-payload transport.
// It carries no version tag; format changes are breaking.
type GreetingPayload struct {
	Greeting string         `serialize:"true"`
	Sender   common.Address `serialize:"true"`
}

// NewGreetingPayload creates a payload for the given greeting and sender.
func NewGreetingPayload(greeting string, sender common.Address) *GreetingPayload {
	return &GreetingPayload{
		Greeting: greeting,
		Sender:   sender,
	}
}

// Bytes returns the RLP encoding of the payload.
func (p *GreetingPayload) Bytes() []byte {
	b, _ := rlp.EncodeToBytes(p)
	return b
}

// ParseGreetingPayload decodes a payload from bytes. The greeting is not
// empty-checked here; only the send path enforces non-empty text.
func ParseGreetingPayload(b []byte) (*GreetingPayload, error) {
	p := &GreetingPayload{}
	if err := rlp.DecodeBytes(b, p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return p, nil
}
