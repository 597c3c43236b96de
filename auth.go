// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/math/set"
)

// Authorizer decides whether a caller may invoke the delivery entry point.
// Test doubles and alternate relay deployments substitute their own.
type Authorizer interface {
	IsAuthorizedDeliverer(caller common.Address) bool
}

// RelayerAuthorizer trusts exactly one relay service identity.
type RelayerAuthorizer struct {
	relayer common.Address
}

// NewRelayerAuthorizer returns an authorizer for the given relay identity.
// A zero identity is a configuration error.
func NewRelayerAuthorizer(relayer common.Address) (*RelayerAuthorizer, error) {
	if relayer == (common.Address{}) {
		return nil, fmt.Errorf("%w: zero relayer address", ErrInvalidArgument)
	}
	return &RelayerAuthorizer{relayer: relayer}, nil
}

// IsAuthorizedDeliverer reports whether caller is the configured relay.
func (a *RelayerAuthorizer) IsAuthorizedDeliverer(caller common.Address) bool {
	return caller == a.relayer
}

// RelayerSet trusts any of a set of relay identities, for deployments that
// run redundant relayers.
type RelayerSet struct {
	relayers set.Set[common.Address]
}

// NewRelayerSet returns an authorizer over the given identities. At least one
// non-zero identity is required.
func NewRelayerSet(relayers ...common.Address) (*RelayerSet, error) {
	s := set.NewSet[common.Address](len(relayers))
	for _, r := range relayers {
		if r == (common.Address{}) {
			return nil, fmt.Errorf("%w: zero relayer address", ErrInvalidArgument)
		}
		s.Add(r)
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("%w: no relayer addresses", ErrInvalidArgument)
	}
	return &RelayerSet{relayers: s}, nil
}

// IsAuthorizedDeliverer reports whether caller is one of the configured relays.
func (a *RelayerSet) IsAuthorizedDeliverer(caller common.Address) bool {
	return a.relayers.Contains(caller)
}
