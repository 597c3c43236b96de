// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func TestRelayerAuthorizer(t *testing.T) {
	require := require.New(t)

	_, err := NewRelayerAuthorizer(common.Address{})
	require.ErrorIs(err, ErrInvalidArgument)

	auth, err := NewRelayerAuthorizer(relayerIdentity)
	require.NoError(err)
	require.True(auth.IsAuthorizedDeliverer(relayerIdentity))
	require.False(auth.IsAuthorizedDeliverer(strangerCaller))
	require.False(auth.IsAuthorizedDeliverer(common.Address{}))
}

func TestRelayerSet(t *testing.T) {
	require := require.New(t)

	_, err := NewRelayerSet()
	require.ErrorIs(err, ErrInvalidArgument)

	_, err = NewRelayerSet(relayerIdentity, common.Address{})
	require.ErrorIs(err, ErrInvalidArgument)

	auth, err := NewRelayerSet(relayerIdentity, strangerCaller)
	require.NoError(err)
	require.True(auth.IsAuthorizedDeliverer(relayerIdentity))
	require.True(auth.IsAuthorizedDeliverer(strangerCaller))
	require.False(auth.IsAuthorizedDeliverer(testIdentity))
}

func TestDispatcherRegistration(t *testing.T) {
	require := require.New(t)

	d := NewDispatcher()
	require.NoError(d.Register("a", func(Notification) {}))
	require.ErrorIs(d.Register("a", func(Notification) {}), ErrInvalidArgument)

	d.Deregister("a")
	require.NoError(d.Register("a", func(Notification) {}))
}
