// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import "errors"

var (
	// ErrInvalidArgument is returned for bad construction or send parameters
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientFunds is returned when the funds provided for a send are
	// below the quoted delivery cost
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnauthorized is returned when a delivery originates from a caller
	// other than the configured relay service
	ErrUnauthorized = errors.New("unauthorized deliverer")

	// ErrDecode is returned when an inbound payload does not match the
	// expected greeting tuple layout
	ErrDecode = errors.New("malformed payload")

	// ErrUpstream wraps opaque failures from the relay service's pricing or
	// dispatch calls
	ErrUpstream = errors.New("relay service error")
)
