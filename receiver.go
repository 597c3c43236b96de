// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"context"
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/greeter/cache"
)

// ReceiverOption configures optional receiver behavior.
type ReceiverOption func(*Receiver)

// WithReplayGuard drops repeat deliveries of the same delivery hash,
// remembering at most capacity recent hashes. The relay service owns
// anti-replay; this client-side guard is off unless set. The guard is
// best-effort: a hash is remembered only after its payload decodes, so two
// concurrent deliveries of the same hash may both apply, racing
// last-write-wins like any other pair of deliveries.
func WithReplayGuard(capacity int) ReceiverOption {
	return func(r *Receiver) {
		r.seen = cache.NewSeenSet[ids.ID](capacity)
	}
}

// Receiver is the delivery callback target. The relay service is the only
// caller allowed through; everything else fails closed before any decode.
type Receiver struct {
	log        log.Logger
	auth       Authorizer
	store      Store
	dispatcher *Dispatcher
	seen       *cache.SeenSet[ids.ID]
}

// NewReceiver returns a receiver gated by auth, applying greetings to store
// and fanning notifications out through dispatcher.
func NewReceiver(
	logger log.Logger,
	auth Authorizer,
	store Store,
	dispatcher *Dispatcher,
	opts ...ReceiverOption,
) (*Receiver, error) {
	if auth == nil {
		return nil, fmt.Errorf("%w: nil authorizer", ErrInvalidArgument)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: nil store", ErrInvalidArgument)
	}
	if dispatcher == nil {
		dispatcher = NewDispatcher()
	}
	r := &Receiver{
		log:        logger,
		auth:       auth,
		store:      store,
		dispatcher: dispatcher,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Dispatcher returns the notification dispatcher for listener registration.
func (r *Receiver) Dispatcher() *Dispatcher {
	return r.dispatcher
}

// Latest returns the most recently applied greeting, or false if none.
func (r *Receiver) Latest() (Received, bool) {
	return r.store.Get()
}

// OnDeliver applies one inbound delivery. caller is the identity invoking the
// callback and must be an authorized deliverer. attachments are reserved for
// future proof material from the relay and are accepted unused. deliveryHash
// identifies the relay's delivery attempt; it is not stored, so repeat
// deliveries overwrite the slot again unless the replay guard is enabled.
// Any failure leaves the store untouched.
func (r *Receiver) OnDeliver(
	_ context.Context,
	caller common.Address,
	payload []byte,
	attachments [][]byte,
	sourceAddress common.Address,
	sourceDomain uint16,
	deliveryHash ids.ID,
) error {
	if !r.auth.IsAuthorizedDeliverer(caller) {
		return fmt.Errorf("%w: %s", ErrUnauthorized, caller)
	}

	if r.seen != nil && r.seen.Contains(deliveryHash) {
		r.log.Debug(
			"dropped replayed delivery",
			log.Stringer("deliveryHash", deliveryHash),
		)
		return nil
	}

	decoded, err := ParseGreetingPayload(payload)
	if err != nil {
		return err
	}

	// Mark the hash only once the delivery has decoded, so a malformed
	// delivery can be retried under the same hash.
	if r.seen != nil {
		r.seen.Add(deliveryHash)
	}

	r.store.Set(Received{
		Greeting:     decoded.Greeting,
		SourceDomain: sourceDomain,
		Sender:       decoded.Sender,
	})
	r.dispatcher.Notify(Notification{
		Greeting:     decoded.Greeting,
		SourceDomain: sourceDomain,
		Sender:       decoded.Sender,
	})

	r.log.Info(
		"received greeting",
		log.Uint16("sourceDomain", sourceDomain),
		log.Stringer("sourceAddress", sourceAddress),
		log.Stringer("sender", decoded.Sender),
		log.Stringer("deliveryHash", deliveryHash),
	)
	return nil
}
