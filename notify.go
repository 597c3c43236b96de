// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package greeter

import (
	"fmt"
	"sync"

	"github.com/luxfi/geth/common"
)

// Notification describes one successfully received greeting.
type Notification struct {
	Greeting     string
	SourceDomain uint16
	Sender       common.Address
}

// Listener observes greeting notifications. Listeners run synchronously on
// the receive path and must not block.
type Listener func(Notification)

// Dispatcher fans a notification out to named listeners.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[string]Listener
}

// NewDispatcher returns a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[string]Listener)}
}

// Register adds a listener under name. Registering an existing name is an
// error; deregister it first.
func (d *Dispatcher) Register(name string, l Listener) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.listeners[name]; ok {
		return fmt.Errorf("%w: listener %q already registered", ErrInvalidArgument, name)
	}
	d.listeners[name] = l
	return nil
}

// Deregister removes the listener under name, if any.
func (d *Dispatcher) Deregister(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.listeners, name)
}

// Notify delivers n to every registered listener.
func (d *Dispatcher) Notify(n Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, l := range d.listeners {
		l(n)
	}
}
