// Package changefeed provides the change event plumbing behind listing sync:
// an in-process bus plus optional remote publishers that fan committed writes
// out to other instances.
package changefeed

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"borgo/internal/domain/service"
)

// LocalBus is the in-process change broker. Repositories publish into it and
// the sync service subscribes to it; remote deliveries are republished into
// the same bus so subscribers see one uniform stream.
//
// Fan-out is synchronous. Subscriber callbacks must not block; the sync
// service hands events off to its own goroutine.
type LocalBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*localSubscription
	logger *slog.Logger
}

type localSubscription struct {
	id     int
	tables []string
	fn     func(*service.ChangeEvent)
	bus    *LocalBus
}

// NewLocalBus creates a new in-process change bus.
func NewLocalBus(logger *slog.Logger) *LocalBus {
	return &LocalBus{
		subs:   make(map[int]*localSubscription),
		logger: logger,
	}
}

// Subscribe registers fn for events on any of the given tables.
func (b *LocalBus) Subscribe(tables []string, fn func(*service.ChangeEvent)) service.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &localSubscription{
		id:     b.nextID,
		tables: slices.Clone(tables),
		fn:     fn,
		bus:    b,
	}
	b.subs[sub.id] = sub

	return sub
}

// Unsubscribe removes the subscription from the bus. No callback fires after
// it returns; fan-out holds the lock for the duration of delivery.
func (s *localSubscription) Unsubscribe() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	delete(s.bus.subs, s.id)
}

// PublishChange delivers the event to every subscription watching its table.
func (b *LocalBus) PublishChange(_ context.Context, event *service.ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if slices.Contains(sub.tables, event.Table) {
			sub.fn(event)
		}
	}

	return nil
}

// Close drops all subscriptions.
func (b *LocalBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.subs)

	return nil
}
