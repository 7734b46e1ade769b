package events

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Bus distributes pipeline events to subscribers with filtering support.
//
// Thread safety:
//   - All methods are safe for concurrent use
//   - Publish never blocks on slow subscribers; events are dropped for a
//     subscriber whose buffer is full, without affecting other subscribers
type Bus interface {
	// Publish sends an event to all matching subscribers.
	// Returns an error only if the bus is closed.
	Publish(ctx context.Context, event Event) error

	// Subscribe creates a subscription with optional filtering.
	// bufferSize 0 selects the default buffer size. The returned cleanup
	// function must be called to release the subscription.
	Subscribe(ctx context.Context, filter Filter, bufferSize int) (<-chan Event, func())

	// Close shuts down the bus and all subscriptions.
	Close() error
}

// DropHandler is invoked when an event is dropped for a slow subscriber.
type DropHandler func(event Event, subscriberID string)

// busOptions holds configuration for DefaultBus.
type busOptions struct {
	defaultBufferSize int
	dropHandler       DropHandler
}

// Option is a functional option for configuring DefaultBus.
type Option func(*busOptions)

// WithDefaultBufferSize sets the buffer size used when Subscribe is called
// with bufferSize 0. Default: 64 events.
func WithDefaultBufferSize(size int) Option {
	return func(opts *busOptions) {
		if size > 0 {
			opts.defaultBufferSize = size
		}
	}
}

// WithDropHandler sets a callback invoked for each dropped event.
// Default: drops are silent.
func WithDropHandler(handler DropHandler) Option {
	return func(opts *busOptions) {
		if handler != nil {
			opts.dropHandler = handler
		}
	}
}

// DefaultBus implements Bus with buffered subscriber channels and
// non-blocking sends.
type DefaultBus struct {
	mu          sync.RWMutex
	subscribers map[string]*subscription
	options     *busOptions
	closed      bool
}

type subscription struct {
	id      string
	ch      chan Event
	filter  Filter
	ctx     context.Context
	cancel  context.CancelFunc
	dropped atomic.Int64
}

// NewBus creates a DefaultBus with the given options.
func NewBus(opts ...Option) *DefaultBus {
	options := &busOptions{
		defaultBufferSize: 64,
		dropHandler:       func(Event, string) {},
	}

	for _, opt := range opts {
		opt(options)
	}

	return &DefaultBus{
		subscribers: make(map[string]*subscription),
		options:     options,
	}
}

// Publish sends an event to all subscribers whose filters match.
// A subscriber with a full buffer has the event dropped rather than
// blocking the publisher.
func (b *DefaultBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return fmt.Errorf("event bus is closed")
	}

	for _, sub := range b.subscribers {
		select {
		case <-sub.ctx.Done():
			// Subscriber context cancelled; cleanup happens on unsubscribe.
			continue
		default:
		}

		if !sub.filter.Matches(event) {
			continue
		}

		select {
		case sub.ch <- event:
		case <-ctx.Done():
			return ctx.Err()
		default:
			sub.dropped.Add(1)
			b.options.dropHandler(event, sub.id)
		}
	}

	return nil
}

// Subscribe registers a new subscriber. The returned channel receives
// matching events until cleanup is called or the bus closes.
func (b *DefaultBus) Subscribe(ctx context.Context, filter Filter, bufferSize int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if bufferSize <= 0 {
		bufferSize = b.options.defaultBufferSize
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		id:     nextSubscriberID(),
		ch:     make(chan Event, bufferSize),
		filter: filter,
		ctx:    subCtx,
		cancel: cancel,
	}

	b.subscribers[sub.id] = sub

	cleanup := func() {
		b.unsubscribe(sub.id)
	}

	return sub.ch, cleanup
}

func (b *DefaultBus) unsubscribe(subscriberID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, exists := b.subscribers[subscriberID]
	if !exists {
		return
	}

	sub.cancel()
	close(sub.ch)
	delete(b.subscribers, subscriberID)
}

// Close shuts down the bus and closes all subscriber channels.
// Close is idempotent.
func (b *DefaultBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for id, sub := range b.subscribers {
		sub.cancel()
		close(sub.ch)
		delete(b.subscribers, id)
	}

	return nil
}

// SubscriberCount returns the current number of active subscribers.
func (b *DefaultBus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

var subscriberCounter atomic.Uint64

func nextSubscriberID() string {
	return fmt.Sprintf("sub-%d-%d", time.Now().UnixNano(), subscriberCounter.Add(1))
}

var _ Bus = (*DefaultBus)(nil)
