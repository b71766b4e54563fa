// Package live implements the real-time subscription primitive: a listener
// registry keyed by group, fed by the ledger after every committed change.
package live

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/Denniskaninu/chama-smart-sync/internal/metrics"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
)

// DefaultBuffer is the per-subscriber channel capacity used when none is given.
const DefaultBuffer = 32

// ErrLagged is reported by a subscription that was closed because it fell
// a full buffer behind. Its listener has missed events and must resync.
var ErrLagged = errors.New("live: subscriber fell behind")

// Kind names the collection an event originated from.
type Kind string

const (
	KindGroup        Kind = "group"
	KindContribution Kind = "contribution"
	KindLoan         Kind = "loan"
	KindMessage      Kind = "message"
	KindReceipt      Kind = "receipt"
)

// Event is a committed change to a group or one of its collections.
//
// Group is set whenever the change touched the group document. A
// contribution event carries both the new group snapshot and the
// contribution, so subscribers never observe one without the other.
type Event struct {
	Kind    Kind
	GroupID string

	Group        *models.Group
	Contribution *models.Contribution
	Loan         *models.Loan
	Message      *models.Message
	Receipt      *models.Receipt
}

// Hub fans events out to subscribers of a group.
// The zero value is not usable; create one with NewHub.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Subscription]struct{}
	buffer int
}

// NewHub creates a hub whose subscribers buffer up to buffer events.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		topics: make(map[string]map[*Subscription]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a listener for groupID. The subscription is closed
// when ctx is done or Close is called, whichever comes first.
func (h *Hub) Subscribe(ctx context.Context, groupID string) *Subscription {
	sub := &Subscription{
		hub:     h,
		groupID: groupID,
		events:  make(chan Event, h.buffer),
		done:    make(chan struct{}),
	}

	h.mu.Lock()
	subs, ok := h.topics[groupID]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.topics[groupID] = subs
	}
	subs[sub] = struct{}{}
	h.mu.Unlock()
	metrics.LiveSubscribers.Inc()

	go func() {
		select {
		case <-ctx.Done():
			sub.Close()
		case <-sub.done:
		}
	}()

	return sub
}

// Publish delivers ev to every current subscriber of ev.GroupID without
// blocking. A subscriber whose buffer is full is closed with ErrLagged
// instead of silently missing the event.
func (h *Hub) Publish(ev Event) {
	var lagged []*Subscription

	h.mu.RLock()
	for sub := range h.topics[ev.GroupID] {
		select {
		case sub.events <- ev:
		default:
			lagged = append(lagged, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range lagged {
		if sub.lagged.CompareAndSwap(false, true) {
			metrics.LiveSubscribersLagged.Inc()
			slog.Warn("live subscriber buffer full, closing subscription",
				"group_id", ev.GroupID,
				"kind", ev.Kind,
			)
		}
		sub.Close()
	}
}

// Subscribers returns the number of open subscriptions for groupID.
func (h *Hub) Subscribers(groupID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[groupID])
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.topics[sub.groupID]
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.topics, sub.groupID)
	}
	// Closed under the write lock so Publish never sends on a closed channel.
	close(sub.events)
	metrics.LiveSubscribers.Dec()
}

// Subscription is a registered listener.
type Subscription struct {
	hub     *Hub
	groupID string
	events  chan Event
	done    chan struct{}
	once    sync.Once
	lagged  atomic.Bool
}

// Events returns the delivery channel. It is closed after Close, or when
// the subscriber falls behind; events buffered before that stay readable.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Err returns ErrLagged once the hub has closed the subscription for falling
// behind, and nil otherwise.
func (s *Subscription) Err() error {
	if s.lagged.Load() {
		return ErrLagged
	}
	return nil
}

// Done is closed once the subscription has been torn down.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close unregisters the listener. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.done)
	})
}
