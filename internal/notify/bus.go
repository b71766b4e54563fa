// Package notify is the error side-channel: rejected writes are published
// here so presentation layers (logs, metrics, toasts on a client) can report
// them without the ledger knowing who listens.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Notice describes a write the store refused.
type Notice struct {
	Procedure string
	UserID    string
	Path      string
	Operation string
	Payload   map[string]any
	Message   string
	At        time.Time
}

// HandlerFunc receives notices. Handlers run synchronously in Emit and must
// not block.
type HandlerFunc func(ctx context.Context, n Notice)

// Bus is an in-memory publish/subscribe registry for notices.
type Bus struct {
	mu       sync.RWMutex
	handlers map[int]HandlerFunc
	next     int
	logger   *slog.Logger
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[int]HandlerFunc),
		logger:   logger.With("bus", "notify"),
	}
}

// Register adds a handler and returns a function that removes it.
func (b *Bus) Register(h HandlerFunc) (unregister func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.handlers[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// Emit delivers n to every registered handler.
func (b *Bus) Emit(ctx context.Context, n Notice) {
	if n.At.IsZero() {
		n.At = time.Now()
	}

	b.mu.RLock()
	handlers := make([]HandlerFunc, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("notice emitted with no handlers", "path", n.Path, "operation", n.Operation)
		return
	}
	for _, h := range handlers {
		h(ctx, n)
	}
}
