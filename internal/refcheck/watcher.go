package refcheck

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is how long input must be stable before it is checked.
const DefaultDebounce = 500 * time.Millisecond

// Watcher checks a reference that is still being edited. Each Update
// restarts the debounce timer and cancels any classification in flight for
// earlier input, whose result is discarded. Only the latest input's result
// is ever delivered.
type Watcher struct {
	checker *Checker
	delay   time.Duration
	results chan Result

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that debounces input by delay.
func NewWatcher(checker *Checker, delay time.Duration) *Watcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Watcher{
		checker: checker,
		delay:   delay,
		results: make(chan Result, 1),
	}
}

// Results delivers the outcome for the most recent input. If the reader
// falls behind, an undelivered older result is replaced. The channel is
// closed by Close.
func (w *Watcher) Results() <-chan Result {
	return w.results
}

// Update replaces the watched input.
func (w *Watcher) Update(ref string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	w.gen++
	gen := w.gen
	w.stopLocked()
	w.timer = time.AfterFunc(w.delay, func() { w.fire(gen, ref) })
}

func (w *Watcher) fire(gen uint64, ref string) {
	w.mu.Lock()
	if w.closed || gen != w.gen {
		w.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		defer cancel()

		res := w.checker.Check(ctx, ref)

		w.mu.Lock()
		defer w.mu.Unlock()
		if w.closed || gen != w.gen || ctx.Err() != nil {
			return
		}
		select {
		case <-w.results:
		default:
		}
		w.results <- res
	}()
}

// stopLocked drops the pending timer and the in-flight check.
func (w *Watcher) stopLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

// Close cancels pending work. No result is delivered after Close returns.
func (w *Watcher) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.stopLocked()
	w.mu.Unlock()

	w.wg.Wait()
	close(w.results)
}
