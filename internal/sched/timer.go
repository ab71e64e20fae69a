package sched

import (
	"sync"
	"time"
)

// DefaultInterval approximates a 60 Hz visual frame cadence.
const DefaultInterval = time.Second / 60

// Timer is a wall-clock scheduler: pending requests fire on a fixed
// interval, delivered sequentially by a single dispatch goroutine so hosts
// without their own event loop keep the engine's cooperative model.
type Timer struct {
	mu      sync.Mutex
	next    Token
	pending map[Token]func()
	order   []Token

	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewTimer starts the dispatch goroutine. Stop must be called to release it.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Timer{
		pending:  make(map[Token]func()),
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go t.loop()
	return t
}

// Request registers fn for the next timer frame.
func (t *Timer) Request(fn func()) Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	tok := t.next
	t.pending[tok] = fn
	t.order = append(t.order, tok)
	return tok
}

// Cancel drops a pending request.
func (t *Timer) Cancel(tok Token) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, tok)
}

// Stop shuts the dispatch goroutine down and drops pending requests.
// Idempotent.
func (t *Timer) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopCh)
		<-t.doneCh
	})
}

func (t *Timer) loop() {
	defer close(t.doneCh)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case <-ticker.C:
			t.flush()
		}
	}
}

// flush runs the requests pending at tick time, in request order. Requests
// made by a running callback land in the next tick.
func (t *Timer) flush() {
	t.mu.Lock()
	order := t.order
	pending := t.pending
	t.order = nil
	t.pending = make(map[Token]func())
	t.mu.Unlock()

	for _, tok := range order {
		if fn, ok := pending[tok]; ok {
			fn()
		}
	}
}
