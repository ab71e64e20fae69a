package sched

import "sync"

// Manual is a scheduler whose frames fire only when the owner calls Flush.
// It backs deterministic tests and cooperative hosts (a TUI event loop that
// flushes once per animation tick). Safe for concurrent Request/Cancel; the
// callbacks themselves run on the flushing goroutine.
type Manual struct {
	mu      sync.Mutex
	next    Token
	pending map[Token]func()
	order   []Token
}

// NewManual creates an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{pending: make(map[Token]func())}
}

// Request registers fn for the next flush.
func (s *Manual) Request(fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	tok := s.next
	s.pending[tok] = fn
	s.order = append(s.order, tok)
	return tok
}

// Cancel drops a pending request.
func (s *Manual) Cancel(tok Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, tok)
}

// Pending reports how many requests are waiting.
func (s *Manual) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush runs every callback pending at call time, in request order, and
// returns how many ran. Callbacks requested during the flush wait for the
// next one — that is what makes a self-rescheduling loop advance exactly
// one frame per flush.
func (s *Manual) Flush() int {
	s.mu.Lock()
	order := s.order
	pending := s.pending
	s.order = nil
	s.pending = make(map[Token]func())
	s.mu.Unlock()

	ran := 0
	for _, tok := range order {
		if fn, ok := pending[tok]; ok {
			fn()
			ran++
		}
	}
	return ran
}
