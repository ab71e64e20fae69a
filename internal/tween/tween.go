// Package tween provides the value-animation facility the marquee engine
// uses for its speed relax: cancel every pending animation for a target, or
// drive a target toward a value over a fixed duration.
package tween

import (
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"marquee/internal/sched"
)

// Tweener is the contract the engine depends on.
type Tweener interface {
	// Kill cancels any pending animation targeting the value.
	Kill(target *float64)

	// To animates the target toward value over the given duration in
	// seconds. A non-positive duration assigns immediately.
	To(target *float64, value float64, seconds float64)
}

// Runner animates float64 targets with gween easing curves. It owns its own
// frame subscription on the shared scheduler and stops scheduling as soon as
// no tween is active, so an idle runner costs nothing.
type Runner struct {
	mu        sync.Mutex
	sched     sched.Scheduler
	dt        float32
	active    map[*float64]*gween.Tween
	tok       sched.Token
	scheduled bool
}

// NewRunner creates a runner stepped at the given frame interval.
func NewRunner(scheduler sched.Scheduler, frameInterval time.Duration) *Runner {
	if frameInterval <= 0 {
		frameInterval = sched.DefaultInterval
	}
	return &Runner{
		sched:  scheduler,
		dt:     float32(frameInterval.Seconds()),
		active: make(map[*float64]*gween.Tween),
	}
}

// To replaces any animation on the target with one toward value.
func (r *Runner) To(target *float64, value float64, seconds float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seconds <= 0 {
		delete(r.active, target)
		*target = value
		return
	}
	r.active[target] = gween.New(float32(*target), float32(value), float32(seconds), ease.OutQuad)
	if !r.scheduled {
		r.scheduled = true
		r.tok = r.sched.Request(r.frame)
	}
}

// Kill cancels the animation on the target, leaving its current value.
func (r *Runner) Kill(target *float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, target)
}

// Active reports how many tweens are in flight.
func (r *Runner) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// Stop cancels the frame subscription and drops every active tween.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.scheduled {
		r.sched.Cancel(r.tok)
		r.scheduled = false
	}
	r.active = make(map[*float64]*gween.Tween)
}

// frame advances every active tween by one interval and re-requests itself
// while any remain.
func (r *Runner) frame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for target, tw := range r.active {
		v, done := tw.Update(r.dt)
		*target = float64(v)
		if done {
			delete(r.active, target)
		}
	}
	if len(r.active) > 0 {
		r.tok = r.sched.Request(r.frame)
	} else {
		r.scheduled = false
	}
}
