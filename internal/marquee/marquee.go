package marquee

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marquee/internal/sched"
	"marquee/internal/tween"
	"marquee/internal/ux"
)

// resizeQuiet is the trailing-edge quiet period for resize notifications.
const resizeQuiet = 300 * time.Millisecond

// Marquee drives one scrolling band. All state is mutated from the frame
// loop's execution context: the scheduler delivers callbacks one at a time,
// and the resize debouncer re-enters through the scheduler, so no locking
// is needed inside the engine.
type Marquee struct {
	stage Stage
	sched sched.Scheduler
	tween tween.Tweener
	log   *zap.Logger

	cfg    Config
	size   SizeSnapshot
	slides []*Slide
	limits Limits

	speed        SpeedState
	lastProgress float64

	// Playback state machine (see playback.go).
	running  bool
	animate  bool
	frameTok sched.Token

	// force snaps positions to targets and bypasses the cull; used only
	// during seek/reset operations.
	force bool

	resize    *ux.Debouncer
	destroyed bool
}

// New resolves the options against the stage, performs the initial layout
// and, when the resolved configuration asks for it, starts the frame loop.
// A nil logger disables engine logging.
func New(stage Stage, scheduler sched.Scheduler, tweener tween.Tweener, opts Options, logger *zap.Logger) *Marquee {
	return newWithConfig(stage, scheduler, tweener, Resolve(opts, stage), logger)
}

func newWithConfig(stage Stage, scheduler sched.Scheduler, tweener tween.Tweener, cfg Config, logger *zap.Logger) *Marquee {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Marquee{
		stage:   stage,
		sched:   scheduler,
		tween:   tweener,
		cfg:     cfg,
		animate: true,
		resize:  ux.NewDebouncer(resizeQuiet),
	}
	m.log = logger.Named("marquee").With(zap.String("instance", uuid.NewString()[:8]))

	init := cfg.Delta
	if cfg.Direction {
		init = -cfg.Delta
	}
	m.speed = SpeedState{Init: init, Value: init}

	// The first slide owns the template node; the layout pass clones the
	// rest of the pool.
	m.slides = []*Slide{{Node: stage.Template()}}
	m.onResize()

	if cfg.AutoPlay {
		m.toggle(true)
	}
	return m
}

// Config returns the resolved configuration.
func (m *Marquee) Config() Config {
	return m.cfg
}

// Speed returns the current speed state.
func (m *Marquee) Speed() SpeedState {
	return m.speed
}

// Slides returns the live pool size.
func (m *Marquee) Slides() int {
	return len(m.slides)
}

// NotifyResize rate-limits host resize notifications: the full layout
// sequence runs once the notifier has been quiet for the debounce period.
// The relayout is funneled back through the scheduler so it executes in the
// same context as frame callbacks.
func (m *Marquee) NotifyResize() {
	if m.destroyed {
		return
	}
	m.resize.Call(func() {
		m.sched.Request(func() {
			if m.destroyed {
				return
			}
			m.onResize()
		})
	})
}

// Destroy stops the loop, cancels any pending resize and relax tween, and
// detaches the instance. Idempotent: destroying twice, or destroying a
// paused instance, is a no-op the second time around.
func (m *Marquee) Destroy() {
	if m.destroyed {
		return
	}
	m.toggle(false)
	m.resize.Cancel()
	m.tween.Kill(&m.speed.Value)
	m.destroyed = true
	m.log.Debug("destroyed")
}
