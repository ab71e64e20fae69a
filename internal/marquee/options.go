// Package marquee implements an infinitely scrolling horizontal band of
// repeated visual elements inside a fixed-width container. Slides translate
// continuously in one direction, wrap seamlessly when they exit the visible
// band, and can accelerate transiently from an external scroll-progress
// signal. Rendering, frame scheduling and value tweening are collaborator
// contracts (Stage, sched.Scheduler, tween.Tweener) so the engine stays
// independent of any particular surface.
package marquee

// Default option values. These match the historical behavior of the band:
// a 30-unit gap, one unit of travel per frame, and a strongly overdamped
// position filter.
const (
	DefaultMargin   = 30.0
	DefaultDelta    = 1.0
	DefaultEasing   = 0.615
	DefaultFriction = 0.59

	// DefaultClassName identifies the template element on the stage.
	DefaultClassName = ".slide"
)

// Marker attribute names recognized on the container. Either marker forces
// the corresponding resolved flag on regardless of the supplied options.
const (
	MarkerDirection = "direction"
	MarkerAutoPlay  = "autoplay"
)

// Options are the caller-supplied overrides for a marquee instance.
type Options struct {
	// Margin is the gap between slide instances.
	Margin float64
	// Hover makes motion apply only while the pointer is over the band.
	Hover bool
	// ClassName selects the repeated template element on stages that
	// address their surface by selector. Stages that own their template
	// node directly (like the terminal band) ignore it; the resolved value
	// is carried so selector-addressed stages stay drop-in.
	ClassName string
	// AutoPlay starts the frame loop during construction.
	AutoPlay bool
	// Delta is the per-frame base speed magnitude.
	Delta float64
	// Easing is the spring stiffness of the position filter.
	Easing float64
	// Friction is the per-frame multiplicative velocity decay.
	Friction float64
	// Direction true means forward: index order grows left to right.
	Direction bool
}

// Config is the resolved configuration. Immutable after Resolve except for
// the derived Direction/AutoPlay flags, which fold in container markers.
type Config struct {
	Margin    float64
	Hover     bool
	ClassName string
	AutoPlay  bool
	Delta     float64
	Easing    float64
	Friction  float64
	Direction bool
}

// Resolve merges user overrides onto the defaults and derives the
// direction/auto-play flags from the container's marker attributes.
//
// The merge is truthy-override: a supplied zero value keeps the default, so
// an explicit 0 or false cannot defeat a non-zero default. This is a known
// quirk kept for compatibility with the band's historical merge rule; callers
// that need a zero margin must express it through the stage geometry instead.
func Resolve(opts Options, stage Stage) Config {
	cfg := Config{
		Margin:    DefaultMargin,
		ClassName: DefaultClassName,
		Delta:     DefaultDelta,
		Easing:    DefaultEasing,
		Friction:  DefaultFriction,
	}
	if opts.Margin != 0 {
		cfg.Margin = opts.Margin
	}
	if opts.ClassName != "" {
		cfg.ClassName = opts.ClassName
	}
	if opts.Delta != 0 {
		cfg.Delta = opts.Delta
	}
	if opts.Easing != 0 {
		cfg.Easing = opts.Easing
	}
	if opts.Friction != 0 {
		cfg.Friction = opts.Friction
	}
	cfg.Hover = opts.Hover

	// A marker on the container forces the flag on; it never forces it off.
	cfg.Direction = opts.Direction || stage.Marker(MarkerDirection)
	cfg.AutoPlay = opts.AutoPlay || stage.Marker(MarkerAutoPlay)

	return cfg
}
