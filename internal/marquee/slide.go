package marquee

// Slide is one rendered instance in the pool. The first slide owns the
// stage's template node; every later slide owns a clone created by the
// layout pass. Pool index order is the only ordering guarantee: insertion
// order equals visual left-to-right order at every wrap phase.
type Slide struct {
	Node NodeID

	// Limit is the slide's wrap pitch: its own width plus the configured
	// margin. Summed over the pool it gives Limits.Max, one full cycle.
	Limit float64

	// Motion state for the damped-spring position filter.
	Position float64
	Target   float64
	Velocity float64
	Delta    float64
}

// SizeSnapshot holds the element and container boxes read in one measure
// pass. It is recomputed atomically before any layout or position
// computation uses it.
type SizeSnapshot struct {
	Element   Box
	Container Box
}

// Box is a rendered box. Left is only meaningful for the container.
type Box struct {
	Width  float64
	Height float64
	Left   float64
}

// Limits caps the wrap correction: Max is the total pitch of one full pool
// cycle, so shifting a slide by Max relocates it exactly one cycle away
// while preserving relative spacing.
type Limits struct {
	Max float64
}
