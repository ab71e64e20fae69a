package marquee

import "math"

// SpeedState is the shared speed scalar. Init is the signed baseline fixed
// at construction; Value is the live, possibly-boosted speed the motion
// engine consumes every frame.
type SpeedState struct {
	Init  float64
	Value float64
}

// relaxSeconds is the fixed duration of the animated settle back to the
// baseline speed after a progress-driven boost.
const relaxSeconds = 0.3

// UpdateSpeed derives a transient boost from an externally supplied scroll
// progress value (0..1). Any in-flight relax tween on the speed value is
// cancelled first so two relax animations never fight over the same scalar.
// With resetAfter set, the relax starts immediately after the boost.
func (m *Marquee) UpdateSpeed(progress float64, resetAfter bool) {
	if m.destroyed {
		return
	}
	m.tween.Kill(&m.speed.Value)

	boost := m.cfg.Delta + math.Abs(m.lastProgress-progress)*100*2
	if m.cfg.Direction {
		m.speed.Value = -boost
	} else {
		m.speed.Value = boost
	}
	m.lastProgress = progress

	if resetAfter {
		m.resetSpeed(true)
	}
}

// resetSpeed relaxes the live speed back to the baseline: animated over a
// fixed duration after a boost, immediate on layout recomputation.
func (m *Marquee) resetSpeed(animated bool) {
	if animated {
		m.tween.To(&m.speed.Value, m.speed.Init, relaxSeconds)
		return
	}
	m.tween.Kill(&m.speed.Value)
	m.speed.Value = m.speed.Init
}
