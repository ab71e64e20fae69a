package marquee

import (
	"math"

	"go.uber.org/zap"
)

// measure reads the template and container boxes into a fresh snapshot and
// sizes the container to hug the element.
func (m *Marquee) measure() {
	ew, eh := m.stage.ElementSize()
	cw, left := m.stage.ContainerSize()
	m.size = SizeSnapshot{
		Element:   Box{Width: ew, Height: eh},
		Container: Box{Width: cw, Left: left},
	}
	m.stage.SetContainerHeight(eh)
}

// pitch is one slide's wrap period: element width plus margin.
func (m *Marquee) pitch() float64 {
	return m.size.Element.Width + m.cfg.Margin
}

// coverage is the width the pool must span: the container plus one extra
// element width, so a slide leaving one edge is always already replaced.
func (m *Marquee) coverage() float64 {
	return m.size.Container.Width + m.size.Element.Width
}

// resizePool shrinks then grows the slide pool until it covers the band with
// no gap and no more than one spare slide. The template-owning slide at
// index 0 is never removed.
func (m *Marquee) resizePool() {
	pitch := m.pitch()
	coverage := m.coverage()

	for _, s := range m.slides {
		s.Limit = pitch
	}

	total := pitch * float64(len(m.slides))
	for len(m.slides) > 1 && total-pitch >= coverage {
		last := m.slides[len(m.slides)-1]
		m.stage.Remove(last.Node)
		m.slides = m.slides[:len(m.slides)-1]
		total -= pitch
	}

	if pitch <= 0 {
		// Degenerate measurement: the cover invariant is vacuous, keep the
		// minimal pool rather than fault.
		return
	}

	if shortfall := coverage - total; shortfall > 0 {
		n := int(math.Ceil(shortfall / pitch))
		for i := 0; i < n; i++ {
			m.slides = append(m.slides, &Slide{Node: m.stage.Clone(), Limit: pitch})
		}
	}
}

// resetPositions recomputes the full cycle length and assigns every slide an
// evenly spaced starting position. Forward direction walks up from zero;
// reverse walks down from the container width, decrementing before placing
// so slides are laid left of the starting edge. Velocity and filter delta
// reset to zero, and every transform is written immediately, bypassing the
// viewport cull, so the initial layout is never an empty frame.
func (m *Marquee) resetPositions() {
	max := 0.0
	for _, s := range m.slides {
		max += s.Limit
	}
	m.limits.Max = max

	x := 0.0
	if !m.cfg.Direction {
		x = m.size.Container.Width
	}
	for _, s := range m.slides {
		if m.cfg.Direction {
			s.Position = x
			s.Target = x
			x += s.Limit
		} else {
			x -= s.Limit
			s.Position = x
			s.Target = x
		}
		s.Velocity = 0
		s.Delta = 0
		m.stage.Transform(s.Node, s.Position)
	}
}

// onResize runs the full layout sequence. Each step depends on the snapshot
// and pool state left by the previous one; the speed reset at the end is
// non-animated so a relayout never fights an in-flight relax tween.
func (m *Marquee) onResize() {
	m.measure()
	m.resizePool()
	m.resetPositions()
	m.resetSpeed(false)

	m.log.Debug("layout pass",
		zap.Int("slides", len(m.slides)),
		zap.Float64("cycle", m.limits.Max),
		zap.Float64("container", m.size.Container.Width),
		zap.Float64("element", m.size.Element.Width),
	)
}
