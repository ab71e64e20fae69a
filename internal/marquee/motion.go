package marquee

// step advances every slide by one frame, in pool order: move the target by
// the current speed, run the position filter, correct wrap-around extremity,
// then write the transform unless the slide is culled.
func (m *Marquee) step() {
	for _, s := range m.slides {
		s.Target += m.speed.Value
		m.ease(s)
		if m.force {
			s.Position = s.Target
		}
		m.wrap(s)
		m.write(s)
	}
}

// ease applies the damped-spring position filter. This is a discrete,
// non-physically-normalized integrator: easing scales the response to the
// target gap, friction multiplicatively decays the velocity each frame.
// With the default constants the filter tracks a moving target closely and
// settles within a couple dozen frames, reading as smooth deceleration and
// acceleration rather than literal spring oscillation.
func (m *Marquee) ease(s *Slide) {
	s.Delta = s.Target - s.Position
	s.Velocity += s.Delta * m.cfg.Easing
	s.Velocity *= m.cfg.Friction
	s.Position += s.Velocity
}

// wrap relocates a slide by exactly one full pool cycle when it exits the
// visible band. Position and target shift together so the filter's gap is
// preserved and the relocation never renders as a jump. The two corrections
// are mutually exclusive per tick: Limits.Max always exceeds any single
// slide's limit.
func (m *Marquee) wrap(s *Slide) {
	switch {
	case s.Position > m.size.Container.Width:
		s.Position -= m.limits.Max
		s.Target -= m.limits.Max
	case s.Position <= -s.Limit:
		s.Position += m.limits.Max
		s.Target += m.limits.Max
	}
}

// write applies the translation transform unless the slide lies outside the
// extended viewport (one element width beyond each container edge). Culling
// only skips the render write; it never touches numeric state. The force
// flag bypasses the cull entirely.
func (m *Marquee) write(s *Slide) {
	lo := m.size.Container.Left - m.size.Element.Width
	hi := m.size.Container.Left + m.size.Container.Width
	if m.force || (s.Position >= lo && s.Position <= hi) {
		m.stage.Transform(s.Node, s.Position)
	}
}
