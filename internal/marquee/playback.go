package marquee

// The playback controller is a two-level state machine. The outer level is
// the frame subscription: Idle (no pending request) or Running (a request is
// always pending). The orthogonal animate flag decides whether a given tick
// applies motion at all. Keeping the two independent is deliberate: a hover
// pause leaves the loop subscribed, so motion resumes instantly on re-enter
// instead of restarting the loop.

// toggle transitions the loop between Idle and Running. It is a no-op when
// the requested state already holds. Entering Running invokes one frame
// synchronously to begin the self-rescheduling chain; entering Idle cancels
// the pending request.
func (m *Marquee) toggle(run bool) {
	if m.running == run {
		return
	}
	m.running = run
	if run {
		m.log.Debug("playback running")
		m.frame()
		return
	}
	m.sched.Cancel(m.frameTok)
	m.log.Debug("playback idle")
}

// frame is the per-tick callback. The next frame is re-requested
// unconditionally so the subscription stays alive across hover pauses.
func (m *Marquee) frame() {
	if m.animate {
		m.step()
	}
	m.frameTok = m.sched.Request(m.frame)
}

// Play starts the frame loop. No-op while already running or after Destroy.
func (m *Marquee) Play() {
	if m.destroyed {
		return
	}
	m.toggle(true)
}

// Pause stops the frame loop. No-op while idle or after Destroy.
func (m *Marquee) Pause() {
	if m.destroyed {
		return
	}
	m.toggle(false)
}

// Running reports whether the frame loop is subscribed.
func (m *Marquee) Running() bool {
	return m.running
}

// Animating reports whether motion applies on the current ticks.
func (m *Marquee) Animating() bool {
	return m.animate
}

// PointerEnter applies motion on the next ticks. It only takes effect when
// hover behavior is configured and the loop is already running.
func (m *Marquee) PointerEnter() {
	if m.destroyed || !m.cfg.Hover || !m.running {
		return
	}
	m.animate = true
}

// PointerLeave suspends motion without touching the frame subscription.
func (m *Marquee) PointerLeave() {
	if m.destroyed || !m.cfg.Hover || !m.running {
		return
	}
	m.animate = false
}
