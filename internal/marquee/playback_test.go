package marquee

import "testing"

func TestPlayRunsFirstFrameSynchronously(t *testing.T) {
	st := newFakeStage(200, 1000)
	m, scheduler, _ := newTestMarquee(st, testConfig())

	before := m.slides[0].Target
	m.Play()

	if !m.Running() {
		t.Fatal("Play should enter Running")
	}
	if m.slides[0].Target == before {
		t.Error("entering Running must invoke one frame immediately")
	}
	if scheduler.Pending() != 1 {
		t.Errorf("pending frames = %d, want 1", scheduler.Pending())
	}
}

func TestLoopReschedulesEveryFlush(t *testing.T) {
	st := newFakeStage(200, 1000)
	m, scheduler, _ := newTestMarquee(st, testConfig())

	m.Play()
	for i := 0; i < 5; i++ {
		if ran := scheduler.Flush(); ran != 1 {
			t.Fatalf("flush %d ran %d callbacks, want 1", i, ran)
		}
		if scheduler.Pending() != 1 {
			t.Fatalf("flush %d left %d pending, want 1", i, scheduler.Pending())
		}
	}
}

func TestToggleShortCircuits(t *testing.T) {
	st := newFakeStage(200, 1000)
	m, scheduler, _ := newTestMarquee(st, testConfig())

	m.Play()
	m.Play() // no-op: still exactly one pending frame
	if scheduler.Pending() != 1 {
		t.Errorf("double Play left %d pending, want 1", scheduler.Pending())
	}

	m.Pause()
	if scheduler.Pending() != 0 {
		t.Errorf("Pause left %d pending, want 0", scheduler.Pending())
	}
	m.Pause() // no-op the second time, no double-cancel fault
	if m.Running() {
		t.Error("Pause should leave Idle")
	}
}

func TestHoverGatesMotionNotLoop(t *testing.T) {
	st := newFakeStage(200, 1000)
	cfg := testConfig()
	cfg.Hover = true
	m, scheduler, _ := newTestMarquee(st, cfg)

	m.Play()
	m.PointerLeave()

	pos := m.slides[0].Position
	for i := 0; i < 3; i++ {
		scheduler.Flush()
		if scheduler.Pending() != 1 {
			t.Fatal("loop must keep rescheduling while motion is held")
		}
	}
	if m.slides[0].Position != pos {
		t.Error("held marquee must not move")
	}

	m.PointerEnter()
	scheduler.Flush()
	if m.slides[0].Position == pos {
		t.Error("motion must resume instantly on pointer enter")
	}
}

func TestHoverRequiresRunningLoop(t *testing.T) {
	st := newFakeStage(200, 1000)
	cfg := testConfig()
	cfg.Hover = true
	m, _, _ := newTestMarquee(st, cfg)

	m.PointerLeave()
	if !m.Animating() {
		t.Error("hover handlers must not take effect while Idle")
	}
}

func TestHoverIgnoredWhenNotConfigured(t *testing.T) {
	st := newFakeStage(200, 1000)
	m, _, _ := newTestMarquee(st, testConfig())

	m.Play()
	m.PointerLeave()
	if !m.Animating() {
		t.Error("hover handlers are only attached when hover is configured")
	}
}

func TestAutoPlayStartsLoopOnce(t *testing.T) {
	st := newFakeStage(200, 1000)
	cfg := testConfig()
	cfg.AutoPlay = true
	m, scheduler, _ := newTestMarquee(st, cfg)

	if !m.Running() {
		t.Fatal("auto-play must enter Running during initialization")
	}
	if scheduler.Pending() != 1 {
		t.Errorf("pending frames = %d, want 1", scheduler.Pending())
	}
}

func TestDestroyStopsAndIsIdempotent(t *testing.T) {
	st := newFakeStage(200, 1000)
	m, scheduler, tw := newTestMarquee(st, testConfig())

	m.Play()
	m.Pause()
	m.Destroy() // after Pause: must not throw or double-cancel
	m.Destroy() // repeated teardown is a no-op

	if scheduler.Pending() != 0 {
		t.Errorf("destroyed marquee left %d pending frames", scheduler.Pending())
	}
	found := false
	for _, k := range tw.kills {
		if k == &m.speed.Value {
			found = true
		}
	}
	if !found {
		t.Error("Destroy must cancel the relax tween")
	}

	m.Play()
	if m.Running() || scheduler.Pending() != 0 {
		t.Error("Play after Destroy must be a no-op")
	}
}
