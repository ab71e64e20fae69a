package marquee

import (
	"math"
	"testing"
)

func TestPoolMinimalCover(t *testing.T) {
	cases := []struct {
		name             string
		contW, elemW, mg float64
		want             int
	}{
		{"reference geometry", 1000, 200, 0, 6},
		{"with margin", 1000, 200, 30, 6},
		{"narrow band", 500, 120, 30, 5},
		{"band narrower than element", 80, 200, 10, 2},
		{"single extra slide", 100, 100, 0, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := newFakeStage(tc.elemW, tc.contW)
			cfg := testConfig()
			cfg.Margin = tc.mg
			m, _, _ := newTestMarquee(st, cfg)

			n := len(m.slides)
			pitch := tc.elemW + tc.mg
			coverage := tc.contW + tc.elemW

			if n != tc.want {
				t.Errorf("pool size = %d, want %d", n, tc.want)
			}
			if float64(n)*pitch < coverage {
				t.Errorf("pool does not cover: %d*%v < %v", n, pitch, coverage)
			}
			if float64(n-1)*pitch >= coverage {
				t.Errorf("pool over-allocates: %d slides already cover %v", n-1, coverage)
			}

			// Limits.Max is the sum of all slides' pitches.
			sum := 0.0
			for _, s := range m.slides {
				sum += s.Limit
			}
			if m.limits.Max != sum {
				t.Errorf("Limits.Max = %v, want sum of limits %v", m.limits.Max, sum)
			}
		})
	}
}

func TestInitialPositionsForward(t *testing.T) {
	st := newFakeStage(200, 1000)
	m, _, _ := newTestMarquee(st, testConfig())

	prev := math.Inf(-1)
	for i, s := range m.slides {
		want := float64(i) * 200
		if s.Position != want || s.Target != want {
			t.Errorf("slide %d at %v (target %v), want %v", i, s.Position, s.Target, want)
		}
		if s.Position <= prev {
			t.Errorf("positions not strictly increasing at slide %d", i)
		}
		prev = s.Position
		if s.Velocity != 0 || s.Delta != 0 {
			t.Errorf("slide %d motion state not reset", i)
		}
	}
	if m.slides[0].Position != 0 {
		t.Errorf("forward layout must start at 0, got %v", m.slides[0].Position)
	}
}

func TestInitialPositionsReverse(t *testing.T) {
	st := newFakeStage(200, 1000)
	cfg := testConfig()
	cfg.Direction = false
	m, _, _ := newTestMarquee(st, cfg)

	prev := math.Inf(1)
	for i, s := range m.slides {
		want := 1000 - float64(i+1)*200
		if s.Position != want {
			t.Errorf("slide %d at %v, want %v", i, s.Position, want)
		}
		if s.Position >= prev {
			t.Errorf("positions not strictly decreasing at slide %d", i)
		}
		prev = s.Position
	}
	last := m.slides[len(m.slides)-1]
	if last.Position >= 0 {
		t.Errorf("reverse layout should reach below zero, last at %v", last.Position)
	}
}

func TestInitialWriteBypassesCull(t *testing.T) {
	// Band narrower than the pool: the last slide sits outside the extended
	// viewport, but the initial layout still writes every transform.
	st := newFakeStage(200, 300)
	m, _, _ := newTestMarquee(st, testConfig())

	for _, s := range m.slides {
		if len(st.writes[s.Node]) == 0 {
			t.Errorf("slide %v received no initial transform write", s.Node)
		}
	}
}

func TestResizeShrinksAndGrows(t *testing.T) {
	st := newFakeStage(200, 1000)
	m, _, _ := newTestMarquee(st, testConfig())
	if len(m.slides) != 6 {
		t.Fatalf("initial pool = %d, want 6", len(m.slides))
	}

	st.contW = 400
	m.onResize()
	if len(m.slides) != 3 {
		t.Errorf("pool after shrink = %d, want 3", len(m.slides))
	}
	if len(st.removed) != 3 {
		t.Errorf("removed %d nodes, want 3", len(st.removed))
	}
	if m.slides[0].Node != st.Template() {
		t.Error("template slide must survive every shrink")
	}

	st.contW = 1000
	m.onResize()
	if len(m.slides) != 6 {
		t.Errorf("pool after grow = %d, want 6", len(m.slides))
	}
	if m.limits.Max != 1200 {
		t.Errorf("Limits.Max after grow = %v, want 1200", m.limits.Max)
	}
}

func TestResizeResetsSpeedWithoutAnimation(t *testing.T) {
	st := newFakeStage(200, 1000)
	m, _, tw := newTestMarquee(st, testConfig())

	m.speed.Value = -40
	m.onResize()

	if m.speed.Value != m.speed.Init {
		t.Errorf("speed after layout = %v, want baseline %v", m.speed.Value, m.speed.Init)
	}
	if len(tw.tos) != 0 {
		t.Error("layout speed reset must not animate")
	}
}

func TestZeroSizeMeasurementsDegrade(t *testing.T) {
	st := newFakeStage(0, 0)
	m, _, _ := newTestMarquee(st, testConfig())

	if n := len(m.slides); n != 1 {
		t.Errorf("degenerate pool = %d, want minimal 1", n)
	}
	if m.limits.Max != 0 {
		t.Errorf("Limits.Max = %v, want 0", m.limits.Max)
	}
}

func TestContainerHugsElement(t *testing.T) {
	st := newFakeStage(200, 1000)
	st.elemH = 3
	newTestMarquee(st, testConfig())

	if st.height != 3 {
		t.Errorf("container height = %v, want element height 3", st.height)
	}
}
