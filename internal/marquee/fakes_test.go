package marquee

import (
	"marquee/internal/sched"
)

// fakeStage is an instrumented Stage for engine tests.
type fakeStage struct {
	elemW, elemH float64
	contW, left  float64
	markers      map[string]bool

	height   float64
	nextID   NodeID
	removed  []NodeID
	writes   map[NodeID][]float64
	measures int
}

func newFakeStage(elemW, contW float64) *fakeStage {
	return &fakeStage{
		elemW:  elemW,
		elemH:  1,
		contW:  contW,
		writes: make(map[NodeID][]float64),
	}
}

func (f *fakeStage) Template() NodeID { return 0 }

func (f *fakeStage) Clone() NodeID {
	f.nextID++
	return f.nextID
}

func (f *fakeStage) Remove(id NodeID) {
	f.removed = append(f.removed, id)
}

func (f *fakeStage) Transform(id NodeID, x float64) {
	f.writes[id] = append(f.writes[id], x)
}

func (f *fakeStage) ElementSize() (float64, float64) {
	f.measures++
	return f.elemW, f.elemH
}

func (f *fakeStage) ContainerSize() (float64, float64) {
	return f.contW, f.left
}

func (f *fakeStage) SetContainerHeight(h float64) {
	f.height = h
}

func (f *fakeStage) Marker(name string) bool {
	return f.markers[name]
}

func (f *fakeStage) clearWrites() {
	f.writes = make(map[NodeID][]float64)
}

// fakeTween records Kill/To calls and their interleaving.
type fakeTween struct {
	kills []*float64
	tos   []tweenCall
	log   []string
}

type tweenCall struct {
	target  *float64
	value   float64
	seconds float64
}

func (f *fakeTween) Kill(target *float64) {
	f.kills = append(f.kills, target)
	f.log = append(f.log, "kill")
}

func (f *fakeTween) To(target *float64, value, seconds float64) {
	f.tos = append(f.tos, tweenCall{target: target, value: value, seconds: seconds})
	f.log = append(f.log, "to")
}

// testConfig is the scenario configuration from the engine's reference
// geometry: margin 0 so the pitch equals the element width.
func testConfig() Config {
	return Config{
		Margin:    0,
		Delta:     1,
		Easing:    DefaultEasing,
		Friction:  DefaultFriction,
		Direction: true,
	}
}

func newTestMarquee(st *fakeStage, cfg Config) (*Marquee, *sched.Manual, *fakeTween) {
	scheduler := sched.NewManual()
	tweener := &fakeTween{}
	m := newWithConfig(st, scheduler, tweener, cfg, nil)
	return m, scheduler, tweener
}
