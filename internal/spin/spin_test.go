package spin

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/spin-wheel/internal/config"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func newState() *SpinState {
	return New(config.DefaultWheel(), DefaultPhysics())
}

func TestResolveLiteralAngles(t *testing.T) {
	w := config.DefaultWheel()
	sa := w.SectionAngle()

	if got := Resolve(w, 0); got != w.Sections[0].Label {
		t.Errorf("Resolve(0) = %q, want %q", got, w.Sections[0].Label)
	}
	if got := Resolve(w, 3*sa); got != w.Sections[7].Label {
		t.Errorf("Resolve(3*sa) = %q, want %q", got, w.Sections[7].Label)
	}
}

func TestResolveInversion(t *testing.T) {
	w := config.DefaultWheel()
	sa := w.SectionAngle()
	n := w.Len()

	for i := 0; i < n; i++ {
		// middle of section i, plus whole extra turns
		for turns := 0; turns < 3; turns++ {
			angle := float64(turns)*config.FullTurn + (float64(i)+0.5)*sa
			if got := SectionIndex(w, angle); got != i {
				t.Errorf("SectionIndex(%f) = %d, want %d", angle, got, i)
			}
			want := w.Sections[(n-i)%n].Label
			if got := Resolve(w, angle); got != want {
				t.Errorf("Resolve(section %d, %d turns) = %q, want %q", i, turns, got, want)
			}
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	w := config.DefaultWheel()
	angles := []float64{0, 0.1, 1.2345, 17.5, 1000.001, config.FullTurn - 1e-12}

	for _, a := range angles {
		first := Resolve(w, a)
		idx := ResolvedIndex(w, a)
		for i := 0; i < 5; i++ {
			if got := Resolve(w, a); got != first {
				t.Errorf("Resolve(%f) changed: %q then %q", a, first, got)
			}
			if got := ResolvedIndex(w, a); got != idx {
				t.Errorf("ResolvedIndex(%f) changed: %d then %d", a, idx, got)
			}
		}
		if idx < 0 || idx >= w.Len() {
			t.Errorf("ResolvedIndex(%f) = %d out of range", a, idx)
		}
	}
}

func TestSingleSectionWheel(t *testing.T) {
	w := config.WheelConfig{Sections: []config.Section{{Label: "Only", Color: config.TitleColor}}}

	for _, a := range []float64{0, 1, 3, 6.2, 100} {
		if got := Resolve(w, a); got != "Only" {
			t.Errorf("Resolve(%f) = %q on single-section wheel", a, got)
		}
	}
}

func TestStartIgnoredWhileSpinning(t *testing.T) {
	s := newState()
	if !s.StartWith(0.3) {
		t.Fatal("Expected first start to succeed")
	}
	s.Tick()
	s.Tick()

	angle, velocity := s.Angle, s.Velocity
	if s.StartWith(0.4) {
		t.Error("Expected second StartWith to be ignored")
	}
	if s.Start(fixedSource(0.99)) {
		t.Error("Expected second Start to be ignored")
	}
	if s.Angle != angle || s.Velocity != velocity {
		t.Errorf("Ignored start changed state: angle %f->%f velocity %f->%f", angle, s.Angle, velocity, s.Velocity)
	}
}

func TestStartDrawsFromRange(t *testing.T) {
	p := DefaultPhysics()

	tests := []struct {
		draw float64
		want float64
	}{
		{0, p.MinVelocity},
		{0.5, (p.MinVelocity + p.MaxVelocity) / 2},
		{0.999999, p.MinVelocity + 0.999999*(p.MaxVelocity-p.MinVelocity)},
	}
	for _, tt := range tests {
		s := newState()
		s.Start(fixedSource(tt.draw))
		if math.Abs(s.Velocity-tt.want) > 1e-12 {
			t.Errorf("draw %f: velocity %f, want %f", tt.draw, s.Velocity, tt.want)
		}
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		s := newState()
		s.Start(rng)
		if s.Velocity < p.MinVelocity || s.Velocity >= p.MaxVelocity {
			t.Fatalf("velocity %f outside [%f, %f)", s.Velocity, p.MinVelocity, p.MaxVelocity)
		}
	}
}

func TestStartClearsResult(t *testing.T) {
	s := newState()
	s.StartWith(0.3)
	for s.Spinning {
		s.Tick()
	}
	if !s.HasResult {
		t.Fatal("Expected result after settle")
	}

	s.StartWith(0.2)
	if s.HasResult || s.Result != "" {
		t.Errorf("Expected result cleared on start, got %q", s.Result)
	}
	if s.SpinTicks != 0 {
		t.Errorf("Expected SpinTicks reset, got %d", s.SpinTicks)
	}
}

func TestTickIdleIsNoop(t *testing.T) {
	s := newState()
	res := s.Tick()
	if res.Settled || res.Crossed != 0 || s.Angle != 0 || s.Velocity != 0 {
		t.Errorf("Idle tick changed state: %+v angle=%f", res, s.Angle)
	}
}

func TestVelocityMonotoneAndInvariant(t *testing.T) {
	s := newState()
	s.StartWith(0.4)

	prev := s.Velocity
	for s.Spinning {
		s.Tick()
		if s.Velocity > prev {
			t.Fatalf("velocity increased: %f -> %f", prev, s.Velocity)
		}
		if s.Spinning != (s.Velocity > 0) {
			t.Fatalf("Spinning=%v with velocity %f", s.Spinning, s.Velocity)
		}
		if s.HasResult && s.Spinning {
			t.Fatal("result present while spinning")
		}
		prev = s.Velocity
	}
	if s.Velocity != 0 {
		t.Errorf("Expected exactly 0 velocity when idle, got %f", s.Velocity)
	}
}

func TestExactSettleTick(t *testing.T) {
	s := newState()
	s.StartWith(0.3)

	want := int(math.Ceil(math.Log(0.001/0.3) / math.Log(0.995)))
	ticks := 0
	for s.Spinning {
		s.Tick()
		ticks++
		if ticks > 10*want {
			t.Fatal("spin never settled")
		}
	}

	if ticks != want {
		t.Errorf("settled after %d ticks, want %d", ticks, want)
	}
	if ticks != 1138 {
		t.Errorf("settled after %d ticks, want 1138", ticks)
	}
	if s.SpinTicks != ticks {
		t.Errorf("SpinTicks = %d, want %d", s.SpinTicks, ticks)
	}
}

func TestEndToEnd(t *testing.T) {
	s := newState()
	start := s.Angle
	s.StartWith(0.3)

	settled := 0
	crossed := 0
	for s.Spinning {
		res := s.Tick()
		crossed += res.Crossed
		if res.Settled {
			settled++
		}
	}

	if settled != 1 {
		t.Errorf("Expected exactly one settle event, got %d", settled)
	}
	if s.Velocity != 0 {
		t.Errorf("Expected velocity 0, got %f", s.Velocity)
	}
	if s.Angle <= start {
		t.Errorf("Expected angle to increase from %f, got %f", start, s.Angle)
	}
	if s.Spins != 1 {
		t.Errorf("Expected 1 completed spin, got %d", s.Spins)
	}

	found := false
	for _, l := range s.Wheel().Labels() {
		if l == s.Result {
			found = true
		}
	}
	if !found {
		t.Errorf("Result %q is not a wheel label", s.Result)
	}
	if s.Result != Resolve(s.Wheel(), s.Angle) {
		t.Errorf("Stored result %q disagrees with Resolve", s.Result)
	}

	wantCrossed := int(math.Floor(s.Angle / s.Wheel().SectionAngle()))
	if crossed != wantCrossed {
		t.Errorf("Crossed %d boundaries, want %d", crossed, wantCrossed)
	}
}
