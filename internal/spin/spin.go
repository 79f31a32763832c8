// Package spin holds the wheel's rotation state and the per-tick physics that
// slows it down and resolves the prize under the pointer.
package spin

import (
	"math"

	"github.com/iburimskiy/spin-wheel/internal/config"
)

// Physics are the per-tick spin parameters.
type Physics struct {
	MinVelocity   float64 // inclusive, radians per tick
	MaxVelocity   float64 // exclusive
	Decay         float64 // multiplicative, applied once per tick
	StopThreshold float64
}

// DefaultPhysics returns the constants from the config package.
func DefaultPhysics() Physics {
	return Physics{
		MinVelocity:   config.MinVelocity,
		MaxVelocity:   config.MaxVelocity,
		Decay:         config.Decay,
		StopThreshold: config.StopThreshold,
	}
}

// Source draws uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// TickResult reports what a single Tick did.
type TickResult struct {
	Settled bool
	// Crossed is the number of section boundaries that passed the pointer.
	Crossed int
}

// SpinState is the single mutable game state. The zero value is not usable;
// build one with New.
type SpinState struct {
	Angle     float64
	Velocity  float64
	Spinning  bool
	Result    string
	HasResult bool

	SpinTicks int
	Spins     int

	wheel config.WheelConfig
	phys  Physics
}

// New returns an idle state at angle 0. The wheel must already be validated.
func New(wheel config.WheelConfig, phys Physics) *SpinState {
	return &SpinState{wheel: wheel, phys: phys}
}

func (s *SpinState) Wheel() config.WheelConfig { return s.wheel }

func (s *SpinState) Physics() Physics { return s.phys }

// Start begins a spin with a velocity drawn from [MinVelocity, MaxVelocity).
// It is ignored while a spin is in progress.
func (s *SpinState) Start(rng Source) bool {
	if s.Spinning {
		return false
	}
	v := s.phys.MinVelocity + rng.Float64()*(s.phys.MaxVelocity-s.phys.MinVelocity)
	return s.StartWith(v)
}

// StartWith begins a spin with an exact initial velocity.
func (s *SpinState) StartWith(v float64) bool {
	if s.Spinning || v <= 0 {
		return false
	}
	s.Velocity = v
	s.Spinning = true
	s.Result = ""
	s.HasResult = false
	s.SpinTicks = 0
	return true
}

// Tick advances the spin by one frame.
func (s *SpinState) Tick() TickResult {
	var res TickResult
	if !s.Spinning {
		return res
	}

	before := s.boundary(s.Angle)
	s.Angle += s.Velocity
	s.Velocity *= s.phys.Decay
	s.SpinTicks++
	res.Crossed = s.boundary(s.Angle) - before

	if s.Velocity < s.phys.StopThreshold {
		s.Velocity = 0
		s.Spinning = false
		s.Result = Resolve(s.wheel, s.Angle)
		s.HasResult = true
		s.Spins++
		res.Settled = true
	}
	return res
}

func (s *SpinState) boundary(angle float64) int {
	return int(math.Floor(angle / s.wheel.SectionAngle()))
}

// SectionIndex maps an angle to the section drawn at the reference direction.
func SectionIndex(wheel config.WheelConfig, angle float64) int {
	normalized := math.Mod(angle, config.FullTurn)
	if normalized < 0 {
		normalized += config.FullTurn
	}
	idx := int(normalized / wheel.SectionAngle())
	// normalized can round up to exactly a full turn
	if idx >= wheel.Len() {
		idx = wheel.Len() - 1
	}
	return idx
}

// ResolvedIndex is the index of the prize under the pointer. Sections are laid
// out in increasing-angle order from the current rotation while the pointer
// stays fixed, so the prize under it is at the inverse offset.
func ResolvedIndex(wheel config.WheelConfig, angle float64) int {
	n := wheel.Len()
	return (n - SectionIndex(wheel, angle)) % n
}

// Resolve returns the prize label for a final rotation angle.
func Resolve(wheel config.WheelConfig, angle float64) string {
	return wheel.Sections[ResolvedIndex(wheel, angle)].Label
}
