package config

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Spin the Wheel Game"
	TPS          = 60

	// Wheel geometry
	WheelRadius     = 200
	WheelBorder     = 10
	LabelRadiusFrac = 0.7
	WedgeArcSteps   = 10
	HubOuterRadius  = 20
	HubInnerRadius  = 15

	// Pointer triangle, relative to the top of the wheel
	PointerTipOffset  = 20
	PointerBaseOffset = 10
	PointerHalfWidth  = 15

	// Button dimensions
	ButtonWidth  = 150
	ButtonHeight = 50
	ButtonX      = WindowWidth/2 - ButtonWidth/2
	ButtonY      = WindowHeight - 80
	ButtonRadius = 10
	ButtonLabel  = "SPIN"

	// Spin physics, per tick
	MinVelocity   = 0.2
	MaxVelocity   = 0.4
	Decay         = 0.995
	StopThreshold = 0.001

	// Background decoration
	DotCount     = 50
	DotMinRadius = 1
	DotMaxRadius = 3

	// Audio
	SampleRate       = 44100
	LevelRingSize    = 8192
	LevelWindow      = 2048
	SmoothingFactor  = 0.6
	MaxClicksPerTick = 2

	Title       = "SPIN THE WHEEL"
	ResultY     = 20
	TitleY      = 60
	HeadingSize = 2.0
	LabelSize   = 1.4
)

const FullTurn = 2 * math.Pi

var (
	Background    = color.RGBA{R: 25, G: 25, B: 40, A: 255}
	TextColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BorderColor   = color.RGBA{R: 50, G: 50, B: 70, A: 255}
	PointerColor  = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	PointerEdge   = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	ButtonColor   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	ButtonHover   = color.RGBA{R: 100, G: 160, B: 210, A: 255}
	ButtonEdge    = color.RGBA{R: 50, G: 100, B: 150, A: 255}
	ResultColor   = color.RGBA{R: 255, G: 255, B: 150, A: 255}
	TitleColor    = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	DotColor      = color.RGBA{R: 80, G: 80, B: 100, A: 255}
	HubOuterColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	HubInnerColor = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

var (
	ErrEmptyWheel = errors.New("wheel has no sections")
	ErrBadSection = errors.New("invalid wheel section")
)

// Section is one equal-angle wedge of the wheel.
type Section struct {
	Label string
	Color color.RGBA
}

// WheelConfig is the ordered list of sections. It is built once and never mutated.
type WheelConfig struct {
	Sections []Section
}

// DefaultWheel returns the ten-prize wheel.
func DefaultWheel() WheelConfig {
	return NewWheel(
		[]string{"$100", "$200", "$500", "$1000", "Car", "Trip", "TV", "Phone", "Watch", "Nothing"},
		[]color.RGBA{
			{R: 255, G: 100, B: 100, A: 255}, // red
			{R: 100, G: 255, B: 100, A: 255}, // green
			{R: 100, G: 100, B: 255, A: 255}, // blue
			{R: 255, G: 255, B: 100, A: 255}, // yellow
			{R: 255, G: 100, B: 255, A: 255}, // magenta
			{R: 100, G: 255, B: 255, A: 255}, // cyan
			{R: 255, G: 165, B: 0, A: 255},   // orange
			{R: 128, G: 0, B: 128, A: 255},   // purple
			{R: 0, G: 128, B: 128, A: 255},   // teal
			{R: 255, G: 192, B: 203, A: 255}, // pink
		},
	)
}

// NewWheel pairs labels with colors by index. A length mismatch leaves the
// extra sections colorless, which Validate rejects.
func NewWheel(labels []string, colors []color.RGBA) WheelConfig {
	n := len(labels)
	if len(colors) > n {
		n = len(colors)
	}
	sections := make([]Section, n)
	for i := range sections {
		if i < len(labels) {
			sections[i].Label = labels[i]
		}
		if i < len(colors) {
			sections[i].Color = colors[i]
		}
	}
	return WheelConfig{Sections: sections}
}

// Len is the number of sections.
func (w WheelConfig) Len() int { return len(w.Sections) }

// SectionAngle is the angular width of one section in radians.
func (w WheelConfig) SectionAngle() float64 {
	return FullTurn / float64(len(w.Sections))
}

// Labels returns the prize labels in section order.
func (w WheelConfig) Labels() []string {
	out := make([]string, len(w.Sections))
	for i, s := range w.Sections {
		out[i] = s.Label
	}
	return out
}

// Validate checks that every section has both a label and a color.
func (w WheelConfig) Validate() error {
	if len(w.Sections) == 0 {
		return ErrEmptyWheel
	}
	for i, s := range w.Sections {
		if s.Label == "" {
			return errors.Wrapf(ErrBadSection, "section %d: missing label", i)
		}
		// alpha 0 means no color was supplied for this index
		if s.Color.A == 0 {
			return errors.Wrapf(ErrBadSection, "section %d (%s): missing color", i, s.Label)
		}
	}
	return nil
}
