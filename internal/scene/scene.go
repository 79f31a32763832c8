// Package scene turns one tick of input into a state update and the list of
// draw commands for that frame. It does no I/O, so the whole frame can be
// checked in tests without a window.
package scene

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/spin-wheel/internal/config"
	"github.com/iburimskiy/spin-wheel/internal/spin"
)

// glyphHeight is the native line height of the text face used by the shell.
const glyphHeight = 13

// celebrateTicks is how long the result banner cycles colors after a settle.
const celebrateTicks = 90

// Input is what the shell polled for this tick.
type Input struct {
	CursorX, CursorY int
	// Clicked is true on the tick the left button went down.
	Clicked bool
	// AudioLevel is the current output level in [0, 1].
	AudioLevel float64
}

// Events tells the shell what changed during the tick.
type Events struct {
	Started  bool
	Velocity float64 // initial velocity when Started
	Settled  bool
	Result   string
	Crossed  int
}

type Frame struct {
	Commands []Command
	Events   Events
}

// Scene owns everything about a frame that is not spin state: the button, the
// RNG for spin draws and background dots, and the banner animation clock.
type Scene struct {
	button    Button
	rng       *rand.Rand
	center    Point
	celebrate int
}

func New(rng *rand.Rand) *Scene {
	return &Scene{
		button: DefaultButton(),
		rng:    rng,
		center: Point{X: config.WindowWidth / 2, Y: config.WindowHeight / 2},
	}
}

func (sc *Scene) Button() Button { return sc.button }

// Step runs one tick: input, then physics, then the frame's commands.
func (sc *Scene) Step(st *spin.SpinState, in Input) Frame {
	var ev Events

	if in.Clicked && sc.button.Contains(in.CursorX, in.CursorY) {
		if st.Start(sc.rng) {
			ev.Started = true
			ev.Velocity = st.Velocity
			sc.celebrate = 0
		}
	}

	res := st.Tick()
	ev.Crossed = res.Crossed
	if res.Settled {
		ev.Settled = true
		ev.Result = st.Result
		sc.celebrate = celebrateTicks
	} else if sc.celebrate > 0 {
		sc.celebrate--
	}

	hovered := sc.button.Contains(in.CursorX, in.CursorY)
	return Frame{Commands: sc.build(st, hovered, in.AudioLevel), Events: ev}
}

func (sc *Scene) build(st *spin.SpinState, hovered bool, level float64) []Command {
	wheel := st.Wheel()
	cmds := make([]Command, 0, 2*wheel.Len()+config.DotCount+16)

	cmds = append(cmds, Command{Kind: Clear, Color: config.Background})
	cmds = sc.appendDots(cmds)
	cmds = sc.appendWheel(cmds, st.Angle, wheel)
	cmds = sc.appendPointer(cmds, level)
	cmds = sc.appendButton(cmds, hovered)

	if st.HasResult {
		cmds = append(cmds, headline(fmt.Sprintf("You won: %s!", st.Result), config.ResultY, sc.bannerColor()))
	}
	cmds = append(cmds, headline(config.Title, config.TitleY, config.TitleColor))

	status := fmt.Sprintf("Spins: %d", st.Spins)
	if st.Spinning || st.Spins > 0 {
		status += "  Spin time: " + formatDuration(ticksToDuration(st.SpinTicks))
	}
	cmds = append(cmds, Command{
		Kind:   DebugText,
		Text:   status,
		Center: Point{X: 12, Y: config.WindowHeight - 20},
	})
	return cmds
}

// appendDots scatters fresh background dots on every call.
func (sc *Scene) appendDots(cmds []Command) []Command {
	for i := 0; i < config.DotCount; i++ {
		cmds = append(cmds, Command{
			Kind:   FillCircle,
			Color:  config.DotColor,
			Center: Point{X: float32(sc.rng.IntN(config.WindowWidth + 1)), Y: float32(sc.rng.IntN(config.WindowHeight + 1))},
			Radius: float32(config.DotMinRadius + sc.rng.IntN(config.DotMaxRadius-config.DotMinRadius+1)),
		})
	}
	return cmds
}

func (sc *Scene) appendWheel(cmds []Command, angle float64, wheel config.WheelConfig) []Command {
	sa := wheel.SectionAngle()

	cmds = append(cmds, Command{
		Kind:   FillCircle,
		Color:  config.BorderColor,
		Center: sc.center,
		Radius: config.WheelRadius + config.WheelBorder,
	})

	for i, s := range wheel.Sections {
		start := angle + float64(i)*sa
		cmds = append(cmds, Command{
			Kind:   FillPolygon,
			Color:  s.Color,
			Points: wedge(sc.center, config.WheelRadius, start, sa, config.WedgeArcSteps),
		})

		mid := start + sa/2
		r := config.WheelRadius * config.LabelRadiusFrac
		cmds = append(cmds, Command{
			Kind:  Text,
			Color: config.TextColor,
			Text:  s.Label,
			Center: Point{
				X: sc.center.X + float32(r*math.Cos(mid)),
				Y: sc.center.Y + float32(r*math.Sin(mid)),
			},
			Scale:    config.LabelSize,
			Rotation: mid + math.Pi/2,
		})
	}

	return append(cmds,
		Command{Kind: FillCircle, Color: config.HubOuterColor, Center: sc.center, Radius: config.HubOuterRadius},
		Command{Kind: FillCircle, Color: config.HubInnerColor, Center: sc.center, Radius: config.HubInnerRadius},
	)
}

func (sc *Scene) appendPointer(cmds []Command, level float64) []Command {
	tri := pointer(sc.center, config.WheelRadius)

	if level = clamp01(level); level > 0.01 {
		glow := config.PointerColor
		glow.A = uint8(40 + 120*level)
		cmds = append(cmds, Command{
			Kind:   FillCircle,
			Color:  glow,
			Center: centroid(tri),
			Radius: float32(8 + 16*level),
		})
	}

	return append(cmds,
		Command{Kind: FillPolygon, Color: config.PointerColor, Points: tri},
		Command{Kind: StrokePolygon, Color: config.PointerEdge, Points: tri, Width: 2},
	)
}

func (sc *Scene) appendButton(cmds []Command, hovered bool) []Command {
	b := sc.button
	fill := config.ButtonColor
	if hovered {
		fill = config.ButtonHover
	}
	outline := roundedRect(float64(b.X), float64(b.Y), float64(b.W), float64(b.H), config.ButtonRadius, 4)

	return append(cmds,
		Command{Kind: FillPolygon, Color: fill, Points: outline},
		Command{Kind: StrokePolygon, Color: config.ButtonEdge, Points: outline, Width: 3},
		Command{Kind: Text, Color: config.TextColor, Text: b.Label, Center: b.Center(), Scale: config.HeadingSize},
	)
}

func (sc *Scene) bannerColor() color.RGBA {
	if sc.celebrate <= 0 {
		return config.ResultColor
	}
	return hsvToRgb(float64(sc.celebrate)*8, 0.45, 1.0)
}

// headline is horizontally centered text whose top edge sits at y.
func headline(s string, y int, c color.RGBA) Command {
	return Command{
		Kind:   Text,
		Color:  c,
		Text:   s,
		Center: Point{X: config.WindowWidth / 2, Y: float32(y) + glyphHeight*config.HeadingSize/2},
		Scale:  config.HeadingSize,
	}
}
