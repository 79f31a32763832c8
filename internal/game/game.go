package game

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/spin-wheel/internal/audio"
	"github.com/iburimskiy/spin-wheel/internal/config"
	"github.com/iburimskiy/spin-wheel/internal/scene"
	"github.com/iburimskiy/spin-wheel/internal/spin"
)

// Game is the ebiten shell around the spin state and the scene.
type Game struct {
	state  *spin.SpinState
	scene  *scene.Scene
	audio  audio.Player
	logger *zap.Logger

	// smoothed audio level fed to the pointer glow
	level float64
	frame scene.Frame

	renderer *renderer
}

// New builds a game for an already validated wheel.
func New(wheel config.WheelConfig, player audio.Player, logger *zap.Logger, rng *rand.Rand) *Game {
	return &Game{
		state:    spin.New(wheel, spin.DefaultPhysics()),
		scene:    scene.New(rng),
		audio:    player,
		logger:   logger,
		renderer: newRenderer(),
	}
}

func (g *Game) State() *spin.SpinState { return g.state }

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	g.step(scene.Input{
		CursorX: mouseX,
		CursorY: mouseY,
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	})
	return nil
}

// step runs one tick from already polled input.
func (g *Game) step(in scene.Input) {
	g.level = config.SmoothingFactor*g.level + (1-config.SmoothingFactor)*g.audio.Level()
	in.AudioLevel = g.level

	g.frame = g.scene.Step(g.state, in)
	g.handleEvents(g.frame.Events)
}

func (g *Game) handleEvents(ev scene.Events) {
	if ev.Started {
		g.logger.Info("spin started", zap.Float64("velocity", ev.Velocity))
	}
	for i := 0; i < min(ev.Crossed, config.MaxClicksPerTick); i++ {
		g.audio.Click()
	}
	if ev.Settled {
		g.audio.Chime()
		g.logger.Info("spin settled",
			zap.String("prize", ev.Result),
			zap.Int("ticks", g.state.SpinTicks),
			zap.Float64("angle", g.state.Angle),
			zap.Int("spins", g.state.Spins),
		)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	for i := range g.frame.Commands {
		g.renderer.draw(screen, &g.frame.Commands[i])
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
