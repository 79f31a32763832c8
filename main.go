package main

import (
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iburimskiy/spin-wheel/internal/audio"
	"github.com/iburimskiy/spin-wheel/internal/config"
	"github.com/iburimskiy/spin-wheel/internal/game"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	code := 0
	if err := run(logger); err != nil {
		logger.Error("spin wheel stopped", zap.Error(err))
		code = 1
	}
	_ = logger.Sync()
	os.Exit(code)
}

func run(logger *zap.Logger) error {
	wheel := config.DefaultWheel()
	if err := wheel.Validate(); err != nil {
		// Best effort: the dialog may be unavailable on headless systems.
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		return errors.Wrap(err, "wheel configuration")
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	ebiten.SetVsyncEnabled(true)

	logger.Info("starting",
		zap.Int("width", config.WindowWidth),
		zap.Int("height", config.WindowHeight),
		zap.Int("sections", wheel.Len()),
	)

	player := audio.NewPlayer(logger)
	defer player.Close()

	g := game.New(wheel, player, logger, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}

	logger.Info("window closed", zap.Int("spins", g.State().Spins))
	return nil
}
