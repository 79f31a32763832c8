// Package audio plays the wheel's sound effects through the beep speaker.
package audio

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/spin-wheel/internal/config"
)

// Player is what the game loop needs from the sound system.
type Player interface {
	Click()
	Chime()
	// Level is the current output level in [0, 1].
	Level() float64
	Close()
}

// NewPlayer initializes the speaker and starts the mixer. When no audio
// device is available it logs a warning and returns a silent player.
func NewPlayer(logger *zap.Logger) Player {
	sr := beep.SampleRate(config.SampleRate)
	bufferSize := sr.N(time.Second / 20)

	if err := speaker.Init(sr, bufferSize); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return silentPlayer{}
	}

	p := &speakerPlayer{
		sr:     sr,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	p.tap = newLevelTap(p.mixer, config.LevelRingSize)
	speaker.Play(p.tap)

	logger.Info("audio initialized", zap.Int("sample_rate", int(sr)), zap.Int("buffer", bufferSize))
	return p
}

type speakerPlayer struct {
	sr     beep.SampleRate
	mixer  *beep.Mixer
	tap    *levelTap
	logger *zap.Logger

	mu     sync.Mutex
	closed bool
}

func (p *speakerPlayer) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *speakerPlayer) Click() { p.add(NewClickGenerator(p.sr)) }

func (p *speakerPlayer) Chime() { p.add(NewChimeGenerator(p.sr)) }

func (p *speakerPlayer) Level() float64 { return p.tap.level(config.LevelWindow) }

func (p *speakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.logger.Debug("audio closed")
}

type silentPlayer struct{}

func (silentPlayer) Click()         {}
func (silentPlayer) Chime()         {}
func (silentPlayer) Level() float64 { return 0 }
func (silentPlayer) Close()         {}
