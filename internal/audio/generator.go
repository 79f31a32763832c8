package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	clickLength = 25 * time.Millisecond
	chimeLength = 600 * time.Millisecond
)

// ClickGenerator is the short tick heard when a section edge passes the pointer.
type ClickGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	seed  uint32
}

// NewClickGenerator creates a click generator
func NewClickGenerator(sr beep.SampleRate) *ClickGenerator {
	return &ClickGenerator{
		sr:    sr,
		total: sr.N(clickLength),
		seed:  0x2545f491,
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		t := float64(g.pos) / float64(g.sr)

		// Sharp attack, fast exponential release
		envelope := math.Exp(-t * 180)

		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1
		tone := math.Sin(2 * math.Pi * 1800 * t)

		sample := 0.25 * envelope * (0.6*tone + 0.4*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// ChimeGenerator is the two-note bell played when the wheel settles.
type ChimeGenerator struct {
	sr     beep.SampleRate
	pos    int
	total  int
	second int
}

// NewChimeGenerator creates a chime generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{
		sr:     sr,
		total:  sr.N(chimeLength),
		second: sr.N(120 * time.Millisecond),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		t := float64(g.pos) / float64(g.sr)

		sample := 0.18 * math.Exp(-t*5) * math.Sin(2*math.Pi*880*t)
		if g.pos >= g.second {
			t2 := float64(g.pos-g.second) / float64(g.sr)
			sample += 0.18 * math.Exp(-t2*5) * math.Sin(2*math.Pi*1320*t2)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
