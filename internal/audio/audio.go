// Package audio plays short synthesized tones for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/riftarena/internal/arena"
)

const (
	sampleRate = beep.SampleRate(44100)
	cueGain    = -0.75 // scales samples by 1+gain
)

type note struct {
	freq float64 // Hz, 0 is a rest
	dur  time.Duration
}

// cues maps every event to a short phrase.
var cues = map[arena.Cue][]note{
	arena.CueShoot:    {{880, 30 * time.Millisecond}},
	arena.CueHit:      {{440, 25 * time.Millisecond}},
	arena.CueKill:     {{660, 40 * time.Millisecond}, {990, 60 * time.Millisecond}},
	arena.CueHurt:     {{150, 80 * time.Millisecond}},
	arena.CueGameOver: {{392, 150 * time.Millisecond}, {0, 30 * time.Millisecond}, {330, 150 * time.Millisecond}, {0, 30 * time.Millisecond}, {262, 300 * time.Millisecond}},
	arena.CueWave:     {{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 120 * time.Millisecond}},
}

var _ arena.Sounds = (*Player)(nil)

// Player implements arena.Sounds on the system speaker.
// Until Init succeeds every Play is a no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{mixer: &beep.Mixer{}, logger: logger}
}

// Init opens the speaker. Failure leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything queued.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues the phrase for c without blocking.
func (p *Player) Play(c arena.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := phrase(sampleRate, cues[c])
	if err != nil {
		p.logger.Debug("sound skipped", "cue", c, "err", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// phrase builds a streamer playing notes one after another.
func phrase(sr beep.SampleRate, notes []note) (beep.Streamer, error) {
	if len(notes) == 0 {
		return nil, fmt.Errorf("empty phrase")
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq <= 0 {
			parts = append(parts, beep.Silence(sr.N(n.dur)))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0f Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), tone))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: cueGain}, nil
}
