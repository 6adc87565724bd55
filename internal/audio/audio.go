// Package audio plays synthesized one-shot sounds for game events.
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/survivors/internal/session"
)

const sampleRate = beep.SampleRate(44100)

// wave selects the oscillator for a tone.
type wave int

const (
	waveSine wave = iota
	waveNoise
)

// tone describes one synthesized sound: up to two notes played in sequence.
type tone struct {
	wave   wave
	freqs  []float64
	note   time.Duration
	volume float64 // linear gain in (0, 1]
}

var tones = map[session.Sound]tone{
	session.SoundShoot:     {wave: waveSine, freqs: []float64{880}, note: 40 * time.Millisecond, volume: 0.25},
	session.SoundHit:       {wave: waveSine, freqs: []float64{440}, note: 30 * time.Millisecond, volume: 0.3},
	session.SoundExplosion: {wave: waveNoise, freqs: []float64{0}, note: 250 * time.Millisecond, volume: 0.4},
	session.SoundHeal:      {wave: waveSine, freqs: []float64{660, 990}, note: 80 * time.Millisecond, volume: 0.35},
	session.SoundRevive:    {wave: waveSine, freqs: []float64{330, 660}, note: 150 * time.Millisecond, volume: 0.4},
	session.SoundLevelUp:   {wave: waveSine, freqs: []float64{523, 784}, note: 100 * time.Millisecond, volume: 0.35},
}

// Player mixes one-shots onto the local speaker. The zero value is not
// usable; call New.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         *log.Logger
}

// New returns a player that stays silent until Init succeeds.
func New(logger *log.Logger) *Player {
	return &Player{mixer: &beep.Mixer{}, log: logger}
}

// Init opens the speaker. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayOneShot queues the sound for s. Unknown sounds and an uninitialized
// player are ignored.
func (p *Player) PlayOneShot(s session.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	t, ok := tones[s]
	if !ok {
		return
	}
	streamer, err := t.streamer()
	if err != nil {
		p.log.Debug("tone synthesis failed", "sound", s, "err", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// streamer builds a finite stream for t.
func (t tone) streamer() (beep.Streamer, error) {
	n := sampleRate.N(t.note)
	notes := make([]beep.Streamer, 0, len(t.freqs))
	for _, f := range t.freqs {
		var src beep.Streamer
		switch t.wave {
		case waveNoise:
			src = noise()
		default:
			sine, err := generators.SineTone(sampleRate, f)
			if err != nil {
				return nil, err
			}
			src = sine
		}
		notes = append(notes, beep.Take(n, src))
	}
	return &effects.Volume{Streamer: beep.Seq(notes...), Base: 2, Volume: math.Log2(t.volume)}, nil
}

func noise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}

// Nop discards every sound.
type Nop struct{}

// PlayOneShot does nothing.
func (Nop) PlayOneShot(session.Sound) {}

// Open returns a speaker-backed player, or Nop when disabled or when no
// audio device is available. The returned func releases the device.
func Open(enabled bool, logger *log.Logger) (session.Audio, func()) {
	if !enabled {
		return Nop{}, func() {}
	}
	p := New(logger)
	if err := p.Init(); err != nil {
		logger.Warn("audio unavailable, continuing muted", "err", err)
		return Nop{}, func() {}
	}
	return p, p.Close
}
