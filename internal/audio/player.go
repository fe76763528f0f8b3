// Package audio implements the game's sound sink on top of beep.
//
// Every sound trigger maps to one preloaded clip. Playing a clip that is
// still playing stops it and starts it again from frame zero; clips are never
// queued or layered over themselves. A clip that failed to load is skipped
// silently.
package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
)

const defaultSampleRate = beep.SampleRate(44100)

// tone describes a built-in synthesized clip.
type tone struct {
	freq     float64
	duration time.Duration
}

// tones are used when no sound directory is configured.
var tones = map[core.Sound]tone{
	core.SoundBounce:   {660, 40 * time.Millisecond},
	core.SoundBonus:    {1046, 120 * time.Millisecond},
	core.SoundSpike:    {110, 300 * time.Millisecond},
	core.SoundObstacle: {330, 60 * time.Millisecond},
}

// output is the part of the speaker the player needs.
type output interface {
	Lock()
	Unlock()
	Play(s ...beep.Streamer)
	Clear()
}

type speakerOutput struct{}

func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Clear()                  { speaker.Clear() }

// Player is a core.SoundSink backed by the system speaker.
// Play must be called from a single goroutine.
type Player struct {
	out    output
	logger *log.Logger
	format beep.Format
	volume float64

	clips  map[core.Sound]*beep.Buffer
	active map[core.Sound]*beep.Ctrl
}

// New initializes the speaker and loads every clip.
func New(cfg config.AudioConfig, logger *log.Logger) (*Player, error) {
	sr := sampleRate(cfg)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	return newPlayer(speakerOutput{}, cfg, logger), nil
}

func newPlayer(out output, cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		out:    out,
		logger: logger,
		format: beep.Format{SampleRate: sampleRate(cfg), NumChannels: 2, Precision: 2},
		volume: cfg.Volume,
		clips:  make(map[core.Sound]*beep.Buffer),
		active: make(map[core.Sound]*beep.Ctrl),
	}

	for _, s := range core.AllSounds {
		var (
			buf *beep.Buffer
			err error
		)
		if cfg.Dir != "" {
			buf, err = p.loadWAV(filepath.Join(cfg.Dir, s.String()+".wav"))
		} else {
			buf, err = p.synthesize(tones[s])
		}
		if err != nil {
			p.logger.Warn("sound disabled", "sound", s, "err", err)
			continue
		}
		p.clips[s] = buf
	}
	return p
}

func sampleRate(cfg config.AudioConfig) beep.SampleRate {
	if cfg.SampleRate <= 0 {
		return defaultSampleRate
	}
	return beep.SampleRate(cfg.SampleRate)
}

// loadWAV decodes a clip into memory at the player's sample rate.
func (p *Player) loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != p.format.SampleRate {
		s = beep.Resample(4, format.SampleRate, p.format.SampleRate, s)
	}

	buf := beep.NewBuffer(p.format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// synthesize renders a sine tone into memory.
func (p *Player) synthesize(t tone) (*beep.Buffer, error) {
	sine, err := generators.SineTone(p.format.SampleRate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.0fHz: %w", t.freq, err)
	}
	buf := beep.NewBuffer(p.format)
	buf.Append(beep.Take(p.format.SampleRate.N(t.duration), sine))
	return buf, nil
}

// Loaded reports whether s has a playable clip.
func (p *Player) Loaded(s core.Sound) bool {
	_, ok := p.clips[s]
	return ok
}

// Play restarts the clip for s from the beginning.
func (p *Player) Play(s core.Sound) {
	buf, ok := p.clips[s]
	if !ok {
		return
	}

	var stream beep.Streamer = buf.Streamer(0, buf.Len())
	if p.volume != 0 {
		stream = &effects.Volume{Streamer: stream, Base: 2, Volume: p.volume}
	}
	ctrl := &beep.Ctrl{Streamer: stream}

	p.out.Lock()
	if prev := p.active[s]; prev != nil {
		prev.Streamer = nil // a nil streamer ends the old playback
	}
	p.out.Unlock()

	p.active[s] = ctrl
	p.out.Play(ctrl)
}

// Close stops all playback.
func (p *Player) Close() {
	p.out.Lock()
	for s, ctrl := range p.active {
		ctrl.Streamer = nil
		delete(p.active, s)
	}
	p.out.Unlock()
	p.out.Clear()
}
