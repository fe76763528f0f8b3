package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
)

// fakeOutput records what would have reached the speaker.
type fakeOutput struct {
	locked  int
	played  []beep.Streamer
	cleared int
}

func (f *fakeOutput) Lock()                   { f.locked++ }
func (f *fakeOutput) Unlock()                 { f.locked-- }
func (f *fakeOutput) Play(s ...beep.Streamer) { f.played = append(f.played, s...) }
func (f *fakeOutput) Clear()                  { f.cleared++ }

func TestSynthesizedClips(t *testing.T) {
	out := &fakeOutput{}
	p := newPlayer(out, config.AudioConfig{Enabled: true}, nil)

	for _, s := range core.AllSounds {
		assert.True(t, p.Loaded(s), "sound %s should be synthesized", s)
	}

	want := defaultSampleRate.N(tones[core.SoundSpike].duration)
	assert.Equal(t, want, p.clips[core.SoundSpike].Len())
}

func TestPlayRestartsFromZero(t *testing.T) {
	out := &fakeOutput{}
	p := newPlayer(out, config.AudioConfig{Enabled: true}, nil)

	p.Play(core.SoundBounce)
	require.Len(t, out.played, 1)
	first := out.played[0].(*beep.Ctrl)

	// Consume part of the clip.
	samples := make([][2]float64, 64)
	n, ok := first.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 64, n)

	p.Play(core.SoundBounce)
	require.Len(t, out.played, 2)
	second := out.played[1].(*beep.Ctrl)

	assert.Nil(t, first.Streamer, "previous playback should be stopped")
	assert.Equal(t, 0, out.locked, "lock must be released")

	// The new playback runs the whole clip again.
	total := 0
	for {
		n, ok := second.Stream(samples)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	assert.Equal(t, p.clips[core.SoundBounce].Len(), total)
}

func TestPlayDifferentSoundsIndependently(t *testing.T) {
	out := &fakeOutput{}
	p := newPlayer(out, config.AudioConfig{Enabled: true}, nil)

	p.Play(core.SoundBounce)
	p.Play(core.SoundBonus)

	require.Len(t, out.played, 2)
	assert.NotNil(t, out.played[0].(*beep.Ctrl).Streamer)
	assert.NotNil(t, out.played[1].(*beep.Ctrl).Streamer)
}

func TestMissingFilesDisableSounds(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "bonus.wav"), beep.SampleRate(22050))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spike.wav"), []byte("not a wav"), 0o644))

	var logs bytes.Buffer
	out := &fakeOutput{}
	p := newPlayer(out, config.AudioConfig{Enabled: true, Dir: dir}, log.New(&logs))

	assert.True(t, p.Loaded(core.SoundBonus))
	assert.False(t, p.Loaded(core.SoundBounce))
	assert.False(t, p.Loaded(core.SoundSpike))
	assert.False(t, p.Loaded(core.SoundObstacle))
	assert.Contains(t, logs.String(), "sound disabled")

	// Disabled sounds are silent no-ops.
	p.Play(core.SoundSpike)
	assert.Empty(t, out.played)

	p.Play(core.SoundBonus)
	assert.Len(t, out.played, 1)
}

func TestLoadedWAVIsResampled(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "bounce.wav"), beep.SampleRate(22050))

	p := newPlayer(&fakeOutput{}, config.AudioConfig{Enabled: true, Dir: dir, SampleRate: 44100}, nil)

	require.True(t, p.Loaded(core.SoundBounce))
	// 100ms at 22050Hz becomes roughly 100ms at 44100Hz.
	assert.InDelta(t, 4410, p.clips[core.SoundBounce].Len(), 20)
}

func TestCloseStopsPlayback(t *testing.T) {
	out := &fakeOutput{}
	p := newPlayer(out, config.AudioConfig{Enabled: true, Volume: -1}, nil)

	p.Play(core.SoundObstacle)
	ctrl := out.played[0].(*beep.Ctrl)
	_, isVolume := ctrl.Streamer.(*effects.Volume)
	assert.True(t, isVolume, "volume setting should wrap the clip")

	p.Close()
	assert.Nil(t, ctrl.Streamer)
	assert.Equal(t, 1, out.cleared)
	assert.Empty(t, p.active)
}

func writeWAV(t *testing.T, path string, sr beep.SampleRate) {
	t.Helper()

	sine, err := generators.SineTone(sr, 440)
	require.NoError(t, err)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Take(sr.N(100*time.Millisecond), sine), format))
}
