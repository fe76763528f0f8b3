package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bounce/internal/audio"
	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/platform/tui"
	"github.com/vovakirdan/bounce/internal/registry"
)

var (
	flagVariant   string
	flagMute      bool
	flagSoundsDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing with the selected rule set.

Controls:
  Enter        - Start (and restart after game over)
  P/Space      - Pause
  Left/Right   - Move the paddle
  Q/Ctrl+C     - Quit

Variants:
  classic  - Small spike, bonuses level you up, a sound per collision
  arcade   - Bigger spike, paddle hits score and speed the ball up

Examples:
  bounce play
  bounce play --variant arcade
  bounce play --seed 42 --mute
  bounce play --config ./my-bounce.toml --sounds ./sounds`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", string(config.DefaultVariant), "Rule set: classic, arcade")
	addAudioFlags(playCmd)
}

// addAudioFlags registers the sound flags shared by play and menu.
func addAudioFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagSoundsDir, "sounds", "", "Directory with bounce/bonus/spike/obstacle .wav files")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagVariant) {
		fmt.Fprintln(os.Stderr, "Run 'bounce variants' to see available variants.")
		return fmt.Errorf("unknown variant %q", flagVariant)
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	return sess.play(flagVariant, terminalConfig())
}

// session holds what a run of the CLI shares between games.
type session struct {
	cfg     config.BounceConfig
	logger  *log.Logger
	sound   core.SoundSink
	closers []io.Closer
	player  *audio.Player
}

// openSession sets up logging, configuration and audio.
func openSession() (*session, error) {
	logger, logFile, err := openLogger(flagLogPath, flagDebug)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, sound: core.NopSound{}, closers: []io.Closer{logFile}}

	cfg, source, err := config.LoadBounce(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}
	logger.Info("config loaded", "source", source)

	if flagSoundsDir != "" {
		cfg.Audio.Dir = flagSoundsDir
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	s.cfg = cfg

	if cfg.Audio.Enabled {
		player, err := audio.New(cfg.Audio, logger)
		if err != nil {
			// Play silently rather than refuse to start
			logger.Warn("audio disabled", "error", err)
		} else {
			s.player = player
			s.sound = player
		}
	}
	return s, nil
}

// play runs one game of the given variant.
func (s *session) play(variantID string, rt core.RuntimeConfig) error {
	v, err := registry.Lookup(variantID)
	if err != nil {
		return err
	}

	cfg := s.cfg
	config.ApplyVariant(&cfg, v.Rules())

	return tui.Run(tui.Options{
		Game:    cfg,
		Runtime: rt,
		Variant: v.ID,
		Sound:   s.sound,
		Logger:  s.logger,
	})
}

// Close stops audio and closes the log file.
func (s *session) Close() {
	if s.player != nil {
		s.player.Close()
	}
	for _, c := range s.closers {
		c.Close()
	}
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
