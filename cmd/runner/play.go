package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/runner-dash/internal/platform/tui"
	"github.com/vovakirdan/runner-dash/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal.

Controls (configurable under keys: in the config file):
  Space/Up/W - Jump
  R          - Restart
  Q/Ctrl+C   - Quit

Logs are discarded while playing unless --log-file is set.

Examples:
  runner play
  runner play --seed 42
  runner play --log-file runner.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// The alt screen owns the terminal
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	journal := openJournal(cfg, logger)
	if journal != nil {
		defer journal.Close()
	}

	runErr := tui.Run(tui.Options{
		Width:    width,
		Height:   height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
		Keys:     cfg.Keys,
		Journal:  journal,
		Logger:   logger,
		Player:   storage.LocalPlayer,
	})
	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fail("running game: %v", runErr)
	}
}
