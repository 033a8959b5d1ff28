// Package gui hosts the runner in a desktop window with Ebitengine.
package gui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/runner-dash/internal/core"
	"github.com/vovakirdan/runner-dash/internal/games/runner"
	"github.com/vovakirdan/runner-dash/internal/storage"
	"github.com/vovakirdan/runner-dash/internal/world"
)

// Options configures the window host.
type Options struct {
	Scale    float64 // Window size relative to the world, 1 is 1000x600
	TickRate int
	Seed     int64 // 0 seeds from the clock
	Journal  *storage.Journal
	Logger   *log.Logger
}

// Window keys.
var (
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// keyboard polls keys pressed since the previous tick.
type keyboard struct{}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Poll reports jump and restart. Quit is checked by the window itself.
func (keyboard) Poll() core.InputFrame {
	in := core.NewInputFrame()
	if anyJustPressed(jumpKeys) {
		in.Set(core.ActionJump)
	}
	if anyJustPressed(restartKeys) {
		in.Set(core.ActionRestart)
	}
	return in
}

// frameBuffer keeps the latest snapshot between Update and Draw.
type frameBuffer struct {
	snap world.Snapshot
}

func (f *frameBuffer) Draw(snap world.Snapshot) {
	f.snap = snap
}

// Window implements ebiten.Game for one runner game.
type Window struct {
	game    *runner.Game
	input   world.InputSource
	frame   *frameBuffer
	journal *storage.Journal
	logger  *log.Logger
}

// NewWindow creates a window host with a fresh game.
func NewWindow(opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	game := runner.NewSeeded(opts.Seed)
	return &Window{
		game:    game,
		input:   keyboard{},
		frame:   &frameBuffer{snap: game.Snapshot()},
		journal: opts.Journal,
		logger:  opts.Logger,
	}
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	if anyJustPressed(quitKeys) {
		return ebiten.Termination
	}

	res := w.game.Tick(w.input, w.frame)
	if res.Ended {
		w.recordRound(res.State)
	}
	return nil
}

func (w *Window) recordRound(st core.GameState) {
	outcome := storage.OutcomeLost
	if st.Won {
		outcome = storage.OutcomeWon
	}
	w.logger.Debug("round finished", "outcome", outcome, "passes", st.Score, "ticks", w.game.Ticks())

	if w.journal == nil {
		return
	}
	if _, err := w.journal.RecordRound(storage.Round{
		Outcome: outcome,
		Passes:  st.Score,
		Ticks:   w.game.Ticks(),
		Player:  storage.LocalPlayer,
	}); err != nil {
		w.logger.Warn("could not record round", "error", err)
	}
}

// Draw renders the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, w.frame.snap)
}

// Layout keeps the logical screen at world size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(world.WorldWidth), int(world.WorldHeight)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	ebiten.SetWindowSize(int(world.WorldWidth*opts.Scale), int(world.WorldHeight*opts.Scale))
	ebiten.SetWindowTitle("Runner Dash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewWindow(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
