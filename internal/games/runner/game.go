// Package runner binds host input to a world.Session and draws the session
// onto a terminal cell screen.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/runner-dash/internal/core"
	"github.com/vovakirdan/runner-dash/internal/world"
)

// Game implements the Runner Dash round loop for a single player.
type Game struct {
	session *world.Session
}

// New creates a game drawing randomness from rng.
// A nil rng is seeded from the clock.
func New(rng *rand.Rand) *Game {
	return &Game{session: world.NewSession(rng)}
}

// NewSeeded creates a game from a seed, 0 meaning seeded from the clock.
func NewSeeded(seed int64) *Game {
	if seed == 0 {
		return New(nil)
	}
	return New(rand.New(rand.NewSource(seed)))
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Runner Dash"
}

// Reset starts a new round.
func (g *Game) Reset() {
	g.session.Reset()
}

// Step applies one input frame and advances the simulation by one tick.
// Restart is handled before jump, so a frame carrying both starts the new
// round already jumping. Quit is left to the host.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.session.Reset()
	}
	if in.Has(core.ActionJump) {
		g.session.HandleJumpInput()
	}

	before := g.session.State()
	g.session.Advance(1)

	return core.StepResult{
		State: g.State(),
		Ended: !before.Terminal() && g.session.State().Terminal(),
	}
}

// Tick runs one host frame: poll src, step, then draw on dst.
func (g *Game) Tick(src world.InputSource, dst world.Surface) core.StepResult {
	res := g.Step(src.Poll())
	dst.Draw(g.session.Snapshot())
	return res
}

// Snapshot returns a copy of the current render state.
func (g *Game) Snapshot() world.Snapshot {
	return g.session.Snapshot()
}

// Ticks returns the number of ticks simulated in the current round.
func (g *Game) Ticks() int {
	return g.session.Ticks()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: st == world.StateGameOver,
		Won:      st == world.StateWon,
	}
}

// Render draws the current round onto dst.
func (g *Game) Render(dst *core.Screen) {
	NewTerminalSurface(dst).Draw(g.session.Snapshot())
}
