package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/runner-dash/internal/config"
	"github.com/vovakirdan/runner-dash/internal/core"
	"github.com/vovakirdan/runner-dash/internal/games/runner"
	"github.com/vovakirdan/runner-dash/internal/storage"
)

// Options configures a terminal round host.
type Options struct {
	Width    int // Terminal size, including the help footer
	Height   int
	TickRate int
	Seed     int64 // 0 seeds from the clock
	Keys     config.KeysConfig
	Journal  *storage.Journal // May be nil
	Logger   *log.Logger      // May be nil
	Player   string           // Recorded in the journal, empty for local play
}

// keyBuffer collects actions between ticks. It is the host's input source.
type keyBuffer struct {
	frame core.InputFrame
}

// Poll returns the actions gathered since the previous poll.
func (b *keyBuffer) Poll() core.InputFrame {
	f := b.frame
	b.frame = core.NewInputFrame()
	return f
}

// Model is the Bubble Tea model hosting one runner game.
type Model struct {
	game     *runner.Game
	screen   *core.Screen
	surface  *runner.TerminalSurface
	input    *keyBuffer
	keys     KeyMap
	help     help.Model
	journal  *storage.Journal
	logger   *log.Logger
	player   string
	tickRate int
	quitting bool
}

// NewModel creates a model with a fresh game.
func NewModel(opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if len(opts.Keys.Jump) == 0 {
		opts.Keys = config.Default().Keys
	}

	screen := core.NewScreen(opts.Width, screenHeight(opts.Height))
	game := runner.NewSeeded(opts.Seed)
	game.Render(screen)

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return Model{
		game:     game,
		screen:   screen,
		surface:  runner.NewTerminalSurface(screen),
		input:    &keyBuffer{frame: core.NewInputFrame()},
		keys:     NewKeyMap(opts.Keys),
		help:     h,
		journal:  opts.Journal,
		logger:   opts.Logger,
		player:   opts.Player,
		tickRate: opts.TickRate,
	}
}

// screenHeight leaves one row for the help footer.
func screenHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, screenHeight(msg.Height))
		m.help.Width = msg.Width
		m.game.Render(m.screen)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the mapped action until the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}
	m.input.frame.Set(action)
	return m, nil
}

// handleTick runs one simulation tick and redraws the screen.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Tick(m.input, m.surface)
	if res.Ended {
		m.recordRound(res.State)
	}
	return m, tickCmd(m.tickRate)
}

// recordRound logs a finished round and appends it to the journal.
func (m Model) recordRound(st core.GameState) {
	outcome := storage.OutcomeLost
	if st.Won {
		outcome = storage.OutcomeWon
	}

	m.logger.Debug("round finished",
		"outcome", outcome,
		"passes", st.Score,
		"ticks", m.game.Ticks(),
		"player", m.player,
	)

	if m.journal == nil {
		return
	}
	round := storage.Round{
		Outcome: outcome,
		Passes:  st.Score,
		Ticks:   m.game.Ticks(),
		Player:  m.player,
	}
	if _, err := m.journal.RecordRound(round); err != nil {
		m.logger.Warn("could not record round", "error", err)
	}
}

// State returns the state of the hosted round.
func (m Model) State() core.GameState {
	return m.game.State()
}

// View renders the current screen and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
