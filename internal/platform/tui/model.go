package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bomb-arena/internal/arena"
	"github.com/vovakirdan/bomb-arena/internal/config"
	"github.com/vovakirdan/bomb-arena/internal/core"
	"github.com/vovakirdan/bomb-arena/internal/registry"
	"github.com/vovakirdan/bomb-arena/internal/storage"
)

// Presentation timing
const (
	bannerSeconds       = 1.5 // How long event banners stay up
	roundAdvanceSeconds = 3.0 // Delay before RoundOver continues on its own
	holdSeconds         = 0.15
)

// Options configures a play session.
type Options struct {
	Arena   config.ArenaConfig
	Runtime core.RuntimeConfig

	Names       [2]string
	Controllers [2]string // Registry ids, e.g. "human", "cpu"

	RoundsToWin  int // 0 means the config value
	RoundSeconds int // 0 means the config value

	Store  *storage.Store // Optional; nil disables history
	Logger *log.Logger    // Optional; nil discards
}

// eventFeed buffers match events between ticks. The model is copied by
// value on every update, so the buffer lives behind a pointer.
type eventFeed struct {
	pending []arena.Event
}

func (f *eventFeed) HandleEvent(e arena.Event) {
	f.pending = append(f.pending, e)
}

func (f *eventFeed) drain() []arena.Event {
	events := f.pending
	f.pending = nil
	return events
}

// heldMove keeps a direction pressed for a short while after each key
// event, since terminals report presses and repeats but never releases.
type heldMove struct {
	action core.Action
	ticks  int
}

// Model is the Bubble Tea model for a bomb arena session.
type Model struct {
	opts        Options
	match       *arena.Match
	controllers [2]registry.Controller
	recorder    *storage.Recorder
	feed        *eventFeed
	logger      *log.Logger

	screen *core.Screen
	keys   KeyMap
	help   help.Model
	width  int
	height int

	held     [2]heldMove
	oneShot  [2]core.InputFrame
	banner   string
	bannerT  float64
	advanceT float64
	lastEnd  string

	history     HistoryModel
	showHistory bool
	quitting    bool
}

// NewModel creates a session model. Unknown controller ids are an error.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var controllers [2]registry.Controller
	for i, id := range opts.Controllers {
		if id == "" {
			id = "human"
		}
		c, err := registry.Create(id)
		if err != nil {
			return Model{}, fmt.Errorf("tui: player %d: %w", i+1, err)
		}
		controllers[i] = c
	}

	feed := &eventFeed{}
	matchOpts := []arena.Option{
		arena.WithSeed(opts.Runtime.Seed),
		arena.WithLogger(logger),
		arena.WithListener(feed),
	}
	var recorder *storage.Recorder
	if opts.Store != nil {
		recorder = storage.NewRecorder(opts.Store, logger)
		matchOpts = append(matchOpts, arena.WithListener(recorder))
	}

	keys := DefaultKeyMap()
	if controllers[1].ID() != "human" {
		keys = keys.Solo()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		opts:        opts,
		match:       arena.NewMatch(opts.Arena, matchOpts...),
		controllers: controllers,
		recorder:    recorder,
		feed:        feed,
		logger:      logger,
		screen:      core.NewScreen(max(opts.Runtime.ScreenW, 1), max(opts.Runtime.ScreenH-helpRows(h), 1)),
		keys:        keys,
		help:        h,
		width:       opts.Runtime.ScreenW,
		height:      opts.Runtime.ScreenH,
		oneShot:     [2]core.InputFrame{core.NewInputFrame(), core.NewInputFrame()},
		history:     NewHistoryModel(opts.Store, opts.Runtime.ScreenW, opts.Runtime.ScreenH, true),
	}, nil
}

// Match returns the match driven by the model.
func (m Model) Match() *arena.Match {
	return m.match
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.help.Width = wsm.Width
		m.screen.Resize(max(wsm.Width, 1), max(wsm.Height-helpRows(m.help), 1))
	}

	if m.showHistory {
		if _, ok := msg.(TickMsg); ok {
			return m, tickCmd(m.opts.Runtime.TickRate)
		}
		next, cmd := m.history.Update(msg)
		if hm, ok := next.(HistoryModel); ok {
			m.history = hm
		}
		if m.history.IsQuitting() {
			return m.quit()
		}
		if m.history.IsGoingBack() {
			m.showHistory = false
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.GlobalAction(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionPause:
		m.match.TogglePause()
		return m, nil
	case core.ActionConfirm:
		m.confirm()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(max(m.width, 1), max(m.height-helpRows(m.help), 1))
		return m, nil
	case key.Matches(msg, m.keys.History):
		if m.match.State() != arena.StatePlaying {
			m.history = NewHistoryModel(m.opts.Store, m.width, m.height, true)
			m.showHistory = true
		}
		return m, nil
	}

	id, action := m.keys.PlayerAction(msg)
	i, ok := playerIndex(id)
	if !ok {
		return m, nil
	}
	if action.Direction() != core.DirNone {
		m.held[i] = heldMove{action: action, ticks: m.holdTicks()}
	} else {
		m.oneShot[i].Set(action)
	}
	return m, nil
}

// confirm starts a game from the menu or after game over, and skips the
// delay between rounds.
func (m *Model) confirm() {
	switch m.match.State() {
	case arena.StateMenu, arena.StateGameOver:
		m.match.StartNewGame(m.opts.Names[0], m.opts.Names[1], m.opts.RoundsToWin, m.opts.RoundSeconds)
	case arena.StateRoundOver:
		m.match.ContinueToNextRound()
	}
	m.advanceT = 0
}

// handleTick runs the controllers and advances the match by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := m.opts.Runtime.TickSeconds()

	for i, c := range m.controllers {
		frame := m.oneShot[i]
		if m.held[i].ticks > 0 {
			frame.Set(m.held[i].action)
			m.held[i].ticks--
		}
		c.Control(m.match, playerID(i), frame, dt)
		m.oneShot[i].Clear()
	}

	m.match.Update(dt)
	for _, e := range m.feed.drain() {
		m.handleEvent(e)
	}

	if m.bannerT > 0 {
		m.bannerT -= dt
		if m.bannerT <= 0 {
			m.banner = ""
		}
	}
	if m.match.State() == arena.StateRoundOver && m.advanceT > 0 {
		m.advanceT -= dt
		if m.advanceT <= 0 {
			m.match.ContinueToNextRound()
		}
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleEvent turns match events into banners and round transitions.
func (m *Model) handleEvent(e arena.Event) {
	switch ev := e.(type) {
	case arena.PowerUpCollectedEvent:
		m.showBanner(fmt.Sprintf("%s picked up %s", m.name(ev.Player), ev.Kind))
	case arena.PlayerHitEvent:
		if ev.Eliminated {
			m.showBanner(fmt.Sprintf("%s is out!", m.name(ev.Player)))
		} else {
			m.showBanner(fmt.Sprintf("%s was hit, %d lives left", m.name(ev.Player), ev.LivesLeft))
		}
	case arena.RoundEndedEvent:
		if ev.Winner == core.NoPlayer {
			m.lastEnd = fmt.Sprintf("Round %d is a draw", ev.Round)
		} else {
			m.lastEnd = fmt.Sprintf("Round %d goes to %s", ev.Round, m.name(ev.Winner))
		}
		m.advanceT = roundAdvanceSeconds
		m.banner = ""
		m.logger.Debug("round ended", "round", ev.Round, "winner", ev.Winner, "timed_out", ev.TimedOut)
	case arena.GameEndedEvent:
		m.advanceT = 0
		m.logger.Info("game over", "winner", m.name(ev.Winner), "score", fmt.Sprintf("%d-%d", ev.Score1, ev.Score2))
	}
}

func (m *Model) showBanner(text string) {
	m.banner = text
	m.bannerT = bannerSeconds
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.recorder != nil {
		//nolint:errcheck // Failures are already logged by the recorder
		m.recorder.Close()
	}
	return m, tea.Quit
}

// messageLines returns the text shown under the board for the current state.
func (m Model) messageLines() []string {
	switch m.match.State() {
	case arena.StateMenu:
		rounds, secs := m.opts.RoundsToWin, m.opts.RoundSeconds
		if rounds < 1 {
			rounds = m.opts.Arena.Match.RoundsToWin
		}
		if secs < 1 {
			secs = m.opts.Arena.Match.RoundSeconds
		}
		return []string{
			"B O M B   A R E N A",
			fmt.Sprintf("First to %d rounds, %ds per round", rounds, secs),
			"Press N to start",
		}
	case arena.StatePaused:
		return []string{"PAUSED", "Press P to resume"}
	case arena.StateRoundOver:
		return []string{m.lastEnd, fmt.Sprintf("Next round in %.0fs (N to skip)", max(m.advanceT, 0))}
	case arena.StateGameOver:
		winner := m.name(m.match.Winner())
		return []string{
			fmt.Sprintf("%s wins the match %d-%d!", winner, m.match.Score(core.Player1), m.match.Score(core.Player2)),
			"N: new game  H: history  Q: quit",
		}
	default:
		if m.banner != "" {
			return []string{m.banner}
		}
		return nil
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	DrawArena(m.screen, m.match.Snapshot(), m.messageLines())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) name(id core.PlayerID) string {
	if p := m.match.Player(id); p != nil {
		return p.Name()
	}
	return "Nobody"
}

func (m Model) holdTicks() int {
	return max(int(holdSeconds*float64(m.opts.Runtime.TickRate)+0.5), 1)
}

func helpRows(h help.Model) int {
	if h.ShowAll {
		return 4
	}
	return 1
}

func playerIndex(id core.PlayerID) (int, bool) {
	switch id {
	case core.Player1:
		return 0, true
	case core.Player2:
		return 1, true
	default:
		return 0, false
	}
}

func playerID(i int) core.PlayerID {
	if i == 1 {
		return core.Player2
	}
	return core.Player1
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
