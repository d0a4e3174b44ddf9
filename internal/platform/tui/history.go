package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bomb-arena/internal/storage"
)

// History layout constants
const (
	maxHistoryRows = 100
	tableChrome    = 8 // Title, tabs, borders and help
)

// HistoryTab selects which table the history screen shows.
type HistoryTab int

const (
	TabRecent HistoryTab = iota
	TabLeaderboard
)

// String returns the tab title.
func (t HistoryTab) String() string {
	if t == TabLeaderboard {
		return "Leaderboard"
	}
	return "Recent Matches"
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next table"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev table"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	store    *storage.Store
	tab      HistoryTab
	matches  []storage.MatchResult
	players  []storage.PlayerStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	embedded bool // Back returns to the caller instead of quitting

	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history model. store may be nil.
func NewHistoryModel(store *storage.Store, width, height int, embedded bool) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:    store,
		keys:     DefaultHistoryKeyMap(),
		help:     h,
		width:    width,
		height:   height,
		embedded: embedded,
	}
	m.load()
	return m
}

// load reads both tables from the store.
func (m *HistoryModel) load() {
	m.matches, m.players, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.matches, m.loadErr = m.store.RecentMatches(maxHistoryRows)
		if m.loadErr == nil {
			m.players, m.loadErr = m.store.Leaderboard(maxHistoryRows)
		}
	}
	m.table = m.createTable()
}

// createTable builds the table for the current tab.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	switch m.tab {
	case TabLeaderboard:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 16},
			{Title: "W", Width: 5},
			{Title: "L", Width: 5},
			{Title: "D", Width: 5},
			{Title: "Rounds", Width: 8},
		}
		for i, p := range m.players {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				p.Name,
				fmt.Sprintf("%d", p.Wins),
				fmt.Sprintf("%d", p.Losses),
				fmt.Sprintf("%d", p.Draws),
				fmt.Sprintf("%d", p.RoundsWon),
			})
		}
	default:
		columns = []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Players", Width: 24},
			{Title: "Score", Width: 7},
			{Title: "Winner", Width: 12},
			{Title: "Time", Width: 7},
		}
		for _, r := range m.matches {
			winner := r.Winner
			switch {
			case !r.Completed:
				winner = "abandoned"
			case winner == "":
				winner = "draw"
			}
			rows = append(rows, table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Player1 + " v " + r.Player2,
				fmt.Sprintf("%d-%d", r.Score1, r.Score2),
				winner,
				fmt.Sprintf("%.0fs", r.Duration),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-tableChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
			m.tab = 1 - m.tab
			m.table = m.createTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("MATCH HISTORY", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, t := range []HistoryTab{TabRecent, TabLeaderboard} {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or an explanatory message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("History is disabled.\nStart with a database to record matches.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No matches recorded yet.\nFinish a game to fill this table!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the history screen as a standalone program.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height, false),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
