package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// Below minWidthForPanel the stats panel moves under the table.
const (
	minWidthForPanel = 90
	panelWidth       = 26
	maxRuns          = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev run"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next run"),
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

// ScoreboardModel shows the leaderboard of one game: the best runs in a
// table, lifetime stats and the details of the highlighted run.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	runs      []storage.RunRecord
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the leaderboard for gameID.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	title := gameID
	if info, ok := lo.Find(registry.List(), func(g registry.GameInfo) bool { return g.ID == gameID }); ok {
		title = info.Title
	}

	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPanel
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Distance", Width: 9},
		{Title: "Tier", Width: 8},
		{Title: "Hits", Width: 5},
		{Title: "Kills", Width: 6},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.wide() {
		tableWidth -= panelWidth + 4
	}
	used := lo.SumBy(columns[:len(columns)-1], func(c table.Column) int { return c.Width + 2 })
	if spare := tableWidth - used; spare > columns[len(columns)-1].Width {
		columns[len(columns)-1].Width = min(spare, 18)
	}

	height := m.height - 8
	if !m.wide() {
		height -= 7 // Room for the panel below
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
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
	t.SetRows(runRows(m.runs))
	return t
}

// load reads the best runs and lifetime stats. A missing store shows an
// empty board.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(m.gameID, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows, best first.
func runRows(runs []storage.RunRecord) []table.Row {
	return lo.Map(runs, func(r storage.RunRecord, i int) table.Row {
		return table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.0fm", r.Distance),
			r.Tier,
			fmt.Sprintf("%d", r.Hits),
			fmt.Sprintf("%d", r.Kills),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	})
}

// Selected returns the highlighted run.
func (m ScoreboardModel) Selected() (storage.RunRecord, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.RunRecord{}, false
	}
	return m.runs[i], true
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES - "+m.title), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	board := boxStyle.Render(m.renderTableContent())
	panel := boxStyle.Width(panelWidth).Render(m.renderPanel())

	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, board, panel))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to set a high score!")
	}
	return m.table.View()
}

// renderPanel shows lifetime stats and the highlighted run.
func (m ScoreboardModel) renderPanel() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	line := func(name, value string) string {
		return label.Render(fmt.Sprintf("%-9s", name)) + value + "\n"
	}

	var b strings.Builder
	b.WriteString("All runs\n")
	if m.stats != nil {
		b.WriteString(line("Runs", fmt.Sprintf("%d", m.stats.RunsCount)))
		b.WriteString(line("Best", fmt.Sprintf("%d", m.stats.HighScore)))
		b.WriteString(line("Average", fmt.Sprintf("%.1f", m.stats.AvgScore)))
		b.WriteString(line("Longest", fmt.Sprintf("%.0fm", m.stats.LongestRun)))
	} else {
		b.WriteString(label.Render("no data") + "\n")
	}

	if r, ok := m.Selected(); ok {
		b.WriteString("\nSelected\n")
		b.WriteString(line("Cause", lo.Ternary(r.Cause == "", "-", r.Cause)))
		b.WriteString(line("Pickups", fmt.Sprintf("%d", r.Pickups)))
		b.WriteString(line("Run", lo.Substring(r.RunID, 0, 8)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the leaderboard of gameID.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
