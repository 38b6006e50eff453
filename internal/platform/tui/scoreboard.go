package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-invaders/internal/scores"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Scoreboard layout constants
const (
	scoreboardRows = 10 // Entries loaded into the table
	loadTimeout    = 5 * time.Second
)

// StatsSource is implemented by stores that can summarize all scores.
type StatsSource interface {
	Stats(ctx context.Context) (*storage.Stats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// scoresLoadedMsg carries the result of a background load.
type scoresLoadedMsg struct {
	entries []scores.Entry
	stats   *storage.Stats
	err     error
}

// ScoreboardModel is the Bubble Tea model for the interactive leaderboard.
type ScoreboardModel struct {
	svc      scores.Service
	entries  []scores.Entry
	stats    *storage.Stats
	err      error
	loading  bool
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
	now      func() time.Time
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(svc scores.Service, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		svc:     svc,
		loading: true,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		now:     time.Now,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with columns sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Name", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "When", Width: 16},
	}

	// Give spare width to the date column
	used := 5 + 5 + 8 + 6 + 16 + 14
	if extra := m.width - used; extra > 0 {
		columns[4].Width += min(extra, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// loadCmd fetches the table and, when supported, the summary stats.
func (m ScoreboardModel) loadCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		if svc == nil {
			return scoresLoadedMsg{err: scores.ErrUnavailable}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		entries, err := svc.TopScores(ctx, scoreboardRows)
		if err != nil {
			return scoresLoadedMsg{err: err}
		}
		msg := scoresLoadedMsg{entries: entries}
		if src, ok := svc.(StatsSource); ok {
			// Stats are optional; a failure only hides the summary line
			if stats, err := src.Stats(ctx); err == nil {
				msg.stats = stats
			}
		}
		return msg
	}
}

// updateTableRows updates the table with current entries.
func (m *ScoreboardModel) updateTableRows() {
	now := m.now()
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		when := "-"
		if !e.CreatedAt.IsZero() {
			when = humanize.RelTime(e.CreatedAt, now, "ago", "from now")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Initials,
			fmt.Sprintf("%06d", e.Score),
			fmt.Sprintf("%d", e.Level),
			when,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init starts the first load.
func (m ScoreboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case scoresLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		m.stats = msg.stats
		m.updateTableRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadCmd()

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SPACE INVADERS - HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if m.stats != nil && m.stats.Games > 0 {
		summary := fmt.Sprintf("%s games  best %s  avg %.0f  last played %s",
			humanize.Comma(int64(m.stats.Games)),
			humanize.Comma(int64(m.stats.HighScore)),
			m.stats.AvgScore,
			humanize.RelTime(m.stats.LastPlayed, m.now(), "ago", "from now"),
		)
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(statsStyle.Render(centerText(summary, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a status message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loading && len(m.entries) == 0:
		return emptyStyle.Render("Loading scores...")
	case m.err != nil:
		return emptyStyle.Render("Scores unavailable:\n" + m.err.Error())
	case len(m.entries) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// centerText pads text with spaces to center it in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	pad := strings.Repeat(" ", (width-w)/2)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the interactive scoreboard until the user quits.
func RunScoreboard(svc scores.Service, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(svc, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
