package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// historyLimit caps the runs loaded per game.
const historyLimit = 100

// ScoreSource is the run history the scoreboard reads.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardModel browses the run history of every registered game, one
// game at a time in menu order.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	store  ScoreSource

	runs  []storage.ScoreEntry
	stats *storage.GameStats
	err   error

	table  table.Model
	help   help.Model
	keys   KeyMap
	width  int
	height int
	done   bool
}

// NewScoreboardModel opens the scoreboard on gameID, or on the first game
// when gameID is empty or unknown.
func NewScoreboardModel(store ScoreSource, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultKeyMap(),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.cursor = i
		}
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 10},
			{Title: "Run", Width: 10},
			{Title: "Played", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
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

// load reads the selected game's runs and stats and rebuilds the rows.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if len(m.games) == 0 || m.store == nil {
		m.table.SetRows(nil)
		return
	}

	id := m.games[m.cursor].ID
	if m.runs, m.err = m.store.TopScores(id, historyLimit); m.err == nil {
		m.stats, m.err = m.store.GetGameStats(id)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			shortRunID(r.RunID),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shortRunID trims a uuid to its first block.
func shortRunID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Selected returns the game being shown.
func (m ScoreboardModel) Selected() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].ID
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

// Update switches games with Left/Right, scrolls with Up/Down and closes
// on Cancel or Quit.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.done = true
			return m, tea.Quit
		}
		intent, ok := m.keys.Intent(msg)
		if !ok {
			return m, nil
		}
		switch intent {
		case core.IntentCancel:
			m.done = true
			return m, tea.Quit
		case core.IntentLeft, core.IntentRight:
			if n := len(m.games); n > 0 {
				step := 1
				if intent == core.IntentLeft {
					step = n - 1
				}
				m.cursor = (m.cursor + step) % n
				m.load()
			}
			return m, nil
		case core.IntentUp:
			m.table.MoveUp(1)
		case core.IntentDown:
			m.table.MoveDown(1)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, m.height-9))
	}
	return m, nil
}

func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardStatsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(m.body())))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(boardHelp{m.keys})))
	return b.String()
}

// boardHelp narrows the arcade key map to the keys the scoreboard reads.
type boardHelp struct{ k KeyMap }

func (h boardHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Left, h.k.Right, h.k.Up, h.k.Down, h.k.Cancel, h.k.Quit}
}

func (h boardHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

// tabs lists the games, collapsing to "< Title >" when they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return boardDimStyle.Render("no games registered")
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			parts[i] = boardActiveTab.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := strings.Join(parts, " ")
	if m.width > 0 && lipgloss.Width(line) > m.width-2 {
		line = boardActiveTab.Render("< " + m.games[m.cursor].Title + " >")
	}
	return line
}

func (m ScoreboardModel) statsLine() string {
	switch {
	case m.err != nil:
		return "history unavailable: " + m.err.Error()
	case m.stats == nil || m.stats.GamesCount == 0:
		return "no runs yet"
	}
	s := m.stats
	return fmt.Sprintf("Runs %d   Best %d   Avg %.0f   Last %s",
		s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("Jan 02 15:04"))
}

func (m ScoreboardModel) body() string {
	if len(m.runs) == 0 {
		id := m.Selected()
		return boardDimStyle.Italic(true).Padding(1, 2).
			Render(fmt.Sprintf("Nothing recorded.\nRun 'arcade play %s' to set the first score.", id))
	}
	return m.table.View()
}

// RunScoreboard shows the scoreboard until the user leaves it.
func RunScoreboard(store ScoreSource, gameID string, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
