package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// Results layout constants
const (
	maxRows       = 100 // Max rows to load per tab
	minTableWidth = 40
)

// resultsTab identifies one page of the results viewer.
type resultsTab int

const (
	tabSingle resultsTab = iota
	tabMulti
	tabAlgorithms
	tabRuns
	tabCount
)

func (t resultsTab) title() string {
	switch t {
	case tabSingle:
		return "Single"
	case tabMulti:
		return "Multi"
	case tabAlgorithms:
		return "Algorithms"
	case tabRuns:
		return "Recent runs"
	default:
		return ""
	}
}

// ResultsKeyMap defines the key bindings for the results viewer.
type ResultsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
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
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for browsing stored scores and runs.
type ResultsModel struct {
	tab    resultsTab
	store  *storage.Store
	table  table.Model
	help   help.Model
	keys   ResultsKeyMap
	loaded bool  // Whether the current tab has any rows
	err    error // Last load error, shown instead of the table
	width  int
	height int
}

// NewResultsModel creates a results viewer sized to the terminal.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	h := help.New()
	h.ShowAll = false

	m := ResultsModel{
		store:  store,
		keys:   DefaultResultsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// columns returns the table layout for the current tab.
func (m ResultsModel) columns() []table.Column {
	switch m.tab {
	case tabAlgorithms:
		return []table.Column{
			{Title: "Algorithm", Width: 12},
			{Title: "Agents", Width: 8},
			{Title: "Avg score", Width: 10},
			{Title: "Avg ticks", Width: 10},
			{Title: "Best", Width: 6},
			{Title: "Wins", Width: 6},
		}
	case tabRuns:
		return []table.Column{
			{Title: "Run", Width: 10},
			{Title: "Seed", Width: 12},
			{Title: "Mode", Width: 7},
			{Title: "Ticks", Width: 7},
			{Title: "Winner", Width: 7},
			{Title: "Date", Width: 14},
		}
	default:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 14},
			{Title: "Level", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 14},
		}
	}
}

// createTable creates a new table for the current tab.
func (m ResultsModel) createTable() table.Model {
	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(height),
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

// reload rebuilds the table and loads rows for the current tab.
func (m *ResultsModel) reload() {
	m.table = m.createTable()
	m.err = nil

	var rows []table.Row
	if m.store != nil {
		rows, m.err = m.loadRows()
	}
	m.loaded = len(rows) > 0
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ResultsModel) loadRows() ([]table.Row, error) {
	switch m.tab {
	case tabSingle, tabMulti:
		mode := config.ModeSingle
		if m.tab == tabMulti {
			mode = config.ModeMulti
		}
		scores, err := m.store.TopScores(string(mode), maxRows)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(scores))
		for i, s := range scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				s.Player,
				fmt.Sprintf("%d", s.Level),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows, nil

	case tabAlgorithms:
		sums, err := m.store.AlgorithmSummaries()
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(sums))
		for i, a := range sums {
			rows[i] = table.Row{
				a.Algorithm,
				fmt.Sprintf("%d", a.Agents),
				fmt.Sprintf("%.2f", a.AvgScore),
				fmt.Sprintf("%.1f", a.AvgTicks),
				fmt.Sprintf("%d", a.BestScore),
				fmt.Sprintf("%d", a.Wins),
			}
		}
		return rows, nil

	case tabRuns:
		runs, err := m.store.RecentRuns(maxRows)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(runs))
		for i, r := range runs {
			winner := "-"
			if r.WinnerID != 0 {
				winner = fmt.Sprintf("%d", r.WinnerID)
			}
			rows[i] = table.Row{
				shortID(r.ID),
				fmt.Sprintf("%d", r.Seed),
				r.Mode,
				fmt.Sprintf("%d", r.Ticks),
				winner,
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows, nil
	}
	return nil, nil
}

// shortID trims a run id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results viewer.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results viewer.
func (m ResultsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("SNAKE ARENA RESULTS"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, tabCount)
	for t := range tabCount {
		if t == m.tab {
			tabs[t] = activeTabStyle.Render(t.title())
		} else {
			tabs[t] = tabStyle.Render(t.title())
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Width(minTableWidth).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load results:\n" + m.err.Error())
	case !m.loaded:
		return emptyStyle.Render("Nothing recorded yet.\nPlay a game or run a batch first.")
	}
	return m.table.View()
}

// centerText pads a possibly styled block so it is centered in width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunResults runs the results viewer.
func RunResults(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
