package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arena/internal/arena"
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/engine"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// maxEventLines bounds the event log under the board.
const maxEventLines = 5

// Options configures an interactive or watched game.
type Options struct {
	Settings config.Settings
	Game     config.GameConfig
	Seed     int64 // 0 = random based on time
	Levels   int   // 0 = no limit
	TickRate int
	AutoNext bool // start the next level without waiting for input
}

// Model is the Bubble Tea model for playing or watching a game.
type Model struct {
	opts       Options
	sim        *arena.Simulation
	store      *storage.Store
	renderer   *Renderer
	keys       *KeyMapper
	inputFrame core.InputFrame
	events     []string
	seed       int64
	paused     bool
	showScores bool // Candidate scores of heuristic bots under the board
	quitting   bool
	scoreSaved bool // Whether scores have been saved for the finished game
}

// NewModel creates a new Bubble Tea model and its first simulation.
func NewModel(opts Options, store *storage.Store) (Model, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = opts.Settings.TickRate
	}

	m := Model{
		opts:       opts,
		store:      store,
		renderer:   NewRenderer(opts.Settings.Palette),
		keys:       NewKeyMapper(opts.Game.Players),
		inputFrame: core.NewInputFrame(),
	}
	if err := m.newGame(opts.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newGame replaces the simulation. Seed 0 uses the system random source.
func (m *Model) newGame(seed int64) error {
	var (
		sim *arena.Simulation
		err error
	)
	if seed == 0 {
		seed = time.Now().UnixNano()
		sim, err = arena.NewSimulationWithRNG(m.opts.Settings, m.opts.Game, core.NewSystemRandom(seed), seed)
	} else {
		sim, err = arena.NewSimulation(m.opts.Settings, m.opts.Game, seed)
	}
	if err != nil {
		return err
	}

	m.sim = sim
	m.seed = seed
	m.events = nil
	m.paused = false
	m.scoreSaved = false
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		m.showScores = !m.showScores
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// maxLevels converts the level option to a cap.
func (m Model) maxLevels() int {
	if m.opts.Levels <= 0 {
		return math.MaxInt
	}
	return m.opts.Levels
}

// finished reports whether the game cannot continue.
func (m Model) finished() bool {
	s := m.sim.State
	return s.GameOver || (s.LevelComplete && !m.sim.CanAdvance(m.maxLevels()))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	defer m.inputFrame.Clear()

	if m.inputFrame.Has(core.ActionRestart) && m.finished() {
		seed := int64(0)
		if m.opts.Seed != 0 {
			// Keep restarts reproducible when a seed was given
			seed = m.seed + 1
		}
		if err := m.newGame(seed); err != nil {
			m.events = append(m.events, "restart failed: "+err.Error())
		}
		return m, tickCmd(m.opts.TickRate)
	}

	if m.inputFrame.Has(core.ActionPause) && !m.sim.State.Terminal() {
		m.paused = !m.paused
	}

	for slot := range m.opts.Game.Players {
		if d, ok := m.inputFrame.SteerFor(slot); ok {
			if h := m.sim.Human(slot); h != nil {
				h.Steer(d)
			}
		}
	}

	state := m.sim.State
	switch {
	case state.Terminal():
		if m.sim.CanAdvance(m.maxLevels()) && (m.opts.AutoNext || m.inputFrame.Has(core.ActionNext)) {
			m.sim.NextLevel()
			m.logEvent(fmt.Sprintf("level %d started", m.sim.State.Level))
		} else if m.finished() {
			m.saveScores()
		}
	case !m.paused:
		res := m.sim.Step()
		for _, e := range res.Events {
			if line := describeEvent(e, state); line != "" {
				m.logEvent(line)
			}
		}
	}

	return m, tickCmd(m.opts.TickRate)
}

func (m *Model) logEvent(line string) {
	m.events = append(m.events, line)
	if len(m.events) > maxEventLines {
		m.events = m.events[len(m.events)-maxEventLines:]
	}
}

// describeEvent turns a domain event into a log line. Routine food events are skipped.
func describeEvent(e engine.Event, state *engine.GameState) string {
	name := func(id int) string {
		if sn := state.Snake(id); sn != nil {
			return sn.Name
		}
		return fmt.Sprintf("snake %d", id)
	}

	switch ev := e.(type) {
	case engine.SnakeDied:
		return fmt.Sprintf("%s %s", name(ev.SnakeID), ev.Reason)
	case engine.FoodEaten:
		return fmt.Sprintf("%s ate %s (+%d)", name(ev.SnakeID), ev.Kind, ev.Points)
	case engine.LevelCompleted:
		if ev.HasWinner {
			return fmt.Sprintf("level complete: %s, winner %s", ev.Reason, name(ev.WinnerID))
		}
		return "level complete: " + ev.Reason
	case engine.GameOver:
		return "game over"
	}
	return ""
}

// saveScores records human results once per finished game.
func (m *Model) saveScores() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	state := m.sim.State
	for _, sn := range state.Snakes {
		if sn.IsBot || sn.Score == 0 {
			continue
		}
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(sn.Name, string(state.Mode), state.Level, sn.Score)
	}
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".snakearena", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("board_%d_%s.txt", m.seed, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.sim.State.Board.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.sim.State
	var b strings.Builder
	b.WriteString(m.renderer.RenderHUD(state, m.sim.Ctx.Settings))
	b.WriteString("\n\n")
	b.WriteString(m.renderer.RenderBoard(state.Board))
	b.WriteString("\n\n")

	status := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	switch {
	case m.finished():
		b.WriteString(status.Render("GAME OVER  r restart  q quit"))
	case state.LevelComplete:
		b.WriteString(status.Render("LEVEL COMPLETE  n next level  q quit"))
	case m.paused:
		b.WriteString(status.Render("PAUSED  p resume"))
	default:
		b.WriteString(m.renderer.dim.Render(fmt.Sprintf("seed %d  p pause  tab scores  ctrl+s screenshot  q quit", m.seed)))
	}

	if m.showScores {
		for _, line := range m.candidateLines() {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}

	for _, line := range m.events {
		b.WriteString("\n")
		b.WriteString(m.renderer.dim.Render(line))
	}
	return b.String()
}

// candidateLines shows what each living heuristic bot would pick next.
func (m Model) candidateLines() []string {
	state := m.sim.State
	var lines []string
	for i, sn := range state.Snakes {
		h := m.sim.Heuristic(i)
		if h == nil || !sn.Alive {
			continue
		}

		d := h.Evaluate(state, sn.ID)
		var sb strings.Builder
		sb.WriteString(sn.Name + ":")
		for _, c := range d.Candidates {
			mark := " "
			if c.Direction == d.Direction {
				mark = "*"
			}
			score := "x"
			if c.Legal {
				score = fmt.Sprintf("%.1f", c.Score)
			}
			if c.Trapped {
				score += "!"
			}
			fmt.Fprintf(&sb, " %s%s %s", mark, c.Direction, score)
		}
		if d.Stuck {
			sb.WriteString("  stuck")
		}
		lines = append(lines, m.renderer.snakeStyle(sn.ID).Render(sb.String()))
	}
	return lines
}

// Run starts the Bubble Tea program for a game.
func Run(opts Options, store *storage.Store) error {
	model, err := NewModel(opts, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
