package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/fish-clicker/internal/core"
	"github.com/vovakirdan/fish-clicker/internal/fish"
	"github.com/vovakirdan/fish-clicker/internal/logging"
	"github.com/vovakirdan/fish-clicker/internal/storage"
)

// helpRows is the number of terminal rows below the playfield.
const helpRows = 1

// Options configures a terminal game session.
type Options struct {
	Game          fish.Options
	Runtime       core.RuntimeConfig
	Store         *storage.Store // Optional; nil disables score saving
	Logger        *log.Logger    // Optional; nil discards
	Player        string
	ScreenshotDir string // Empty disables ctrl+s
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	game       *fish.Game
	screen     *core.Screen
	proj       Projection
	queue      *core.EventQueue
	keyMapper  *KeyMapper
	help       help.Model
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	shotDir    string
	sessionID  uuid.UUID
	state      core.GameState
	scoreboard *ScoreboardModel
	scoreSaved bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model and resets its game.
func NewModel(opts Options) *Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	game := fish.New(opts.Game)
	game.Reset(cfg)

	m := &Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		queue:     core.NewEventQueue(),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		player:    opts.Player,
		shotDir:   opts.ScreenshotDir,
		sessionID: uuid.New(),
	}
	m.help.Width = cfg.ScreenW
	m.proj = m.projection()
	m.logger.Debug("session created", "session", m.sessionID, "seed", cfg.Seed)
	return m
}

func (m *Model) projection() Projection {
	return NewProjection(m.config.ScreenW, playRows(m.config.ScreenH), m.game.Viewport())
}

// playRows is the playfield height for a terminal of h rows.
func playRows(h int) int {
	return core.Max(h-helpRows, 1)
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.keyMapper.MapKey(msg)
	switch cmd {
	case CommandQuit:
		return m, m.quit()
	case CommandScreenshot:
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	case CommandScores:
		if !m.state.Playing {
			sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.scoreboard = &sb
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.queue.Push(core.KeyPress(action))
	}
	return m, nil
}

// handleMouse converts a click on the playfield into a world-space event.
// A cell that shows part of the fish aims at that part.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	btn := m.keyMapper.MapMouse(msg)
	if btn == core.ButtonNone || !m.proj.InGrid(msg.X, msg.Y) {
		return
	}
	x, y := m.proj.Aim(msg.X, msg.Y, m.game.Sprite().Bounds())
	m.queue.Push(core.Click(btn, x, y))
}

// handleResize keeps the game running; only the projection changes.
func (m *Model) handleResize(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, playRows(h))
	m.help.Width = w
	m.proj = m.projection()
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.queue.Drain())
	m.state = res.State

	if res.Hits > 0 {
		m.logger.Debug("fish clicked", "score", res.State.Score, "speed", m.game.Sprite().Speed)
	}
	if res.State.Exit {
		return m, m.quit()
	}
	return m, tickCmd(m.config.TickRate)
}

// quit ends the session, saving the score once.
func (m *Model) quit() tea.Cmd {
	m.saveScore()
	m.quitting = true
	return tea.Quit
}

// Finish saves the score of a session that stopped without a quit key,
// such as a dropped SSH connection. Call it after the program has exited.
func (m *Model) Finish() {
	m.saveScore()
}

func (m *Model) saveScore() {
	if m.scoreSaved || m.state.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(fish.ID, m.sessionID, m.player, m.state.Score); err != nil {
		m.logger.Error("could not save score", "score", m.state.Score, "error", err)
		return
	}
	m.logger.Info("score saved", "score", m.state.Score, "session", m.sessionID, "player", m.player)
}

// updateScoreboard delegates to the scoreboard until it is closed.
func (m *Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// The game is paused but the tick loop keeps running.
		return m, tickCmd(m.config.TickRate)
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.handleResize(wsm.Width, wsm.Height)
	}

	next, _ := m.scoreboard.Update(msg)
	sb, _ := next.(ScoreboardModel)
	switch {
	case sb.IsQuitting():
		m.scoreboard = nil
		return m, m.quit()
	case sb.IsGoingBack():
		m.scoreboard = nil
	default:
		m.scoreboard = &sb
	}
	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() error {
	if m.shotDir == "" {
		return errors.New("screenshots disabled")
	}
	m.render()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return fmt.Errorf("create screenshot directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s.txt", fish.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(PlainText(m.screen)+"\n"), 0o600); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// render draws the current snapshot into the screen buffer.
func (m *Model) render() {
	DrawSnapshot(m.screen, m.game.Snapshot(), m.proj)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last stepped game state.
func (m *Model) State() core.GameState {
	return m.state
}

// SessionID returns the identifier recorded with this session's score.
func (m *Model) SessionID() uuid.UUID {
	return m.sessionID
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	m.Finish()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
