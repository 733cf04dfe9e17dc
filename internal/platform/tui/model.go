package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/isodice/internal/config"
	"github.com/vovakirdan/isodice/internal/core"
)

const (
	statusHeight    = 1  // Rows below the game screen
	statusHoldTicks = 45 // How long a status message stays up
)

// statusPriority decides which cue of a tick reaches the status line.
var statusPriority = map[string]int{
	"step":    1,
	"blip":    2,
	"reset":   3,
	"win":     4,
	"invalid": 5,
}

// resizer is implemented by games that adapt to a new screen size in place.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running isodice.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	log        *log.Logger
	bell       io.Writer // Receives BEL on rejected moves; nil disables

	status      string // Cue shown on the status line
	statusTicks int

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game. cfg holds the
// full terminal size; one row is kept for the status line.
func NewModel(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH -= statusHeight

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		log:        logger,
		bell:       os.Stderr,
	}
}

// Init starts the tick loop. The game is reset by Run before the program starts.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - statusHeight
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// The session keeps its progress; only the viewport changes
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	m.log.Debug("terminal resized", "w", msg.Width, "h", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prevLevel := m.gameState.Level

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.noteCues(result.Cues)

	if m.gameState.Level != prevLevel {
		m.log.Info("level changed", "level", m.gameState.Level+1)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// noteCues updates the status line and rings the bell on rejected moves.
func (m *Model) noteCues(cues []string) {
	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	best := ""
	for _, c := range cues {
		if statusPriority[c] > statusPriority[best] {
			best = c
		}
	}
	if best == "" {
		return
	}

	if best == "invalid" && m.bell != nil {
		//nolint:errcheck // Best-effort feedback
		io.WriteString(m.bell, "\a")
	}
	if m.statusTicks == 0 || statusPriority[best] >= statusPriority[m.status] {
		m.status = best
		m.statusTicks = statusHoldTicks
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home := config.HomeDir()
	if home == "" {
		return
	}
	dir := filepath.Join(home, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(RenderStatus(m.status, m.config.ScreenW))
	return b.String()
}

// Status returns the cue currently shown on the status line.
func (m Model) Status() string {
	return m.status
}

// Run resets the game and starts the Bubble Tea program.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)
	if err := game.Reset(model.config); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
