package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/foreman"
	"github.com/litla-gamaleigan/arcade/internal/registry"
	"github.com/litla-gamaleigan/arcade/internal/storage"
)

// commentaryTimeout bounds each foreman call made from the game loop.
const commentaryTimeout = 8 * time.Second

// CommentaryMsg delivers an asynchronous foreman remark.
type CommentaryMsg foreman.Commentary

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	foreman    *foreman.Client
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	commentary string
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	endRemark  bool // Whether the end-of-round commentary was requested
	newRecord  bool // Whether this round beat the stored best
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, fm *foreman.Client, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		foreman:    fm,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(
		tickCmd(m.config.TickRate),
		m.commentaryCmd(0, foreman.EventStart),
	)
}

// commentaryCmd fetches a foreman remark off the simulation loop.
// Returns nil when no foreman is wired in.
func (m Model) commentaryCmd(score int, event foreman.Event) tea.Cmd {
	if m.foreman == nil || !m.foreman.Enabled() {
		return nil
	}
	fm, gameID := m.foreman, m.game.ID()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commentaryTimeout)
		defer cancel()
		return CommentaryMsg(fm.Commentary(ctx, gameID, score, event))
	}
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

	case CommentaryMsg:
		m.commentary = msg.Message
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch msg.String() {
	case "up", "w":
		m.inputFrame.Set(core.ActionUp)
	case "down", "s":
		m.inputFrame.Set(core.ActionDown)
	case "left", "a":
		m.inputFrame.Set(core.ActionLeft)
	case "right", "d":
		m.inputFrame.Set(core.ActionRight)
	case " ":
		m.inputFrame.Set(core.ActionAct)
	case "enter":
		m.inputFrame.Set(core.ActionConfirm)
		m.inputFrame.Set(core.ActionAct)
	case "x":
		m.inputFrame.Set(core.ActionRelease)
	case "1":
		m.inputFrame.Set(core.ActionBin1)
	case "2":
		m.inputFrame.Set(core.ActionBin2)
	case "3":
		m.inputFrame.Set(core.ActionBin3)
	case "4":
		m.inputFrame.Set(core.ActionBin4)
	case "p", "esc":
		m.inputFrame.Set(core.ActionPause)
	case "r":
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.endRemark = false
		m.newRecord = false
		m.commentary = ""
		m.inputFrame.Clear()
		return m, tea.Batch(
			tickCmd(m.config.TickRate),
			m.commentaryCmd(0, foreman.EventStart),
		)
	}

	prevLevel := m.gameState.Level
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	var cmds []tea.Cmd

	// A finished shift earns a word from the foreman.
	if m.gameState.Level > prevLevel && !m.gameState.GameOver {
		if cmd := m.commentaryCmd(m.gameState.Score, foreman.EventMilestone); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Save score once per round.
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			if best, err := m.store.HighScore(m.game.ID()); err == nil && m.gameState.Score > best {
				m.newRecord = true
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level, m.gameState.Mistakes)
		}
		m.scoreSaved = true
	}

	// One closing remark from the foreman; a beaten record earns the
	// celebratory variant.
	if m.gameState.GameOver && !m.endRemark {
		m.endRemark = true
		event := foreman.EventEnd
		if m.newRecord {
			event = foreman.EventMilestone
		}
		if cmd := m.commentaryCmd(m.gameState.Score, event); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	m.inputFrame.Clear()

	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".gamaleiga", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// GameState returns the state captured on the last simulation tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.newRecord && m.gameState.GameOver {
		m.screen.DrawTextCenteredColored(1, "★ NÝTT MET! ★", core.ColorBrightYellow)
	}

	// The foreman's latest remark goes on the bottom row.
	if m.commentary != "" {
		line := "Verkstjóri: " + m.commentary
		m.screen.DrawTextColored(1, m.screen.Height()-1, line, core.ColorOrange)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, fm *foreman.Client, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, fm, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
