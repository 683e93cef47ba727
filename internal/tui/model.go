package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/hersh/tetromino/internal/config"
	"github.com/hersh/tetromino/internal/game"
	"github.com/hersh/tetromino/internal/piece"
)

// --- Custom tea.Msg types ---

// GameTickMsg drops the piece one row. Gen ties the tick to the session
// that scheduled it so ticks from a finished session are ignored.
type GameTickMsg struct {
	Gen  int
	Time time.Time
}

// --- Screens ---

type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// --- Model ---

type Model struct {
	screen  Screen
	cfg     config.Config
	log     *logrus.Logger
	session *game.Session
	gen     int
	width   int
	height  int
	err     error
}

func NewModel(cfg config.Config, log *logrus.Logger) Model {
	return Model{
		screen: ScreenWelcome,
		cfg:    cfg,
		log:    log,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func gameTickCmd(gen int, speed time.Duration) tea.Cmd {
	return tea.Tick(speed, func(t time.Time) tea.Msg {
		return GameTickMsg{Gen: gen, Time: t}
	})
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case GameTickMsg:
		return m.handleGameTick(msg)
	}
	return m, nil
}

// --- Key handlers ---

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.screen == ScreenPlaying {
			// Don't quit during gameplay with q
			break
		}
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenWelcome:
		return m.handleWelcomeKeys(msg)
	case ScreenPlaying:
		return m.handlePlayingKeys(msg)
	case ScreenGameOver:
		return m.handleGameOverKeys(msg)
	}
	return m, nil
}

func (m Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "s", "enter":
		return m.startGame()
	}
	return m, nil
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	s, err := game.NewSessionFromConfig(m.cfg, m.log)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.session = s
	m.gen++
	m.screen = ScreenPlaying
	return m, gameTickCmd(m.gen, m.cfg.DropInterval)
}

// keyCommands maps keys to piece commands.
var keyCommands = map[string]piece.MoveCommand{
	"left":  piece.Left,
	"h":     piece.Left,
	"right": piece.Right,
	"l":     piece.Right,
	"down":  piece.Down,
	"j":     piece.Down,
	"up":    piece.RotateCW,
	"x":     piece.RotateCW,
	"z":     piece.RotateCCW,
}

func (m Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || m.session.IsGameOver {
		return m, nil
	}

	key := msg.String()
	if cmd, ok := keyCommands[key]; ok {
		m.session.Move(cmd)
	} else if key == " " || key == "c" {
		m.session.HardDrop()
	}

	m.checkGameOver()
	return m, nil
}

func (m Model) handleGameOverKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.screen = ScreenWelcome
		m.session = nil
		return m, nil
	case "r":
		return m.startGame()
	}
	return m, nil
}

// --- Tick handlers ---

func (m Model) handleGameTick(msg GameTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.screen != ScreenPlaying || m.session == nil || m.session.IsGameOver {
		return m, nil
	}

	m.session.Tick()
	m.checkGameOver()
	if m.screen != ScreenPlaying {
		return m, nil
	}
	return m, gameTickCmd(m.gen, m.cfg.DropInterval)
}

func (m *Model) checkGameOver() {
	if m.session != nil && m.session.IsGameOver {
		m.screen = ScreenGameOver
	}
}

// --- View ---

func (m Model) View() string {
	if m.err != nil {
		return m.renderCentered("Error: " + m.err.Error() + "\nPress Ctrl+C to exit.")
	}

	switch m.screen {
	case ScreenWelcome:
		return m.renderCentered(RenderWelcome())
	case ScreenPlaying:
		return m.renderPlaying()
	case ScreenGameOver:
		return m.renderGameOver()
	}
	return ""
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderPlaying() string {
	if m.session == nil {
		return "Loading..."
	}

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(RenderInfo(m.session))

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(RenderBoard(m.session))

	return m.renderCentered(lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
		RenderControls(),
	))
}

func (m Model) renderGameOver() string {
	if m.session == nil {
		return m.renderCentered("Game Over")
	}
	content := RenderGameOver(m.session.Lines, m.session.Pieces)
	content += "\n\nPress R to play again, ENTER for menu"
	return m.renderCentered(content)
}
