package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lowrey/pivotfall/internal/game"
)

// TickMsg drives the session clock at a fixed interval.
type TickMsg time.Time

// frameInterval is the elapsed time fed to the session per tick. The
// engine's own timers decide when gravity and inputs actually fire.
const frameInterval = 50 * time.Millisecond

type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenPlaying
	ScreenGameOver
)

type Model struct {
	screen  Screen
	session *game.Session
	width   int
	height  int
}

func NewModel() Model {
	return Model{screen: ScreenWelcome}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.screen == ScreenPlaying && m.session != nil {
		m.session.Advance(frameInterval)
		if m.session.Lost {
			m.screen = ScreenGameOver
		}
	}
	return m, tickCmd()
}

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
	case "enter", "s", "1":
		m.session = game.NewSession(time.Now().UnixNano())
		m.screen = ScreenPlaying
	}
	return m, nil
}

func (m Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || m.session.Lost {
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		m.session.Handle(game.IntentLeft)
	case "right", "l":
		m.session.Handle(game.IntentRight)
	case "down", "j":
		m.session.Handle(game.IntentSoftDrop)
	case "up", "x":
		m.session.Handle(game.IntentRotate)
	case " ", "c":
		m.session.Handle(game.IntentHardDrop)
		if m.session.Lost {
			m.screen = ScreenGameOver
		}
	}
	return m, nil
}

func (m Model) handleGameOverKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.screen = ScreenWelcome
		m.session = nil
	case "r":
		m.session.Reset()
		m.screen = ScreenPlaying
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case ScreenWelcome:
		return m.renderCentered(RenderWelcome())
	case ScreenPlaying:
		return m.renderPlaying()
	case ScreenGameOver:
		score := 0
		if m.session != nil {
			score = m.session.Score
		}
		return m.renderCentered(RenderGameOver(score) + "\n\nPress R to restart, ENTER for menu")
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

	board := RenderBoard(m.session)
	info := RenderInfo(m.session)

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(info)

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(board)

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
	)

	return m.renderCentered(mainContent)
}
