package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litla-gamaleigan/arcade/internal/foreman"
)

// askTimeout bounds each foreman question.
const askTimeout = 30 * time.Second

// askExchange is one question/answer pair in the session transcript.
type askExchange struct {
	Question string
	Answer   string
}

// askAnswerMsg delivers the foreman's answer for the pending question.
type askAnswerMsg struct {
	answer string
}

// AskModel is the Bubble Tea model for the free-form foreman Q&A panel.
type AskModel struct {
	foreman  *foreman.Client
	input    textinput.Model
	spinner  spinner.Model
	history  []askExchange
	waiting  bool
	width    int
	height   int
	quitting bool
}

// NewAskModel creates the Q&A panel bound to a foreman client.
func NewAskModel(fm *foreman.Client, width, height int) AskModel {
	ti := textinput.New()
	ti.Placeholder = "Spurðu verkstjórann..."
	ti.CharLimit = 280
	ti.Width = width - 6
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	return AskModel{
		foreman: fm,
		input:   ti,
		spinner: sp,
		width:   width,
		height:  height,
	}
}

// Init initializes the panel.
func (m AskModel) Init() tea.Cmd {
	return textinput.Blink
}

// askCmd sends the question to the foreman off the UI loop.
func (m AskModel) askCmd(question string) tea.Cmd {
	fm := m.foreman
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()
		return askAnswerMsg{answer: fm.Ask(ctx, question)}
	}
}

// Update handles messages for the Q&A panel.
func (m AskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if m.waiting {
				return m, nil
			}
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.history = append(m.history, askExchange{Question: question})
			m.input.Reset()
			m.waiting = true
			return m, tea.Batch(m.askCmd(question), m.spinner.Tick)
		}

	case askAnswerMsg:
		if len(m.history) > 0 {
			m.history[len(m.history)-1].Answer = msg.answer
		}
		m.waiting = false
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the transcript and the input line.
func (m AskModel) View() string {
	if m.quitting {
		return ""
	}

	questionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	answerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(questionStyle.Render("VERKSTJÓRINN SVARAR"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Enter: senda  |  Esc: hætta"))
	b.WriteString("\n\n")

	// Show the tail of the transcript that fits above the input line.
	maxLines := m.height - 7
	lines := make([]string, 0, len(m.history)*3)
	for _, ex := range m.history {
		lines = append(lines, questionStyle.Render("Þú: ")+ex.Question)
		if ex.Answer != "" {
			lines = append(lines, answerStyle.Render("Verkstjóri: ")+ex.Answer)
		}
		lines = append(lines, "")
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	if m.waiting {
		b.WriteString(m.spinner.View())
		b.WriteString(dimStyle.Render(" verkstjórinn hugsar..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	return b.String()
}

// RunAsk runs the Q&A panel until the user exits.
func RunAsk(fm *foreman.Client, width, height int) error {
	model := NewAskModel(fm, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
