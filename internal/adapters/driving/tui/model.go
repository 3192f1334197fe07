// Package tui is the Bubble Tea chat surface over the answer service.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryukaizen/marai/internal/core/ports/driving"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	historyStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// exchange is one question/answer pair in the transcript.
type exchange struct {
	question string
	answer   string
	failed   bool
}

// answerMsg carries the result of an asynchronous Answer call.
type answerMsg struct {
	question string
	answer   string
	err      error
}

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	service  driving.AnswerService
	ctx      context.Context
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	history  []exchange
	waiting  bool
	ready    bool
}

// New creates a chat model over the given answer service.
func New(service driving.AnswerService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "प्रश्न विचारा..."
	ti.Focus()
	ti.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		service:  service,
		ctx:      context.Background(),
		input:    ti,
		viewport: viewport.New(0, 0),
		spinner:  sp,
	}
}

// WithContext sets the context used for answer calls.
func (m Model) WithContext(ctx context.Context) Model {
	if ctx != nil {
		m.ctx = ctx
	}
	return m
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ih := inputBoxStyle.GetFrameSize()
		_, hh := historyStyle.GetFrameSize()
		reserved := 2 + ih + 1 // header, input frame, status line
		vh := msg.Height - reserved - hh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width) - 4
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && !m.waiting {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.input.Reset()
			m.waiting = true
			return m, tea.Batch(m.spinner.Tick, m.ask(question))
		}

	case answerMsg:
		m.waiting = false
		ex := exchange{question: msg.question, answer: msg.answer}
		if msg.err != nil {
			ex.answer = msg.err.Error()
			ex.failed = true
		}
		m.history = append(m.history, ex)
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := headerStyle.Render("Marai")
	history := historyStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())

	status := ""
	if m.waiting {
		status = m.spinner.View() + " शोधत आहे..."
	}

	return header + "\n" + history + "\n" + input + "\n" + status
}

// ask runs the answer call off the update loop.
func (m Model) ask(question string) tea.Cmd {
	service, ctx := m.service, m.ctx
	return func() tea.Msg {
		answer, err := service.Answer(ctx, question)
		return answerMsg{question: question, answer: answer, err: err}
	}
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return "प्रश्न विचारून सुरुवात करा."
	}

	var b strings.Builder
	for i, ex := range m.history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(questionStyle.Render("तुम्ही: " + ex.question))
		b.WriteString("\n")
		if ex.failed {
			b.WriteString(errorStyle.Render("त्रुटी: " + ex.answer))
		} else {
			b.WriteString(answerStyle.Render("मराई: " + ex.answer))
		}
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
