package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockAnswerService struct {
	answer string
	err    error
	calls  int
}

func (m *mockAnswerService) Answer(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.answer, m.err
}

func TestNew_InitialState(t *testing.T) {
	m := New(&mockAnswerService{})

	assert.False(t, m.ready)
	assert.False(t, m.waiting)
	assert.Empty(t, m.history)
	assert.Equal(t, "> ", m.input.Prompt)
}

func TestUpdate_WindowSizeMarksReady(t *testing.T) {
	m := New(&mockAnswerService{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model := updated.(Model)

	assert.True(t, model.ready)
	assert.GreaterOrEqual(t, model.viewport.Height, 3)
}

func TestUpdate_EnterAsksService(t *testing.T) {
	svc := &mockAnswerService{answer: "पाण्याचे उत्तर"}
	m := New(svc)
	m.input.SetValue("पाणी म्हणजे काय")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	assert.True(t, model.waiting)
	assert.Empty(t, model.input.Value())
	require.NotNil(t, cmd)
}

func TestUpdate_EnterIgnoresBlankInput(t *testing.T) {
	m := New(&mockAnswerService{})
	m.input.SetValue("   ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	assert.False(t, model.waiting)
	assert.Nil(t, cmd)
}

func TestUpdate_AnswerAppendsHistory(t *testing.T) {
	m := New(&mockAnswerService{})
	m.waiting = true

	updated, _ := m.Update(answerMsg{question: "पाणी", answer: "पाणी हे द्रव आहे"})
	model := updated.(Model)

	require.Len(t, model.history, 1)
	assert.False(t, model.waiting)
	assert.Equal(t, "पाणी", model.history[0].question)
	assert.Equal(t, "पाणी हे द्रव आहे", model.history[0].answer)
	assert.False(t, model.history[0].failed)
}

func TestUpdate_AnswerErrorMarksFailed(t *testing.T) {
	m := New(&mockAnswerService{})
	m.waiting = true

	updated, _ := m.Update(answerMsg{question: "पाणी", err: errors.New("corpus unreadable")})
	model := updated.(Model)

	require.Len(t, model.history, 1)
	assert.True(t, model.history[0].failed)
	assert.Equal(t, "corpus unreadable", model.history[0].answer)
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := New(&mockAnswerService{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAsk_CallsService(t *testing.T) {
	svc := &mockAnswerService{answer: "उत्तर"}
	m := New(svc)

	msg := m.ask("प्रश्न")()
	answer, ok := msg.(answerMsg)

	require.True(t, ok)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "प्रश्न", answer.question)
	assert.Equal(t, "उत्तर", answer.answer)
	assert.NoError(t, answer.err)
}

func TestRenderHistory_Empty(t *testing.T) {
	m := New(&mockAnswerService{})

	assert.Contains(t, m.renderHistory(), "प्रश्न विचारून")
}

func TestRenderHistory_ContainsExchanges(t *testing.T) {
	m := New(&mockAnswerService{})
	m.history = []exchange{
		{question: "पाणी म्हणजे काय", answer: "पाणी हे द्रव आहे"},
	}

	got := m.renderHistory()
	assert.Contains(t, got, "पाणी म्हणजे काय")
	assert.Contains(t, got, "पाणी हे द्रव आहे")
}
