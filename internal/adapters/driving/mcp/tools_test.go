package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryukaizen/marai/internal/core/domain"
)

// --- Mock implementations ---

type mockAnswerService struct {
	answer    string
	err       error
	lastQuery string
}

func (m *mockAnswerService) Answer(_ context.Context, query string) (string, error) {
	m.lastQuery = query
	return m.answer, m.err
}

func TestNewServer_RequiresAnswerService(t *testing.T) {
	_, err := NewServer(nil)
	assert.ErrorIs(t, err, ErrMissingAnswerService)
}

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the answer", func(t *testing.T) {
		mock := &mockAnswerService{answer: "पाणी हे एक रासायनिक संयुग आहे"}
		server, err := NewServer(mock)
		require.NoError(t, err)

		input := AskInput{Question: "पाणी म्हणजे काय"}
		_, output, err := server.handleAsk(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "पाणी म्हणजे काय", mock.lastQuery)
		assert.Equal(t, "पाणी हे एक रासायनिक संयुग आहे", output.Answer)
		assert.True(t, output.Answered)
	})

	t.Run("marks the apology as unanswered", func(t *testing.T) {
		mock := &mockAnswerService{answer: domain.Apology}
		server, err := NewServer(mock)
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "क्ष"})

		require.NoError(t, err)
		assert.Equal(t, domain.Apology, output.Answer)
		assert.False(t, output.Answered)
	})

	t.Run("returns error on service failure", func(t *testing.T) {
		mock := &mockAnswerService{err: errors.New("corpus unreadable")}
		server, err := NewServer(mock)
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "पाणी"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "corpus unreadable")
	})
}
