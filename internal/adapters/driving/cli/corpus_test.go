package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryukaizen/marai/internal/core/domain"
)

// --- Mock implementations ---

type mockCorpusStore struct {
	docs    domain.Corpus
	listErr error
	writes  map[string]string
}

func (m *mockCorpusStore) List(_ context.Context) (domain.Corpus, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.docs, nil
}

func (m *mockCorpusStore) Write(_ context.Context, name, body string) error {
	if m.writes == nil {
		m.writes = make(map[string]string)
	}
	m.writes[name] = body
	return nil
}

func TestCorpusListCmd_Empty(t *testing.T) {
	oldStore := corpusStore
	corpusStore = &mockCorpusStore{}
	defer func() {
		corpusStore = oldStore
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Corpus is empty")
}

func TestCorpusListCmd_ListsDocuments(t *testing.T) {
	oldStore := corpusStore
	corpusStore = &mockCorpusStore{docs: domain.Corpus{
		{Name: "पाणी.txt", Body: "पाणी हे द्रव आहे"},
		{Name: "सूर्य.txt", Body: "सूर्य हा तारा आहे"},
	}}
	defer func() {
		corpusStore = oldStore
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "पाणी.txt")
	assert.Contains(t, buf.String(), "सूर्य.txt")
	assert.Contains(t, buf.String(), "2 documents")
}

func TestCorpusAddCmd_StoresFile(t *testing.T) {
	oldStore := corpusStore
	store := &mockCorpusStore{}
	corpusStore = store
	defer func() {
		corpusStore = oldStore
	}()

	path := filepath.Join(t.TempDir(), "water.txt")
	require.NoError(t, os.WriteFile(path, []byte("पाणी हे द्रव आहे"), 0o644))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "add", "पाणी", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "पाणी हे द्रव आहे", store.writes["पाणी"])
	assert.Contains(t, buf.String(), "Added पाणी")
}

func TestCorpusAddCmd_MissingFile(t *testing.T) {
	oldStore := corpusStore
	corpusStore = &mockCorpusStore{}
	defer func() {
		corpusStore = oldStore
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"corpus", "add", "पाणी", "/nonexistent/water.txt"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestCorpusCmd_StoreNotConfigured(t *testing.T) {
	oldStore := corpusStore
	corpusStore = nil
	defer func() {
		corpusStore = oldStore
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"corpus", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corpus store not configured")
}
