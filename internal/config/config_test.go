package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "mr.wikipedia.org", cfg.Search.Site)
	assert.Equal(t, 3, cfg.Search.MaxResults)
	assert.Equal(t, 1.0, cfg.Search.RequestsPerSecond)
	assert.Equal(t, 20, cfg.Fetch.TimeoutSecs)
	assert.NotEmpty(t, cfg.Corpus.Dir)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[corpus]
dir = "/data/corpora"

[search]
site = "mr.wikipedia.org"
max_results = 5

[paraphrase]
endpoint = "https://inference.example/models/paraphrase-mr"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/corpora", cfg.Corpus.Dir)
	assert.Equal(t, 5, cfg.Search.MaxResults)
	assert.Equal(t, "https://inference.example/models/paraphrase-mr", cfg.Paraphrase.Endpoint)
	// Unset values still pick up defaults.
	assert.Equal(t, 1.0, cfg.Search.RequestsPerSecond)
	assert.Equal(t, 30, cfg.Paraphrase.TimeoutSecs)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("corpus = [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
