// Package filesystem implements the corpus store over a flat directory of
// UTF-8 text files, one document per file.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ryukaizen/marai/internal/core/domain"
	"github.com/ryukaizen/marai/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store reads and writes corpus documents in a single directory.
type Store struct {
	dir string
}

// New creates a corpus store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create corpus dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the corpus directory path.
func (s *Store) Dir() string { return s.dir }

// List reads every .txt file in the corpus directory. The filename, with
// extension, is the document name. Directory entries are returned sorted by
// name, which fixes the corpus order the index aligns to.
func (s *Store) List(_ context.Context) (domain.Corpus, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir %s: %w", s.dir, err)
	}

	var corpus domain.Corpus
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), domain.CorpusExtension) {
			continue
		}
		body, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w", entry.Name(), err)
		}
		corpus = append(corpus, domain.Document{Name: entry.Name(), Body: string(body)})
	}
	return corpus, nil
}

// Write creates or overwrites the document file derived from name. There is
// no atomicity guarantee; a partial file on crash is an accepted risk.
func (s *Store) Write(_ context.Context, name, body string) error {
	filename := domain.SanitizeName(name)
	if filename == domain.CorpusExtension {
		return fmt.Errorf("%w: blank document name", domain.ErrInvalidInput)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", filename, err)
	}
	return nil
}
