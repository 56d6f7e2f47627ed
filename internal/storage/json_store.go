package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sauravks/leetdash/internal/logger"
	"github.com/sauravks/leetdash/internal/models"
)

// JSONStore keeps the state document as a JSON file on disk, the same
// data/state.json the static dashboard serves. Both the canonical flat shape
// and the legacy date-keyed "assigned" shape are accepted on load; saves
// always write the flat shape.
type JSONStore struct {
	path string
	doc  models.Document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: expandHome(configPath)}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = models.Document{Version: 1}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'leetdash init' first")
		}
		return fmt.Errorf("failed to read state document: %w", err)
	}

	doc, warnings, err := models.DecodeDocument(data)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("Malformed record in state document", "path", s.path, "detail", w)
	}

	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Document() models.Document {
	return s.doc
}

func (s *JSONStore) SaveDocument(doc models.Document) error {
	s.doc = doc
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) save() error {
	data, err := models.EncodeDocument(s.doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write state document: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
