package storage

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sauravks/leetdash/internal/logger"
	"github.com/sauravks/leetdash/internal/models"
)

// HTTPStore fetches the published state document from a URL, e.g. the
// data/state.json a static dashboard deployment serves. It is strictly
// read-only: one fetch per load, no retry, no caching across loads.
type HTTPStore struct {
	url    string
	client *http.Client
	doc    models.Document
}

func NewHTTPStore(url string) *HTTPStore {
	return &HTTPStore{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPStore) Init() error {
	return fmt.Errorf("cannot initialize a remote state document: %s", s.url)
}

func (s *HTTPStore) Load() error {
	res, err := s.client.Get(s.url)
	if err != nil {
		return fmt.Errorf("failed to fetch state document: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch state document: %s returned %s", s.url, res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read state document: %w", err)
	}

	doc, warnings, err := models.DecodeDocument(data)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("Malformed record in state document", "url", s.url, "detail", w)
	}

	s.doc = doc
	return nil
}

func (s *HTTPStore) Close() error {
	return nil
}

func (s *HTTPStore) Document() models.Document {
	return s.doc
}

func (s *HTTPStore) SaveDocument(models.Document) error {
	return fmt.Errorf("state document at %s is read-only", s.url)
}

func (s *HTTPStore) GetConfigPath() string {
	return s.url
}
