package storage

import (
	"net/url"
	"strings"

	"github.com/sauravks/leetdash/internal/models"
)

// Provider is the fetch boundary for the state document. Implementations load
// one read-only snapshot per render pass; mutating commands write a whole new
// document back through SaveDocument.
type Provider interface {
	// Init creates an empty state document at the configured location.
	Init() error
	// Load fetches and parses the state document.
	Load() error
	// Close releases any underlying resources.
	Close() error
	// Document returns the loaded snapshot.
	Document() models.Document
	// SaveDocument replaces the stored document. Read-only providers return
	// an error.
	SaveDocument(doc models.Document) error
	// GetConfigPath returns the configured document location.
	GetConfigPath() string
}

// New picks a provider from the config value: postgres:// and postgresql://
// URLs use PostgreSQL, http(s):// URLs are fetched read-only, .db paths use
// SQLite, and everything else is a JSON document file.
func New(config string) Provider {
	switch {
	case strings.HasPrefix(config, "postgres://"), strings.HasPrefix(config, "postgresql://"):
		return NewPostgresStore(config)
	case strings.HasPrefix(config, "http://"), strings.HasPrefix(config, "https://"):
		return NewHTTPStore(config)
	case strings.HasSuffix(config, ".db"), strings.HasSuffix(config, ".sqlite"):
		return NewSQLiteStore(config)
	}
	return NewJSONStore(config)
}

// HasEmbeddedCredentials reports whether a connection string URL carries a
// password. Secrets belong in the OS keyring or environment, not on the
// command line.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
