package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/sauravks/leetdash/internal/models"
)

// SQLiteStore keeps the state document in a local SQLite database. The
// problems table carries an explicit position column so document order
// survives the round trip.
type SQLiteStore struct {
	path string
	db   *sql.DB
	doc  models.Document
}

func NewSQLiteStore(configPath string) *SQLiteStore {
	return &SQLiteStore{path: expandHome(configPath)}
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS problems (
	position    INTEGER PRIMARY KEY,
	slug        TEXT NOT NULL,
	title       TEXT NOT NULL,
	difficulty  TEXT NOT NULL,
	status      TEXT NOT NULL,
	assigned_on TEXT NOT NULL DEFAULT '',
	solve_later INTEGER NOT NULL DEFAULT 0
);`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.doc = models.Document{Version: 1}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'leetdash init' first")
	}
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	rows, err := s.db.Query(`SELECT slug, title, difficulty, status, assigned_on, solve_later
		FROM problems ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to read problems: %w", err)
	}
	defer rows.Close()

	doc := models.Document{Version: 1}
	for rows.Next() {
		var p models.Problem
		var later int
		if err := rows.Scan(&p.Slug, &p.Title, &p.Difficulty, &p.Status, &p.AssignedOn, &later); err != nil {
			return fmt.Errorf("failed to scan problem: %w", err)
		}
		p.SolveLater = later != 0
		doc.Problems = append(doc.Problems, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read problems: %w", err)
	}

	s.doc = doc
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) Document() models.Document {
	return s.doc
}

func (s *SQLiteStore) SaveDocument(doc models.Document) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM problems`); err != nil {
		return fmt.Errorf("failed to clear problems: %w", err)
	}
	for i, p := range doc.Problems {
		later := 0
		if p.SolveLater {
			later = 1
		}
		_, err := tx.Exec(`INSERT INTO problems (position, slug, title, difficulty, status, assigned_on, solve_later)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, p.Slug, p.Title, string(p.Difficulty), string(p.Status), p.AssignedOn, later)
		if err != nil {
			return fmt.Errorf("failed to insert problem %s: %w", p.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	s.doc = doc
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
