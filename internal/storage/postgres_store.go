package storage

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/sauravks/leetdash/internal/keyring"
	"github.com/sauravks/leetdash/internal/models"
)

// EnvConnectionVar is checked for a PostgreSQL connection string before
// falling back to the OS keyring and finally the bare --config value.
const EnvConnectionVar = "LEETDASH_DB_CONNECTION"

// PostgresStore keeps the state document in PostgreSQL for setups that sync
// the tracker across machines. Credentials never travel on the command line;
// they come from the environment, the OS keyring, or .pgpass.
type PostgresStore struct {
	connStr string
	db      *sql.DB
	doc     models.Document
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS problems (
	position    INTEGER PRIMARY KEY,
	slug        TEXT NOT NULL,
	title       TEXT NOT NULL,
	difficulty  TEXT NOT NULL,
	status      TEXT NOT NULL,
	assigned_on TEXT NOT NULL DEFAULT '',
	solve_later BOOLEAN NOT NULL DEFAULT FALSE
);`

// resolveConnStr prefers the environment, then the keyring, then the value
// given on the command line (which main has already vetted for embedded
// credentials).
func (s *PostgresStore) resolveConnStr() string {
	if env := os.Getenv(EnvConnectionVar); env != "" {
		return env
	}
	if stored, err := keyring.GetConnectionString(); err == nil {
		return stored
	}
	return s.connStr
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.resolveConnStr())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.doc = models.Document{Version: 1}
	return nil
}

func (s *PostgresStore) Load() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
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
		if err := rows.Scan(&p.Slug, &p.Title, &p.Difficulty, &p.Status, &p.AssignedOn, &p.SolveLater); err != nil {
			return fmt.Errorf("failed to scan problem: %w", err)
		}
		doc.Problems = append(doc.Problems, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read problems: %w", err)
	}

	s.doc = doc
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *PostgresStore) Document() models.Document {
	return s.doc
}

func (s *PostgresStore) SaveDocument(doc models.Document) error {
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
		_, err := tx.Exec(`INSERT INTO problems (position, slug, title, difficulty, status, assigned_on, solve_later)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			i, p.Slug, p.Title, string(p.Difficulty), string(p.Status), p.AssignedOn, p.SolveLater)
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

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
