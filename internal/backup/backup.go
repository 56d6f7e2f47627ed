// Package backup keeps timestamped copies of the state document so mutating
// commands (assign, mark-later, restore) can roll back a bad run.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sauravks/leetdash/internal/constants"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for a file-based state document.
type Manager struct {
	docPath   string
	backupDir string
}

func NewManager(docPath string) *Manager {
	return &Manager{
		docPath:   docPath,
		backupDir: filepath.Join(filepath.Dir(docPath), constants.BackupDirName),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

func (m *Manager) suffix() string {
	ext := filepath.Ext(m.docPath)
	if ext == "" {
		ext = ".json"
	}
	return ext
}

// Create copies the current state document into the backup directory and
// prunes old backups past the retention limit.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.docPath); os.IsNotExist(err) {
		return "", fmt.Errorf("state document does not exist: %s", m.docPath)
	}

	name := constants.BackupFilePrefix + time.Now().Format("20060102-150405") + m.suffix()
	backupPath := filepath.Join(m.backupDir, name)
	counter := 1
	for {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = filepath.Join(m.backupDir,
			fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, time.Now().Format("20060102-150405"), counter, m.suffix()))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}

	if err := copyFile(m.docPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy state document: %w", err)
	}

	if err := m.prune(); err != nil {
		// Pruning failure should not undo a successful backup.
		fmt.Fprintf(os.Stderr, "Warning: failed to prune old backups: %v\n", err)
	}
	return backupPath, nil
}

// List returns available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), constants.BackupFilePrefix) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: fi.ModTime(),
			Size:      fi.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// Restore replaces the state document with the given backup, taking one more
// backup of the current document first.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup not found: %s", backupPath)
	}

	if _, err := os.Stat(m.docPath); err == nil {
		if _, err := m.Create(); err != nil {
			return fmt.Errorf("failed to back up current document before restore: %w", err)
		}
	}

	if err := copyFile(backupPath, m.docPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return nil
}

func (m *Manager) prune() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
