package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sauravks/leetdash/internal/constants"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	docPath := filepath.Join(dir, "state.json")
	if err := os.WriteFile(docPath, []byte(`{"version": 1, "problems": []}`), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(docPath), docPath
}

func TestCreate(t *testing.T) {
	mgr, docPath := newTestManager(t)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(backupPath), constants.BackupFilePrefix) {
		t.Errorf("backup name %q missing prefix", filepath.Base(backupPath))
	}

	original, _ := os.ReadFile(docPath)
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("backup unreadable: %v", err)
	}
	if string(original) != string(copied) {
		t.Error("backup content differs from the document")
	}
}

func TestCreate_MissingDocument(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := mgr.Create(); err == nil {
		t.Error("Create must fail when the document does not exist")
	}
}

func TestCreate_UniqueNamesWithinSecond(t *testing.T) {
	mgr, _ := newTestManager(t)

	first, err := mgr.Create()
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if first == second {
		t.Errorf("two backups share a path: %s", first)
	}
}

func TestList_NewestFirst(t *testing.T) {
	mgr, _ := newTestManager(t)

	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	for i := 0; i < 3; i++ {
		path := filepath.Join(mgr.BackupDir(), fmt.Sprintf("%sfile-%d.json", constants.BackupFilePrefix, i))
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
		mtime := now.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first: %v", backups)
		}
	}
}

func TestList_NoBackupDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "state.json"))
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestCreate_PrunesOldBackups(t *testing.T) {
	mgr, _ := newTestManager(t)

	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-24 * time.Hour)
	for i := 0; i < constants.MaxBackups+3; i++ {
		path := filepath.Join(mgr.BackupDir(), fmt.Sprintf("%sold-%d.json", constants.BackupFilePrefix, i))
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
		mtime := old.Add(time.Duration(i) * time.Second)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after pruning, got %d", constants.MaxBackups, len(backups))
	}
}

func TestRestore(t *testing.T) {
	mgr, docPath := newTestManager(t)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	changed := []byte(`{"version": 1, "problems": [{"slug": "x", "title": "X"}]}`)
	if err := os.WriteFile(docPath, changed, 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	restored, _ := os.ReadFile(docPath)
	if strings.Contains(string(restored), `"slug": "x"`) {
		t.Error("document not restored from backup")
	}

	// Restore takes a safety backup of the overwritten document first.
	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a pre-restore safety backup, found %d backups", len(backups))
	}
}

func TestRestore_MissingBackup(t *testing.T) {
	mgr, _ := newTestManager(t)
	if err := mgr.Restore(filepath.Join(mgr.BackupDir(), "nope.json")); err == nil {
		t.Error("Restore must fail for a missing backup file")
	}
}
