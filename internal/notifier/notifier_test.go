package notifier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lockfile")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	t.Run("missing lockfile", func(t *testing.T) {
		if _, _, err := validateTrayProcess(filepath.Join(t.TempDir(), "absent")); err == nil {
			t.Error("expected error for missing lockfile")
		}
	})

	t.Run("malformed lockfile", func(t *testing.T) {
		for _, content := range []string{"8080|12345", "invalid", "8080|12345|secret|extra"} {
			if _, _, err := validateTrayProcess(writeLockfile(t, content)); err == nil {
				t.Errorf("expected error for lockfile %q", content)
			}
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		_, _, err := validateTrayProcess(writeLockfile(t, "8080|12345|"))
		if err == nil || !strings.Contains(err.Error(), "secret") {
			t.Errorf("expected error about empty secret, got: %v", err)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		for _, content := range []string{"|12345|secret", "99999|12345|secret", "abc|12345|secret"} {
			if _, _, err := validateTrayProcess(writeLockfile(t, content)); err == nil {
				t.Errorf("expected error for lockfile %q", content)
			}
		}
	})

	t.Run("process not running", func(t *testing.T) {
		findProcessFunc = func(pid int) (ps.Process, error) {
			return nil, nil
		}
		if _, _, err := validateTrayProcess(writeLockfile(t, "8080|12345|secret")); err == nil {
			t.Error("expected error for dead process")
		}
	})

	t.Run("wrong executable", func(t *testing.T) {
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "some-other-app"}, nil
		}
		_, _, err := validateTrayProcess(writeLockfile(t, "8080|12345|secret"))
		if err == nil || !strings.Contains(err.Error(), "not leetdash-tray") {
			t.Errorf("expected executable mismatch error, got: %v", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "leetdash-tray"}, nil
		}
		port, secret, err := validateTrayProcess(writeLockfile(t, "8080|12345|testsecret123"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8080" || secret != "testsecret123" {
			t.Errorf("got port=%q secret=%q", port, secret)
		}
	})
}
