// Package notifier delivers best-effort desktop notifications through the
// leetdash tray companion. The tray app writes a lockfile containing
// "port|pid|secret"; we validate the process is alive before posting to its
// local webhook. Every failure here is non-fatal to the caller.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/sauravks/leetdash/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

type Notifier struct{}

type webhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{}
}

// Notify posts a transient notification to the tray companion, if one is
// running.
func (n *Notifier) Notify(text string) error {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return fmt.Errorf("failed to get user config dir: %w", err)
	}
	lockfile := filepath.Join(configDir, constants.TrayAppIdentifier, constants.NotifierLockfileName)

	port, secret, err := validateTrayProcess(lockfile)
	if err != nil {
		return err
	}

	return send(port, secret, webhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

func validateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("leetdash-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port, pidStr, secret := parts[0], parts[1], parts[2]
	portNum, err := strconv.Atoi(port)
	if err != nil || portNum < 1 || portNum > 65535 {
		return "", "", errors.New("invalid port in lockfile")
	}
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("leetdash-tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), "leetdash-tray") {
		return "", "", fmt.Errorf("process with PID %d is not leetdash-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func send(port, secret string, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://127.0.0.1:%s", port), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Leetdash-Secret", secret)

	client := &http.Client{Timeout: constants.NotifyTimeout}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, msg)
	}
	return nil
}
