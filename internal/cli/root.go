package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/sauravks/leetdash/internal/backup"
	"github.com/sauravks/leetdash/internal/constants"
	"github.com/sauravks/leetdash/internal/logger"
	"github.com/sauravks/leetdash/internal/render"
	"github.com/sauravks/leetdash/internal/storage"
	"github.com/sauravks/leetdash/internal/views"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates a backup of a file-based state document and
// silently handles errors; a failed backup never interrupts the user.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		// Remote and database-backed stores have nothing to copy.
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveRefDate validates an optional date override and defaults to the
// current local date. The reference date is computed once per command so one
// render pass sees one consistent "today".
func ResolveRefDate(override string) (string, error) {
	if override == "" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, override); err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD", override)
	}
	return override, nil
}

// PrintView selects and renders one view to stdout.
func (c *Context) PrintView(kind views.Kind, refDate string) {
	problems, summary := views.Select(c.Store.Document(), kind, refDate)
	render.View(os.Stdout, problems, summary, kind)
}
