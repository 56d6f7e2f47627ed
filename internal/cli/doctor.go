package cli

import (
	"fmt"

	"github.com/sauravks/leetdash/internal/keyring"
	"github.com/sauravks/leetdash/internal/storage"
	"github.com/sauravks/leetdash/internal/views"
)

// DoctorCmd runs health checks against the configured state document. The
// view pipeline assumes slug uniqueness without enforcing it; doctor is where
// violations get reported.
type DoctorCmd struct {
	Date string `help:"Override the reference date (YYYY-MM-DD)."`
}

func (c *DoctorCmd) Run(ctx *Context) error {
	refDate, err := ResolveRefDate(c.Date)
	if err != nil {
		return err
	}

	doc := ctx.Store.Document()
	fmt.Printf("State document: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("✓ Loaded %d problems\n", len(doc.Problems))

	for _, kind := range views.Kinds {
		_, summary := views.Select(doc, kind, refDate)
		fmt.Printf("  %-7s %s\n", kind.Tab()+":", summary)
	}

	if keyring.IsAvailable() {
		fmt.Println("✓ OS keyring is available")
	} else {
		fmt.Printf("⚠ OS keyring is not available (database credentials need %s)\n", storage.EnvConnectionVar)
	}

	dups := doc.DuplicateSlugs()
	if len(dups) == 0 {
		fmt.Println("✓ All slugs are unique")
		return nil
	}

	fmt.Printf("⚠ %d duplicate slug(s):\n", len(dups))
	for _, slug := range dups {
		fmt.Printf("  %s\n", slug)
	}
	return fmt.Errorf("state document has duplicate slugs")
}
