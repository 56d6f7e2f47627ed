package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/sauravks/leetdash/internal/logger"
	"github.com/sauravks/leetdash/internal/models"
)

// MarkLaterCmd flips the solve-later flag on a problem. This is the CLI
// counterpart of the batch script that edits the state document; the TUI
// itself never writes the document back.
type MarkLaterCmd struct {
	Slug string `arg:"" help:"Slug of the problem to mark for later."`
	Yes  bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *MarkLaterCmd) Run(ctx *Context) error {
	doc := ctx.Store.Document()

	found := false
	for _, p := range doc.Problems {
		if p.Slug == c.Slug {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%s not found in state document", c.Slug)
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Mark %q for later?", c.Slug)).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	// Work on a copy; the loaded snapshot stays untouched if the save fails.
	updated := doc
	updated.Problems = make([]models.Problem, len(doc.Problems))
	copy(updated.Problems, doc.Problems)
	for i, p := range updated.Problems {
		if p.Slug == c.Slug {
			updated.Problems[i].SolveLater = true
		}
	}
	if err := ctx.Store.SaveDocument(updated); err != nil {
		return fmt.Errorf("failed to save state document: %w", err)
	}

	logger.Info("Marked problem for later", "slug", c.Slug)
	fmt.Printf("%s marked for later\n", c.Slug)
	return nil
}
