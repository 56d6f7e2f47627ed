// Package render writes a selected view as plain text for the CLI commands.
package render

import (
	"fmt"
	"io"

	"github.com/sauravks/leetdash/internal/models"
	"github.com/sauravks/leetdash/internal/views"
)

// View writes the summary line followed by one entry per problem, or a single
// placeholder when the selection is empty. Output is a pure function of its
// inputs; rendering twice produces identical text.
func View(w io.Writer, problems []models.Problem, summary string, kind views.Kind) {
	fmt.Fprintln(w, summary)
	if len(problems) == 0 {
		fmt.Fprintf(w, "\n  %s\n", views.EmptyMessage(kind))
		return
	}
	fmt.Fprintln(w)
	for _, p := range problems {
		fmt.Fprintf(w, "  %s [%s] %s\n", p.Title, p.Difficulty, p.Slug)
		fmt.Fprintf(w, "      %s\n", p.URL())
	}
}
