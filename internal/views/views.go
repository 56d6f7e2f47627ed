// Package views implements the view selector: one normalized state document
// driving three derived, mutually exclusive views, each with its own
// predicate, summary string, and empty-state message.
package views

import (
	"fmt"

	"github.com/sauravks/leetdash/internal/models"
)

type Kind string

const (
	Today      Kind = "today"
	Solved     Kind = "solved"
	SolveLater Kind = "later"
)

// Kinds lists all views in tab order.
var Kinds = []Kind{Today, Solved, SolveLater}

// ParseKind resolves a view name. Unknown names are a routing
// misconfiguration and fail fast.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Today, Solved, SolveLater:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown view kind: %q", s)
}

// Tab returns the display name of the view.
func (k Kind) Tab() string {
	switch k {
	case Today:
		return "Today"
	case Solved:
		return "Solved"
	case SolveLater:
		return "Later"
	}
	return string(k)
}

// Select computes the subset of the document relevant to the view, plus a
// human-readable summary. It is a stable filter: records come back in
// document order, never reordered or deduplicated. refDate is the caller's
// notion of "today" in YYYY-MM-DD form; it is compared to assignment dates by
// plain string equality, so cross-time-zone drift near midnight is undefined
// behavior inherited from the data source.
//
// Select is pure and total for every known Kind; an unknown Kind is a
// programming error and panics.
func Select(doc models.Document, kind Kind, refDate string) ([]models.Problem, string) {
	var selected []models.Problem
	for _, p := range doc.Problems {
		if matches(p, kind, refDate) {
			selected = append(selected, p)
		}
	}
	return selected, Summary(kind, len(selected))
}

func matches(p models.Problem, kind Kind, refDate string) bool {
	switch kind {
	case Today:
		return !p.Status.Solved() && p.AssignedOn == refDate && !p.SolveLater
	case Solved:
		return p.Status.Solved()
	case SolveLater:
		return p.SolveLater
	}
	panic(fmt.Sprintf("views: unknown view kind %q", kind))
}

// Summary renders the per-view count line. The count is always present, even
// when zero.
func Summary(kind Kind, count int) string {
	word := "problems"
	if count == 1 {
		word = "problem"
	}
	switch kind {
	case Today:
		return fmt.Sprintf("%d %s for today", count, word)
	case Solved:
		return fmt.Sprintf("%d solved %s", count, word)
	case SolveLater:
		return fmt.Sprintf("%d %s marked for later", count, word)
	}
	panic(fmt.Sprintf("views: unknown view kind %q", kind))
}

// EmptyMessage is the placeholder rendered instead of list items when a view
// selects nothing.
func EmptyMessage(kind Kind) string {
	switch kind {
	case Today:
		return "No problems for today 🎉"
	case Solved:
		return "No solved problems yet."
	case SolveLater:
		return "Nothing marked for later."
	}
	panic(fmt.Sprintf("views: unknown view kind %q", kind))
}
