package problemlist

import (
	"strings"
	"testing"

	"github.com/sauravks/leetdash/internal/models"
	"github.com/sauravks/leetdash/internal/views"
)

func sample() []models.Problem {
	return []models.Problem{
		{Slug: "two-sum", Title: "Two Sum", Difficulty: models.DifficultyEasy, Status: models.StatusPending},
		{Slug: "word-break", Title: "Word Break", Difficulty: models.DifficultyMedium, Status: models.StatusPending},
	}
}

func TestSetProblems_ReplacesNotAccumulates(t *testing.T) {
	m := New(80, 24)

	m.SetProblems(sample(), views.Today)
	if got := len(m.Items()); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}

	m.SetProblems(sample(), views.Today)
	if got := len(m.Items()); got != 2 {
		t.Errorf("re-render must replace content, got %d items", got)
	}

	m.SetProblems(nil, views.Today)
	if got := len(m.Items()); got != 0 {
		t.Errorf("empty selection must clear the list, got %d items", got)
	}
}

func TestSelected(t *testing.T) {
	m := New(80, 24)

	if _, ok := m.Selected(); ok {
		t.Error("empty list must not report a selection")
	}

	m.SetProblems(sample(), views.Today)
	p, ok := m.Selected()
	if !ok || p.Slug != "two-sum" {
		t.Errorf("Selected = (%+v, %v), want first item", p, ok)
	}
}

func TestSetProblems_ResetsOutOfRangeCursor(t *testing.T) {
	m := New(80, 24)
	m.SetProblems(sample(), views.Today)

	// Shrink to one item; the cursor must land on a valid index.
	m.SetProblems(sample()[:1], views.Today)
	if _, ok := m.Selected(); !ok {
		t.Error("cursor should remain on a valid item after shrink")
	}
}

func TestView_EmptyPlaceholderPerKind(t *testing.T) {
	for _, kind := range views.Kinds {
		m := New(80, 24)
		m.SetProblems(nil, kind)
		if !strings.Contains(m.View(), views.EmptyMessage(kind)) {
			t.Errorf("%s: empty view missing placeholder %q", kind, views.EmptyMessage(kind))
		}
	}
}

func TestItemDescription(t *testing.T) {
	i := Item{Problem: models.Problem{Slug: "two-sum", Title: "Two Sum", Difficulty: models.DifficultyEasy}}
	desc := i.Description()
	if !strings.Contains(desc, "two-sum") {
		t.Errorf("description missing slug: %q", desc)
	}
	if !strings.Contains(desc, "https://leetcode.com/problems/two-sum/") {
		t.Errorf("description missing link: %q", desc)
	}
	if i.Title() != "Two Sum" {
		t.Errorf("Title = %q", i.Title())
	}
	if !strings.Contains(i.FilterValue(), "two-sum") {
		t.Errorf("FilterValue = %q", i.FilterValue())
	}
}
