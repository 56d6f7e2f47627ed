package render

import (
	"strings"
	"testing"

	"github.com/sauravks/leetdash/internal/models"
	"github.com/sauravks/leetdash/internal/views"
)

func TestView_WithProblems(t *testing.T) {
	problems := []models.Problem{
		{Slug: "two-sum", Title: "Two Sum", Difficulty: models.DifficultyEasy, Status: models.StatusPending},
		{Slug: "word-break", Title: "Word Break", Difficulty: models.DifficultyMedium, Status: models.StatusPending},
	}

	var buf strings.Builder
	View(&buf, problems, "2 problems for today", views.Today)
	out := buf.String()

	if !strings.HasPrefix(out, "2 problems for today\n") {
		t.Errorf("output must start with the summary line:\n%s", out)
	}
	if !strings.Contains(out, "  Two Sum [Easy] two-sum\n") {
		t.Errorf("missing problem line:\n%s", out)
	}
	if !strings.Contains(out, "      https://leetcode.com/problems/two-sum/\n") {
		t.Errorf("missing link line:\n%s", out)
	}
	if !strings.Contains(out, "Word Break [Medium] word-break") {
		t.Errorf("missing second problem:\n%s", out)
	}
	if strings.Contains(out, views.EmptyMessage(views.Today)) {
		t.Errorf("placeholder must not appear alongside items:\n%s", out)
	}
}

func TestView_Empty(t *testing.T) {
	for _, kind := range views.Kinds {
		var buf strings.Builder
		View(&buf, nil, views.Summary(kind, 0), kind)
		out := buf.String()

		if !strings.Contains(out, "0 ") {
			t.Errorf("%s: empty view must still show a zero count:\n%s", kind, out)
		}
		if !strings.Contains(out, views.EmptyMessage(kind)) {
			t.Errorf("%s: missing placeholder:\n%s", kind, out)
		}
		if n := strings.Count(out, views.EmptyMessage(kind)); n != 1 {
			t.Errorf("%s: placeholder rendered %d times", kind, n)
		}
	}
}

func TestView_Idempotent(t *testing.T) {
	problems := []models.Problem{
		{Slug: "lru-cache", Title: "LRU Cache", Difficulty: models.DifficultyHard, Status: models.StatusSolved},
	}

	var first, second strings.Builder
	View(&first, problems, "1 solved problem", views.Solved)
	View(&second, problems, "1 solved problem", views.Solved)

	if first.String() != second.String() {
		t.Errorf("rendering twice produced different output:\n%q\nvs\n%q", first.String(), second.String())
	}
}
