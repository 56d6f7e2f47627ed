package views

import (
	"reflect"
	"testing"

	"github.com/sauravks/leetdash/internal/models"
)

func doc(problems ...models.Problem) models.Document {
	return models.Document{Version: 1, Problems: problems}
}

func slugs(problems []models.Problem) []string {
	out := make([]string, len(problems))
	for i, p := range problems {
		out[i] = p.Slug
	}
	return out
}

func TestSelect_Today(t *testing.T) {
	d := doc(
		models.Problem{Slug: "two-sum", Title: "Two Sum", Status: models.StatusPending, AssignedOn: "2024-01-01"},
		models.Problem{Slug: "add-two-numbers", Title: "Add Two Numbers", Status: models.StatusPending, AssignedOn: "2024-01-02"},
		models.Problem{Slug: "lru-cache", Title: "LRU Cache", Status: models.StatusSolved, AssignedOn: "2024-01-01"},
		models.Problem{Slug: "word-break", Title: "Word Break", Status: models.StatusPending, AssignedOn: "2024-01-01", SolveLater: true},
	)

	t.Run("matching date", func(t *testing.T) {
		selected, summary := Select(d, Today, "2024-01-01")
		if got, want := slugs(selected), []string{"two-sum"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Select(Today) = %v, want %v", got, want)
		}
		if summary != "1 problem for today" {
			t.Errorf("summary = %q, want %q", summary, "1 problem for today")
		}
	})

	t.Run("no matching date", func(t *testing.T) {
		selected, summary := Select(d, Today, "2024-01-03")
		if len(selected) != 0 {
			t.Errorf("expected empty selection, got %v", slugs(selected))
		}
		if summary != "0 problems for today" {
			t.Errorf("summary = %q, want count 0, not omitted", summary)
		}
	})

	t.Run("solved excluded", func(t *testing.T) {
		selected, _ := Select(d, Today, "2024-01-01")
		for _, p := range selected {
			if p.Status.Solved() {
				t.Errorf("solved problem %s should not appear in Today view", p.Slug)
			}
		}
	})

	t.Run("deferred excluded", func(t *testing.T) {
		selected, _ := Select(d, Today, "2024-01-01")
		for _, p := range selected {
			if p.SolveLater {
				t.Errorf("deferred problem %s should not appear in Today view", p.Slug)
			}
		}
	})
}

func TestSelect_Solved(t *testing.T) {
	d := doc(
		models.Problem{Slug: "two-sum", Title: "Two Sum", Status: models.StatusPending, AssignedOn: "2024-01-01"},
		models.Problem{Slug: "lru-cache", Title: "LRU Cache", Status: models.StatusSolved, AssignedOn: "2023-11-20"},
		models.Problem{Slug: "min-stack", Title: "Min Stack", Status: models.StatusSolved, AssignedOn: "2024-01-01"},
	)

	// Solved spans all dates and ignores the reference date entirely.
	for _, refDate := range []string{"2024-01-01", "2099-12-31", ""} {
		selected, summary := Select(d, Solved, refDate)
		if got, want := slugs(selected), []string{"lru-cache", "min-stack"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Select(Solved, %q) = %v, want %v", refDate, got, want)
		}
		if summary != "2 solved problems" {
			t.Errorf("summary = %q", summary)
		}
	}
}

func TestSelect_SolveLater(t *testing.T) {
	d := doc(
		models.Problem{Slug: "x", Title: "X", Status: models.StatusPending, AssignedOn: "2024-01-01", SolveLater: true},
		models.Problem{Slug: "y", Title: "Y", Status: models.StatusSolved, SolveLater: true},
		models.Problem{Slug: "z", Title: "Z", Status: models.StatusPending},
	)

	// The deferred flag is independent of status: solved-and-deferred shows up.
	selected, summary := Select(d, SolveLater, "2024-01-01")
	if got, want := slugs(selected), []string{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Select(SolveLater) = %v, want %v", got, want)
	}
	if summary != "2 problems marked for later" {
		t.Errorf("summary = %q", summary)
	}

	// And the deferred record is excluded from Today on its own assigned day.
	selected, _ = Select(d, Today, "2024-01-01")
	for _, p := range selected {
		if p.Slug == "x" {
			t.Error("deferred problem x should be absent from Today view")
		}
	}
}

func TestSelect_StableOrder(t *testing.T) {
	d := doc(
		models.Problem{Slug: "c", Title: "C", Status: models.StatusSolved},
		models.Problem{Slug: "a", Title: "A", Status: models.StatusSolved},
		models.Problem{Slug: "b", Title: "B", Status: models.StatusSolved},
	)

	selected, _ := Select(d, Solved, "2024-01-01")
	if got, want := slugs(selected), []string{"c", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("selector must preserve document order, got %v", got)
	}
}

func TestSelect_EmptyDocument(t *testing.T) {
	for _, kind := range Kinds {
		selected, summary := Select(models.Document{}, kind, "2024-01-01")
		if len(selected) != 0 {
			t.Errorf("Select(%s) on empty document = %v", kind, selected)
		}
		if summary == "" {
			t.Errorf("Select(%s) must still produce a zero-count summary", kind)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		got, err := ParseKind(string(kind))
		if err != nil {
			t.Fatalf("ParseKind(%q) returned error: %v", kind, err)
		}
		if got != kind {
			t.Errorf("ParseKind(%q) = %q", kind, got)
		}
	}

	if _, err := ParseKind("archive"); err == nil {
		t.Error("ParseKind must reject unknown view kinds")
	}
}

func TestSummary_Pluralization(t *testing.T) {
	tests := []struct {
		kind  Kind
		count int
		want  string
	}{
		{Today, 0, "0 problems for today"},
		{Today, 1, "1 problem for today"},
		{Today, 5, "5 problems for today"},
		{Solved, 1, "1 solved problem"},
		{SolveLater, 3, "3 problems marked for later"},
	}
	for _, tt := range tests {
		if got := Summary(tt.kind, tt.count); got != tt.want {
			t.Errorf("Summary(%s, %d) = %q, want %q", tt.kind, tt.count, got, tt.want)
		}
	}
}

func TestEmptyMessage_DistinctPerView(t *testing.T) {
	seen := make(map[string]Kind)
	for _, kind := range Kinds {
		msg := EmptyMessage(kind)
		if msg == "" {
			t.Errorf("EmptyMessage(%s) is empty", kind)
		}
		if other, ok := seen[msg]; ok {
			t.Errorf("EmptyMessage(%s) collides with %s", kind, other)
		}
		seen[msg] = kind
	}
}
