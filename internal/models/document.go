package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Document is the full loaded snapshot of all problems, flattened into
// document order. It is read-only for the lifetime of one render pass.
type Document struct {
	Version  int       `json:"version"`
	Problems []Problem `json:"problems"`
}

// ForDate returns the problems assigned on the given YYYY-MM-DD date,
// in document order.
func (d Document) ForDate(date string) []Problem {
	var out []Problem
	for _, p := range d.Problems {
		if p.AssignedOn == date {
			out = append(out, p)
		}
	}
	return out
}

// DuplicateSlugs returns slugs appearing more than once, sorted. Slug
// uniqueness is assumed by the view pipeline but never enforced at load;
// this exists so health checks can report violations.
func (d Document) DuplicateSlugs() []string {
	seen := make(map[string]int)
	for _, p := range d.Problems {
		seen[p.Slug]++
	}
	var dups []string
	for slug, n := range seen {
		if n > 1 {
			dups = append(dups, slug)
		}
	}
	sort.Strings(dups)
	return dups
}

// rawDocument covers both wire shapes of the state document: a flat
// "problems" list and the legacy "assigned" map keyed by date.
type rawDocument struct {
	Version  int                          `json:"version"`
	Problems []json.RawMessage            `json:"problems"`
	Assigned map[string][]json.RawMessage `json:"assigned"`
}

// DecodeDocument parses a state document in either wire shape and normalizes
// it into a flat Document. Records missing a slug or title are skipped, not
// fatal; each skip is reported in warnings so the caller can log it. Dates in
// the "assigned" shape are flattened in ascending order so the result is
// deterministic.
func DecodeDocument(data []byte) (Document, []string, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, nil, fmt.Errorf("failed to parse state document: %w", err)
	}

	doc := Document{Version: raw.Version}
	var warnings []string

	for i, msg := range raw.Problems {
		p, err := decodeProblem(msg, "")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping problems[%d]: %v", i, err))
			continue
		}
		doc.Problems = append(doc.Problems, p)
	}

	dates := make([]string, 0, len(raw.Assigned))
	for date := range raw.Assigned {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		for i, msg := range raw.Assigned[date] {
			p, err := decodeProblem(msg, date)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping assigned[%s][%d]: %v", date, i, err))
				continue
			}
			doc.Problems = append(doc.Problems, p)
		}
	}

	return doc, warnings, nil
}

func decodeProblem(msg json.RawMessage, assignedOn string) (Problem, error) {
	var p Problem
	if err := json.Unmarshal(msg, &p); err != nil {
		return Problem{}, fmt.Errorf("malformed record: %w", err)
	}
	if strings.TrimSpace(p.Slug) == "" {
		return Problem{}, fmt.Errorf("record has no slug")
	}
	if strings.TrimSpace(p.Title) == "" {
		return Problem{}, fmt.Errorf("record %q has no title", p.Slug)
	}
	// The assigned map key wins over a per-record date when both are present.
	if assignedOn != "" {
		p.AssignedOn = assignedOn
	}
	if d, ok := ParseDifficulty(string(p.Difficulty)); ok {
		p.Difficulty = d
	}
	p.Status = Status(strings.ToLower(strings.TrimSpace(string(p.Status))))
	return p, nil
}

// EncodeDocument serializes a document into the canonical flat wire shape.
func EncodeDocument(doc Document) ([]byte, error) {
	if doc.Version == 0 {
		doc.Version = 1
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state document: %w", err)
	}
	return data, nil
}
