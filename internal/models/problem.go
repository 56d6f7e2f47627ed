package models

import (
	"fmt"
	"strings"

	"github.com/sauravks/leetdash/internal/constants"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty normalizes a difficulty value for display and styling.
// Input is case-insensitive; unrecognized values are returned as-is with ok=false.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return Difficulty(s), false
}

// Class returns the lower-cased style class for the difficulty badge.
func (d Difficulty) Class() string {
	return strings.ToLower(string(d))
}

type Status string

const (
	StatusPending Status = "pending"
	StatusSolved  Status = "solved"
)

// Solved reports whether the status counts as solved. The status set is open
// to extension; anything other than "solved" counts as not solved.
func (s Status) Solved() bool {
	return s == StatusSolved
}

// Problem is one tracked coding problem with status and scheduling metadata.
// Records are externally supplied and treated as immutable by the view pipeline.
type Problem struct {
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Status     Status     `json:"status"`
	AssignedOn string     `json:"assigned_on,omitempty"` // YYYY-MM-DD format
	SolveLater bool       `json:"solve_later"`
}

// URL returns the outbound problem link. The slug is assumed URL-safe and
// inserted verbatim.
func (p Problem) URL() string {
	return fmt.Sprintf(constants.ProblemURLTemplate, p.Slug)
}
