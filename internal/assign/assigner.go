// Package assign implements the daily assignment run: auto-mark problems
// solved from recent accepted submissions, then top today's pending set up to
// the daily target honoring a per-difficulty quota.
package assign

import (
	"math/rand"

	"github.com/sauravks/leetdash/internal/constants"
	"github.com/sauravks/leetdash/internal/leetcode"
	"github.com/sauravks/leetdash/internal/models"
)

// DefaultQuota mirrors the generator's 2 Easy / 2 Medium / 1 Hard split.
var DefaultQuota = map[models.Difficulty]int{
	models.DifficultyEasy:   2,
	models.DifficultyMedium: 2,
	models.DifficultyHard:   1,
}

// fillOrder is the difficulty order used when topping up past the quotas.
var fillOrder = []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard}

type Options struct {
	// Today in YYYY-MM-DD form.
	Today string
	// Target is the number of pending problems wanted for today.
	Target int
	// Quota caps new picks per difficulty before round-robin fill.
	Quota map[models.Difficulty]int
	// Rand drives bucket shuffling; tests inject a seeded source.
	Rand *rand.Rand
	// RunID identifies this run in logs and reports.
	RunID string
}

type Result struct {
	RunID        string
	MarkedSolved []string
	Assigned     []models.Problem
}

// Run applies one assignment pass to the document and returns the updated
// copy. The input document is not mutated.
func Run(doc models.Document, catalog []leetcode.CatalogProblem, solved map[string]bool, opts Options) (models.Document, Result) {
	if opts.Target <= 0 {
		opts.Target = constants.DailyTarget
	}
	if opts.Quota == nil {
		opts.Quota = DefaultQuota
	}

	result := Result{RunID: opts.RunID}

	out := models.Document{Version: doc.Version}
	out.Problems = make([]models.Problem, len(doc.Problems))
	copy(out.Problems, doc.Problems)

	// Auto-mark: a pending record whose slug shows up in the recent accepted
	// set flips to solved, whatever day it was assigned on.
	for i, p := range out.Problems {
		if !p.Status.Solved() && solved[p.Slug] {
			out.Problems[i].Status = models.StatusSolved
			result.MarkedSolved = append(result.MarkedSolved, p.Slug)
		}
	}

	// Every slug already in the document is off-limits for new picks, so a
	// problem is never assigned twice across days.
	taken := make(map[string]bool, len(out.Problems))
	pendingToday := 0
	pendingByDifficulty := make(map[models.Difficulty]int)
	for _, p := range out.Problems {
		taken[p.Slug] = true
		if p.AssignedOn == opts.Today && !p.Status.Solved() && !p.SolveLater {
			pendingToday++
			pendingByDifficulty[p.Difficulty]++
		}
	}

	if pendingToday >= opts.Target {
		return out, result
	}

	buckets := make(map[models.Difficulty][]leetcode.CatalogProblem)
	for _, c := range catalog {
		d, ok := models.ParseDifficulty(c.Difficulty)
		if !ok || taken[c.Slug] || solved[c.Slug] {
			continue
		}
		buckets[d] = append(buckets[d], c)
	}
	if opts.Rand != nil {
		for d := range buckets {
			b := buckets[d]
			opts.Rand.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
		}
	}

	pick := func(d models.Difficulty) (models.Problem, bool) {
		b := buckets[d]
		if len(b) == 0 {
			return models.Problem{}, false
		}
		c := b[len(b)-1]
		buckets[d] = b[:len(b)-1]
		return models.Problem{
			Slug:       c.Slug,
			Title:      c.Title,
			Difficulty: d,
			Status:     models.StatusPending,
			AssignedOn: opts.Today,
		}, true
	}

	// Quota pass: honor the per-difficulty split, counting what is already
	// pending today.
	for _, d := range fillOrder {
		need := opts.Quota[d] - pendingByDifficulty[d]
		for need > 0 && pendingToday+len(result.Assigned) < opts.Target {
			p, ok := pick(d)
			if !ok {
				break
			}
			result.Assigned = append(result.Assigned, p)
			need--
		}
	}

	// Fill pass: round-robin across difficulties until the target is met or
	// the catalog runs dry.
	for pendingToday+len(result.Assigned) < opts.Target {
		picked := false
		for _, d := range fillOrder {
			if p, ok := pick(d); ok {
				result.Assigned = append(result.Assigned, p)
				picked = true
				break
			}
		}
		if !picked {
			break
		}
	}

	out.Problems = append(out.Problems, result.Assigned...)
	return out, result
}
