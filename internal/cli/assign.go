package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/sauravks/leetdash/internal/assign"
	"github.com/sauravks/leetdash/internal/constants"
	"github.com/sauravks/leetdash/internal/leetcode"
	"github.com/sauravks/leetdash/internal/logger"
	"github.com/sauravks/leetdash/internal/notifier"
)

// AssignCmd runs one daily assignment pass: sync solved status from recent
// accepted submissions, then top up today's pending problems from the free
// catalog.
type AssignCmd struct {
	User        string `help:"LeetCode username to sync solved problems from." required:""`
	Target      int    `help:"Number of pending problems wanted for today." default:"${daily_target}"`
	SolvedAfter string `help:"Only count submissions accepted on or after this date (YYYY-MM-DD)."`
	DryRun      bool   `help:"Report what would change without saving."`
	Endpoint    string `hidden:"" help:"Override the GraphQL endpoint."`
}

func (c *AssignCmd) Run(ctx *Context) error {
	today := time.Now().Format(constants.DateFormat)
	runID := uuid.New().String()
	logger.Info("Starting assignment run", "run_id", runID, "user", c.User, "date", today)

	since := time.Time{}
	if c.SolvedAfter != "" {
		t, err := time.Parse(constants.DateFormat, c.SolvedAfter)
		if err != nil {
			return fmt.Errorf("invalid date %q, use YYYY-MM-DD", c.SolvedAfter)
		}
		since = t
	}

	client := leetcode.NewClient(c.Endpoint)
	solved, err := client.RecentAcceptedSlugs(c.User, since)
	if err != nil {
		return err
	}
	catalog, err := client.FreeProblems()
	if err != nil {
		return err
	}

	doc, result := assign.Run(ctx.Store.Document(), catalog, solved, assign.Options{
		Today:  today,
		Target: c.Target,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		RunID:  runID,
	})

	logger.Info("Assignment run finished",
		"run_id", runID,
		"marked_solved", len(result.MarkedSolved),
		"assigned", len(result.Assigned))

	if c.DryRun {
		fmt.Printf("Dry run: would mark %d solved and assign %d new problems.\n",
			len(result.MarkedSolved), len(result.Assigned))
		for _, p := range result.Assigned {
			fmt.Printf("  + %s [%s]\n", p.Slug, p.Difficulty)
		}
		return nil
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.SaveDocument(doc); err != nil {
		return fmt.Errorf("failed to save state document: %w", err)
	}

	fmt.Printf("Marked %d solved, assigned %d new problems today.\n",
		len(result.MarkedSolved), len(result.Assigned))

	if len(result.Assigned) > 0 {
		if err := notifier.New().Notify(fmt.Sprintf("%d new problems assigned today", len(result.Assigned))); err != nil {
			logger.Warn("Notification failed", "error", err)
		}
	}
	return nil
}
