package cli

import "github.com/sauravks/leetdash/internal/views"

type SolvedCmd struct{}

func (c *SolvedCmd) Run(ctx *Context) error {
	refDate, err := ResolveRefDate("")
	if err != nil {
		return err
	}
	ctx.PrintView(views.Solved, refDate)
	return nil
}
