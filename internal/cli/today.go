package cli

import "github.com/sauravks/leetdash/internal/views"

type TodayCmd struct {
	Date string `help:"Override the reference date (YYYY-MM-DD)."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	refDate, err := ResolveRefDate(c.Date)
	if err != nil {
		return err
	}
	ctx.PrintView(views.Today, refDate)
	return nil
}
