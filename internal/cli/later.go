package cli

import "github.com/sauravks/leetdash/internal/views"

type LaterCmd struct{}

func (c *LaterCmd) Run(ctx *Context) error {
	refDate, err := ResolveRefDate("")
	if err != nil {
		return err
	}
	ctx.PrintView(views.SolveLater, refDate)
	return nil
}
