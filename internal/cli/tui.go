package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sauravks/leetdash/internal/tui"
)

type TuiCmd struct {
	Date string `help:"Override the reference date (YYYY-MM-DD)."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	refDate, err := ResolveRefDate(c.Date)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, refDate), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
