package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sauravks/leetdash/internal/views"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var toastLine string
	if m.toast != "" {
		if m.toastErr {
			toastLine = errorToastStyle.Render(m.toast)
		} else {
			toastLine = toastStyle.Render(m.toast)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		summaryStyle.Render(m.summary),
		docStyle.Render(m.list.View()),
		toastLine,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, k := range views.Kinds {
		if k == m.kind {
			tabs = append(tabs, activeTabStyle.Render(k.Tab()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(k.Tab()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
