package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sauravks/leetdash/internal/constants"
	"github.com/sauravks/leetdash/internal/logger"
	"github.com/sauravks/leetdash/internal/views"
)

type toastMsg struct {
	text  string
	isErr bool
}

type clearToastMsg struct {
	seq int
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// tabs + summary + toast + help rows
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case toastMsg:
		// A new toast replaces the current one and restarts the timer.
		m.toast = msg.text
		m.toastErr = msg.isErr
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(constants.ToastDuration, func(time.Time) tea.Msg {
			return clearToastMsg{seq: seq}
		})

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
			m.toastErr = false
		}
		return m, nil

	case tea.KeyMsg:
		// While the filter input is active, keystrokes belong to the filter.
		if m.list.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.kind = nextKind(m.kind, 1)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.kind = nextKind(m.kind, -1)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			if err := m.store.Load(); err != nil {
				logger.Error("Reload failed", "error", err)
				return m, toast("Failed to load data", true)
			}
			m.refresh()
			return m, toast("Reloaded", false)

		case key.Matches(msg, m.keys.CopySlug):
			if p, ok := m.list.Selected(); ok {
				return m, copyCmd(p.Slug, fmt.Sprintf("Copied: %s", p.Slug))
			}
			return m, nil

		case key.Matches(msg, m.keys.CopyURL):
			if p, ok := m.list.Selected(); ok {
				return m, copyCmd(p.URL(), "Copied link")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func nextKind(kind views.Kind, step int) views.Kind {
	for i, k := range views.Kinds {
		if k == kind {
			return views.Kinds[(i+step+len(views.Kinds))%len(views.Kinds)]
		}
	}
	return views.Today
}

func toast(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{text: text, isErr: isErr}
	}
}

// copyCmd captures the value at dispatch time, so a re-render between key
// press and completion cannot bind the action to a different item. A
// clipboard failure degrades to an error toast; the list stays interactive.
func copyCmd(value, okText string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			logger.Warn("Clipboard write failed", "error", err)
			return toastMsg{text: "Copy failed", isErr: true}
		}
		return toastMsg{text: okText}
	}
}
