package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sauravks/leetdash/internal/storage"
	"github.com/sauravks/leetdash/internal/tui/components/problemlist"
	"github.com/sauravks/leetdash/internal/views"
)

type Model struct {
	store    storage.Provider
	refDate  string
	kind     views.Kind
	keys     KeyMap
	help     help.Model
	list     problemlist.Model
	summary  string
	toast    string
	toastErr bool
	// toastSeq guards against a stale clear tick hiding a newer toast.
	toastSeq int
	width    int
	height   int
	quitting bool
}

// NewModel builds the dashboard over an already-loaded store. refDate is the
// caller's "today" in YYYY-MM-DD form; it stays fixed for the session so the
// Today view is deterministic.
func NewModel(store storage.Provider, refDate string) Model {
	m := Model{
		store:   store,
		refDate: refDate,
		kind:    views.Today,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		list:    problemlist.New(0, 0),
	}
	m.refresh()
	return m
}

// refresh re-selects the current view from the document snapshot and replaces
// the list content.
func (m *Model) refresh() {
	problems, summary := views.Select(m.store.Document(), m.kind, m.refDate)
	m.summary = summary
	m.list.SetProblems(problems, m.kind)
}

func (m Model) Init() tea.Cmd {
	return nil
}
