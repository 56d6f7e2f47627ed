package problemlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sauravks/leetdash/internal/models"
	"github.com/sauravks/leetdash/internal/views"
)

var badgeStyles = map[string]lipgloss.Style{
	"easy":   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	"hard":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Italic(true)

type Item struct {
	Problem models.Problem
}

func (i Item) Title() string { return i.Problem.Title }

func (i Item) Description() string {
	return fmt.Sprintf("%s  %s  %s", badge(i.Problem.Difficulty), i.Problem.Slug, i.Problem.URL())
}

func (i Item) FilterValue() string { return i.Problem.Title + " " + i.Problem.Slug }

func badge(d models.Difficulty) string {
	if style, ok := badgeStyles[d.Class()]; ok {
		return style.Render(string(d))
	}
	return string(d)
}

type Model struct {
	list  list.Model
	empty string
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false) // help is handled globally in the main model
	return Model{list: l, empty: views.EmptyMessage(views.Today)}
}

// SetProblems fully replaces the displayed content. Calling it twice with the
// same selection yields the same list, never an accumulation.
func (m *Model) SetProblems(problems []models.Problem, kind views.Kind) {
	items := make([]list.Item, len(problems))
	for i, p := range problems {
		items[i] = Item{Problem: p}
	}
	m.list.SetItems(items)
	m.empty = views.EmptyMessage(kind)
	if m.list.Index() >= len(items) {
		m.list.ResetSelected()
	}
}

// Filtering reports whether the filter input is capturing keystrokes.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the problem under the cursor.
func (m Model) Selected() (models.Problem, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Problem, true
	}
	return models.Problem{}, false
}

// Items exposes the rendered item set.
func (m Model) Items() []list.Item {
	return m.list.Items()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  " + emptyStyle.Render(m.empty)
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
