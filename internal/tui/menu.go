package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hfranco/xcl/internal/query"
	"github.com/hfranco/xcl/internal/store"
)

type menuAction int

const (
	actionSearch menuAction = iota
	actionOverview
	actionStats
	actionAdd
	actionQuit
)

type menuEntry struct {
	label  string
	action menuAction
	field  query.Field // set for actionSearch only
}

func menuEntries() []menuEntry {
	entries := make([]menuEntry, 0, len(query.Fields())+4)
	for _, f := range query.Fields() {
		entries = append(entries, menuEntry{
			label:  "Search by " + fieldTitle(f),
			action: actionSearch,
			field:  f,
		})
	}
	entries = append(entries,
		menuEntry{label: "Catalog overview", action: actionOverview},
		menuEntry{label: "Statistics", action: actionStats},
		menuEntry{label: "Add a record", action: actionAdd},
		menuEntry{label: "Quit", action: actionQuit},
	)
	return entries
}

type MenuModel struct {
	store   *store.Store
	entries []menuEntry
	cursor  int
	width   int
	height  int
}

func NewMenuModel(st *store.Store) *MenuModel {
	return &MenuModel{store: st, entries: menuEntries()}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter", " ":
			return m, m.handleSelection()
		}
	}
	return m, nil
}

func (m *MenuModel) handleSelection() tea.Cmd {
	entry := m.entries[m.cursor]
	switch entry.action {
	case actionSearch:
		return func() tea.Msg { return searchFieldMsg{Field: entry.field} }
	case actionOverview:
		return func() tea.Msg { return showOverviewMsg{} }
	case actionStats:
		return func() tea.Msg { return showStatsMsg{} }
	case actionAdd:
		return func() tea.Msg { return showAddMsg{} }
	case actionQuit:
		return tea.Quit
	}
	return nil
}

func (m *MenuModel) View() string {
	title := titleStyle.Render("Xerox consumables catalog")
	sub := fmt.Sprintf("%d records in %s", m.store.Len(), m.store.Path())

	var menu string
	for i, entry := range m.entries {
		cursor := " "
		label := entry.label
		if m.cursor == i {
			cursor = ">"
			label = selectedMenuItemStyle.Render(label)
		} else {
			label = menuItemStyle.Render(label)
		}
		menu += fmt.Sprintf("%s %s\n", cursor, label)
	}

	help := helpStyle.Render("↑/↓ or j/k move • enter select • q quit")

	content := lipgloss.JoinVertical(lipgloss.Left, title, sub, "", menu, help)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
