// Package tui implements the interactive catalog browser behind
// `xcl browse`: a menu of field searches over the in-memory catalog,
// a scrollable results pager, overview and stats screens, and an
// add-record form.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hfranco/xcl/internal/query"
	"github.com/hfranco/xcl/internal/render"
	"github.com/hfranco/xcl/internal/stats"
	"github.com/hfranco/xcl/internal/store"
)

type screen int

const (
	menuScreen screen = iota
	queryScreen
	viewerScreen
	addScreen
)

// Model is the root bubbletea model. It owns the store and routes
// messages to the sub-model of the current screen.
type Model struct {
	store         *store.Store
	currentScreen screen
	menuModel     *MenuModel
	queryModel    *QueryModel
	viewerModel   *ViewerModel
	addModel      *AddModel
	quitting      bool
	width         int
	height        int
}

func New(st *store.Store) Model {
	return Model{
		store:         st,
		currentScreen: menuScreen,
		menuModel:     NewMenuModel(st),
		queryModel:    NewQueryModel(st),
		viewerModel:   NewViewerModel(),
		addModel:      NewAddModel(st),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menuModel.SetSize(msg.Width, msg.Height)
		m.queryModel.SetSize(msg.Width, msg.Height)
		m.viewerModel.SetSize(msg.Width, msg.Height)
		m.addModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			// Typed text wins over the quit hotkey on input screens.
			if m.currentScreen == menuScreen || m.currentScreen == viewerScreen {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			if m.currentScreen != menuScreen {
				m.currentScreen = menuScreen
				return m, nil
			}
		}

	case searchFieldMsg:
		m.currentScreen = queryScreen
		return m, m.queryModel.SetField(msg.Field)

	case resultMsg:
		m.viewerModel.SetResult(msg.Result)
		m.currentScreen = viewerScreen
		return m, nil

	case showOverviewMsg:
		m.viewerModel.SetText("Catalog overview", render.FormatOverview(m.store.All()))
		m.currentScreen = viewerScreen
		return m, nil

	case showStatsMsg:
		m.viewerModel.SetText("Catalog statistics", render.FormatStats(stats.Summarize(m.store.All())))
		m.currentScreen = viewerScreen
		return m, nil

	case showAddMsg:
		m.currentScreen = addScreen
		return m, m.addModel.Focus()
	}

	switch m.currentScreen {
	case menuScreen:
		updated, cmd := m.menuModel.Update(msg)
		m.menuModel = updated.(*MenuModel)
		return m, cmd
	case queryScreen:
		updated, cmd := m.queryModel.Update(msg)
		m.queryModel = updated.(*QueryModel)
		return m, cmd
	case viewerScreen:
		updated, cmd := m.viewerModel.Update(msg)
		m.viewerModel = updated.(*ViewerModel)
		return m, cmd
	case addScreen:
		updated, cmd := m.addModel.Update(msg)
		m.addModel = updated.(*AddModel)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.currentScreen {
	case menuScreen:
		return m.menuModel.View()
	case queryScreen:
		return m.queryModel.View()
	case viewerScreen:
		return m.viewerModel.View()
	case addScreen:
		return m.addModel.View()
	}
	return ""
}

// Messages passed from sub-models up to the root model.

type searchFieldMsg struct {
	Field query.Field
}

type resultMsg struct {
	Result query.Result
}

type showOverviewMsg struct{}

type showStatsMsg struct{}

type showAddMsg struct{}
