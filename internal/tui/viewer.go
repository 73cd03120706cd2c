package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hfranco/xcl/internal/query"
	"github.com/hfranco/xcl/internal/render"
)

// ViewerModel is the scrollable text screen behind search results,
// the catalog overview and the stats summary.
type ViewerModel struct {
	title    string
	viewport viewport.Model
	width    int
	height   int
}

func NewViewerModel() *ViewerModel {
	return &ViewerModel{viewport: viewport.New(80, 20)}
}

func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

func (m *ViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	// Leave room for the title and help lines.
	m.viewport.Height = height - 6
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}
}

// SetText fills the pager with pre-rendered plain text.
func (m *ViewerModel) SetText(title, body string) {
	m.title = title
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
}

// SetResult fills the pager with a styled search result.
func (m *ViewerModel) SetResult(res query.Result) {
	m.title = "Search results"
	m.viewport.SetContent(colorizeResult(res))
	m.viewport.GotoTop()
}

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ViewerModel) View() string {
	title := titleStyle.Render(m.title)
	help := helpStyle.Render("↑/↓ scroll • esc menu • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), help)
}

// colorizeResult layers terminal styling over the plain result text:
// the count line bold, group headers highlighted, record lines tinted
// by toner color.
func colorizeResult(res query.Result) string {
	if res.Total == 0 {
		return warningStyle.Render(strings.TrimRight(render.NoResults, "\n"))
	}

	lines := strings.Split(strings.TrimRight(render.FormatResult(res), "\n"), "\n")
	for i, line := range lines {
		switch {
		case line == "":
		case i == 0:
			lines[i] = countStyle.Render(line)
		case strings.HasPrefix(line, "  "):
			lines[i] = accentRecordLine(line)
		default:
			lines[i] = groupHeaderStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// accentRecordLine tints a record line when it mentions cyan, magenta
// or yellow. Black and everything else keep the default foreground.
func accentRecordLine(line string) string {
	lower := strings.ToLower(line)
	for _, name := range []string{"cyan", "magenta", "yellow"} {
		if strings.Contains(lower, name) {
			return consumableAccents[name].Render(line)
		}
	}
	return line
}
