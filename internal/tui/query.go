package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hfranco/xcl/internal/query"
	"github.com/hfranco/xcl/internal/store"
)

// QueryModel is the single-field search prompt. Parse errors render
// inline under the input; a successful search hands its result to the
// viewer via resultMsg.
type QueryModel struct {
	store   *store.Store
	field   query.Field
	input   textinput.Model
	errText string
	width   int
	height  int
}

func NewQueryModel(st *store.Store) *QueryModel {
	input := textinput.New()
	input.CharLimit = 128
	input.Width = 40
	return &QueryModel{store: st, input: input}
}

func (m *QueryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *QueryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetField readies the prompt for a fresh search against field.
func (m *QueryModel) SetField(f query.Field) tea.Cmd {
	m.field = f
	m.errText = ""
	m.input.SetValue("")
	m.input.Placeholder = fieldHint(f)
	return m.input.Focus()
}

func (m *QueryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "enter" {
			res, err := query.Search(m.store.All(), string(m.field), m.input.Value())
			if err != nil {
				m.errText = err.Error()
				return m, nil
			}
			return m, func() tea.Msg { return resultMsg{Result: res} }
		}
		m.errText = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *QueryModel) View() string {
	parts := []string{
		titleStyle.Render("Search by " + fieldTitle(m.field)),
		formStyle.Render(labelStyle.Render("Query") + "\n" + m.input.View()),
	}
	if m.errText != "" {
		parts = append(parts, errorStyle.Render(m.errText))
	}
	parts = append(parts, helpStyle.Render("enter search • esc menu"))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
	}
	return content
}

func fieldTitle(f query.Field) string {
	switch f {
	case query.FieldModel:
		return "printer model"
	case query.FieldPart:
		return "part number"
	case query.FieldColor:
		return "color"
	case query.FieldType:
		return "consumable type"
	case query.FieldIOT:
		return "IOT codename"
	case query.FieldRegion:
		return "region zone"
	case query.FieldYield:
		return "yield"
	}
	return string(f)
}

func fieldHint(f query.Field) string {
	switch f {
	case query.FieldModel:
		return "DCP 550"
	case query.FieldPart:
		return "006R01521"
	case query.FieldColor:
		return "Black"
	case query.FieldType:
		return "toner"
	case query.FieldIOT:
		return "Hera2cXC"
	case query.FieldRegion:
		return "WW"
	case query.FieldYield:
		return "30000, 20000-40000, >10000 or <50000"
	}
	return ""
}
