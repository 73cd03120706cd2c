package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hfranco/xcl/internal/catalog"
	"github.com/hfranco/xcl/internal/render"
	"github.com/hfranco/xcl/internal/store"
)

type addState int

const (
	addFormState addState = iota
	addDoneState
)

var addFields = []struct {
	label       string
	placeholder string
}{
	{"Part number", "006R01521"},
	{"Color", "Black"},
	{"Printer model", "DCP 550/560/570"},
	{"Consumable type", "toner"},
	{"Yield", "30000"},
	{"Region zone", "WW"},
	{"Metered/sold", "sold"},
	{"IOT codename", "Hera2cXC"},
	{"Chip type", "R2"},
}

// AddModel is the nine-field add-record form. Submitting appends the
// record and saves the catalog immediately; no field is required.
type AddModel struct {
	store   *store.Store
	state   addState
	inputs  []textinput.Model
	focused int
	errText string
	saved   catalog.Record
	width   int
	height  int
}

func NewAddModel(st *store.Store) *AddModel {
	inputs := make([]textinput.Model, len(addFields))
	for i, f := range addFields {
		input := textinput.New()
		input.Placeholder = f.placeholder
		input.CharLimit = 128
		input.Width = 32
		inputs[i] = input
	}
	return &AddModel{store: st, inputs: inputs}
}

func (m *AddModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AddModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus resets the form and puts the cursor on the first field.
func (m *AddModel) Focus() tea.Cmd {
	m.state = addFormState
	m.errText = ""
	m.focused = 0
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	return m.updateFocus()
}

func (m *AddModel) updateFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focused {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.state == addDoneState {
			if s := key.String(); s == "enter" || s == " " {
				return m, m.Focus()
			}
			return m, nil
		}

		switch key.String() {
		case "tab", "down":
			m.focused = (m.focused + 1) % len(m.inputs)
			return m, m.updateFocus()
		case "shift+tab", "up":
			m.focused = (m.focused - 1 + len(m.inputs)) % len(m.inputs)
			return m, m.updateFocus()
		case "enter":
			m.submit()
			return m, nil
		}
		m.errText = ""
	}

	if m.state == addDoneState {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *AddModel) submit() {
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = strings.TrimSpace(m.inputs[i].Value())
	}

	rec, err := catalog.FromFields(values)
	if err != nil {
		m.errText = err.Error()
		return
	}

	m.store.Append(rec)
	if err := m.store.Save(); err != nil {
		m.errText = err.Error()
		return
	}

	m.saved = rec
	m.state = addDoneState
}

func (m *AddModel) View() string {
	if m.state == addDoneState {
		return m.viewDone()
	}

	var form strings.Builder
	for i, f := range addFields {
		if i > 0 {
			form.WriteString("\n")
		}
		form.WriteString(labelStyle.Render(f.label))
		form.WriteString("\n")
		form.WriteString(m.inputs[i].View())
	}

	parts := []string{
		titleStyle.Render("Add a record"),
		formStyle.Render(form.String()),
	}
	if m.errText != "" {
		parts = append(parts, errorStyle.Render(m.errText))
	}
	parts = append(parts, helpStyle.Render("tab next field • enter save • esc menu"))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
	}
	return content
}

func (m *AddModel) viewDone() string {
	part := m.saved.PartNumber
	if part == "" {
		part = "(no part number)"
	}

	detail := strings.TrimRight(render.FormatRecord(m.saved), "\n")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Add a record"),
		successStyle.Render(fmt.Sprintf("Added %s (%d records in catalog)", part, m.store.Len())),
		formStyle.Render(detail),
		helpStyle.Render("enter add another • esc menu"),
	)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
	}
	return content
}
