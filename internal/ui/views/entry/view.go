package entry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "symptrack/internal/modules/journal/dto"
	apperrors "symptrack/internal/platform/errors"
	"symptrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type EntryPort interface {
	Log(ctx context.Context, record journaldto.RecordInput, confirm bool) (journaldto.LogOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// SavedMsg reports the outcome of a save. The app model reads it to update
// the status bar and refresh history.
type SavedMsg struct {
	Output journaldto.LogOutput
	Err    error
}

// ─── field ───────────────────────────────────────────────────────────────────

type field struct {
	name    string
	label   string
	kind    string
	options []string
	choice  int
	input   textinput.Model
}

func (f field) isChoice() bool { return f.kind == "choice" }

func (f field) value() string {
	if f.isChoice() {
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.choice]
	}
	return strings.TrimSpace(f.input.Value())
}

var fieldLabels = map[string]string{
	"date":                  "Date (DD-MM-YYYY)",
	"congestion":            "Congestion (0-10)",
	"itch":                  "Itch (0-10)",
	"facial_pain":           "Facial pain",
	"nasal_discharge":       "Nasal discharge",
	"breathing_difficulty":  "Breathing difficulty",
	"cough":                 "Cough",
	"sneezing":              "Sneezing (0-10)",
	"skin_rash":             "Skin rash",
	"hives":                 "Hives",
	"swelling":              "Swelling",
	"other_medications":     "Other medications",
	"days_post_op":          "Days post-op",
	"breathing_improvement": "Breathing improvement",
	"notes":                 "Notes",
}

// Labels carries the display names of the two tracked drugs.
type Labels struct {
	DrugA string
	DrugB string
}

func labelFor(name string, labels Labels) string {
	switch name {
	case "drugA_suspended":
		return labels.DrugA + " stopped"
	case "drugB_suspended":
		return labels.DrugB + " stopped"
	}
	if label, ok := fieldLabels[name]; ok {
		return label
	}
	return name
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    EntryPort
	fields  []field
	focus   int
	confirm bool
	saving  bool
	pending journaldto.RecordInput
	notice  string
	width   int
	height  int
}

func New(port EntryPort, specs []journaldto.FieldOutput, labels Labels) Model {
	fields := make([]field, 0, len(specs))
	for _, spec := range specs {
		f := field{
			name:    spec.Name,
			label:   labelFor(spec.Name, labels),
			kind:    spec.Kind,
			options: spec.Options,
		}
		if !f.isChoice() {
			ti := textinput.New()
			ti.Prompt = ""
			ti.CharLimit = 256
			switch spec.Kind {
			case "date":
				ti.Placeholder = "today"
				ti.CharLimit = 10
			case "scale", "count":
				ti.Placeholder = "0"
				ti.CharLimit = 4
			}
			f.input = ti
		}
		fields = append(fields, f)
	}
	m := Model{port: port, fields: fields}
	m.focusField(0)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SavedMsg:
		m.saving = false
		switch {
		case errors.Is(msg.Err, apperrors.ErrConfirmationRequired):
			m.confirm = true
			m.notice = "Both drugs are still marked as not stopped. Save anyway? (y/n)"
		case msg.Err != nil:
			m.notice = apperrors.UserMessage(msg.Err)
		default:
			m.notice = fmt.Sprintf("saved entry %d", msg.Output.Seq)
			m.reset()
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirm {
			switch msg.String() {
			case "y", "Y":
				m.confirm = false
				m.saving = true
				return m, m.logCmd(m.pending, true)
			case "n", "N", "esc":
				m.confirm = false
				m.notice = "save cancelled"
			}
			return m, nil
		}
		if m.saving {
			return m, nil
		}

		switch msg.String() {
		case "ctrl+s":
			m.pending = m.Input()
			m.saving = true
			m.notice = "saving…"
			return m, m.logCmd(m.pending, false)
		case "ctrl+r":
			m.reset()
			m.notice = "form cleared"
			return m, nil
		case "up", "shift+tab":
			cmd := m.focusField(m.focus - 1)
			return m, cmd
		case "down", "enter":
			cmd := m.focusField(m.focus + 1)
			return m, cmd
		case "left":
			if f := &m.fields[m.focus]; f.isChoice() {
				f.choice = (f.choice + len(f.options) - 1) % len(f.options)
				return m, nil
			}
		case "right", " ":
			if f := &m.fields[m.focus]; f.isChoice() {
				f.choice = (f.choice + 1) % len(f.options)
				return m, nil
			}
		}
	}

	if len(m.fields) == 0 || m.fields[m.focus].isChoice() {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("New entry") + "\n\n")
	for i, f := range m.fields {
		label := theme.Label.Render(f.label)
		var value string
		if f.isChoice() {
			value = renderChoice(f, i == m.focus)
		} else {
			value = f.input.View()
		}
		cursor := "  "
		if i == m.focus {
			cursor = theme.Hot.Render("› ")
		}
		sb.WriteString(cursor + label + value + "\n")
	}
	sb.WriteString("\n")
	switch {
	case m.confirm:
		sb.WriteString(theme.Warn.Render(m.notice))
	case m.notice != "":
		sb.WriteString(theme.Muted.Render(m.notice))
	default:
		sb.WriteString(theme.Muted.Render("↑/↓: field  ←/→: choose  ctrl+s: save  ctrl+r: clear"))
	}
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(0, 1).Render(sb.String())
}

// Input collects the current form state as a record input.
func (m Model) Input() journaldto.RecordInput {
	var input journaldto.RecordInput
	for _, f := range m.fields {
		input.Set(f.name, f.value())
	}
	return input
}

// Confirming reports whether the form waits for a y/n answer.
func (m Model) Confirming() bool { return m.confirm }

// ─── private ─────────────────────────────────────────────────────────────────

func renderChoice(f field, focused bool) string {
	if len(f.options) == 0 {
		return ""
	}
	text := strings.ReplaceAll(f.options[f.choice], "_", " ")
	if focused {
		return theme.Selected.Render("‹ " + text + " ›")
	}
	return "  " + text
}

func (m *Model) focusField(i int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	i = (i + len(m.fields)) % len(m.fields)
	if !m.fields[m.focus].isChoice() {
		m.fields[m.focus].input.Blur()
	}
	m.focus = i
	if m.fields[i].isChoice() {
		return nil
	}
	return m.fields[i].input.Focus()
}

func (m *Model) reset() {
	for i := range m.fields {
		m.fields[i].choice = 0
		if !m.fields[i].isChoice() {
			m.fields[i].input.SetValue("")
		}
	}
	m.pending = journaldto.RecordInput{}
	m.focusField(0)
}

func (m Model) logCmd(input journaldto.RecordInput, confirm bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Log(context.Background(), input, confirm)
		return SavedMsg{Output: out, Err: err}
	}
}
