package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"symptrack/internal/ui/theme"
)

// PaletteSubmitMsg carries the chosen command name.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted on esc.
type PaletteCancelMsg struct{}

// Command is one palette entry.
type Command struct {
	Name        string
	Description string
}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	commandStyle = lipgloss.NewStyle().Foreground(theme.Text).Width(18)
	cursorStyle  = lipgloss.NewStyle().Foreground(theme.Lavender).Bold(true).Width(18)
)

// Palette filters a fixed command list as the user types. Up and down move
// the cursor over the matches, tab completes, enter submits.
type Palette struct {
	input    textinput.Model
	commands []Command
	cursor   int
	visible  bool
	width    int
}

func NewPalette(commands []Command) Palette {
	ti := textinput.New()
	ti.Placeholder = "command"
	ti.CharLimit = 64
	return Palette{input: ti, commands: commands}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with an empty query and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.cursor = 0
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		matches := p.Matches()
		switch msg.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "up":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case "down":
			if p.cursor < len(matches)-1 {
				p.cursor++
			}
			return p, nil
		case "tab":
			if len(matches) > 0 {
				p.input.SetValue(matches[p.cursor].Name)
				p.input.CursorEnd()
			}
			return p, nil
		case "enter":
			choice := strings.TrimSpace(p.input.Value())
			if len(matches) > 0 {
				choice = matches[p.cursor].Name
			}
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: choice} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if matches := p.Matches(); p.cursor >= len(matches) {
		p.cursor = max(len(matches)-1, 0)
	}
	return p, cmd
}

// Matches returns the commands whose name contains the query.
func (p Palette) Matches() []Command {
	query := strings.ToLower(strings.TrimSpace(p.input.Value()))
	var out []Command
	for _, c := range p.commands {
		if query == "" || strings.Contains(c.Name, query) {
			out = append(out, c)
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Commands") + "\n")
	sb.WriteString("> " + p.input.View() + "\n\n")
	matches := p.Matches()
	if len(matches) == 0 {
		sb.WriteString(theme.Muted.Render("no matching command"))
	}
	for i, c := range matches {
		name := commandStyle.Render("  " + c.Name)
		if i == p.cursor {
			name = cursorStyle.Render("› " + c.Name)
		}
		sb.WriteString(name + theme.Muted.Render(c.Description) + "\n")
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}
