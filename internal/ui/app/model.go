package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "symptrack/internal/modules/journal/dto"
	reportdto "symptrack/internal/modules/report/dto"
	apperrors "symptrack/internal/platform/errors"
	"symptrack/internal/ui/components"
	"symptrack/internal/ui/theme"
	entryview "symptrack/internal/ui/views/entry"
	historyview "symptrack/internal/ui/views/history"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type journalPort interface {
	Log(ctx context.Context, record journaldto.RecordInput, confirm bool) (journaldto.LogOutput, error)
	List(ctx context.Context) ([]journaldto.RecordOutput, error)
	Reindex(ctx context.Context) (int, error)
	Fields() []journaldto.FieldOutput
}

type reportPort interface {
	RenderChart(ctx context.Context, outPath string, open bool) (reportdto.ChartOutput, error)
	Export(ctx context.Context) (reportdto.ExportOutput, error)
}

// Labels carries the display names of the two tracked drugs.
type Labels struct {
	DrugA string
	DrugB string
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabLog tabID = iota
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Log", "History"}

// ─── async messages ───────────────────────────────────────────────────────────

type exportedMsg struct {
	out reportdto.ExportOutput
	err error
}

type chartMsg struct {
	out   reportdto.ChartOutput
	err   error
	quiet bool
}

type reindexedMsg struct {
	count int
	err   error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Save    key.Binding
	Clear   key.Binding
	Export  key.Binding
	Chart   key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save entry")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear form")),
		Export:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export report")),
		Chart:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "open chart")),
		Palette: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "palette")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Save, k.Export, k.Chart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Save, k.Clear},
		{k.Export, k.Chart},
		{k.Palette, k.Help, k.Quit},
	}
}

// paletteCommands must stay in sync with the switch in executePalette.
var paletteCommands = []components.Command{
	{Name: "export", Description: "write PDF report and chart to reports/"},
	{Name: "chart", Description: "redraw reports/chart.png"},
	{Name: "chart:open", Description: "redraw and open the chart"},
	{Name: "reindex", Description: "rebuild the SQLite index"},
	{Name: "history:reload", Description: "re-read the symptom file"},
	{Name: "form:clear", Description: "reset the entry form"},
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the status bar,
// the help overlay and the command palette. Saving and listing are delegated
// to the sub-views; export and chart rendering run from here.
type Model struct {
	journal journalPort
	report  reportPort

	entryView   entryview.Model
	historyView historyview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	redFlag   bool
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(journal journalPort, report reportPort, labels Labels) Model {
	return Model{
		journal:     journal,
		report:      report,
		entryView:   entryview.New(journal, journal.Fields(), entryview.Labels(labels)),
		historyView: historyview.New(journal, historyview.Labels(labels)),
		activeTab:   tabLog,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(paletteCommands),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.entryView.Init(),
		m.historyView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// SavedMsg is produced by the entry view; the status bar and history
	// both react to it.
	case entryview.SavedMsg:
		var cmd tea.Cmd
		m.entryView, cmd = m.entryView.Update(msg)
		cmds = append(cmds, cmd)
		m.applySaved(msg)
		if msg.Err == nil {
			cmds = append(cmds, m.historyView.Reload(), m.refreshChartCmd())
		}
		return m, tea.Batch(cmds...)

	case historyview.RecordsLoadedMsg:
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd

	case exportedMsg:
		m.redFlag = false
		if msg.err != nil {
			m.status = "export failed: " + apperrors.UserMessage(msg.err)
		} else {
			m.status = fmt.Sprintf("exported %d entries to %s", msg.out.Entries, msg.out.PDFPath)
		}
		return m, nil

	case chartMsg:
		if msg.quiet && msg.err == nil {
			return m, nil
		}
		m.redFlag = false
		if msg.err != nil {
			m.status = "chart failed: " + apperrors.UserMessage(msg.err)
		} else {
			m.status = "chart written to " + msg.out.Path
		}
		return m, nil

	case reindexedMsg:
		m.redFlag = false
		if msg.err != nil {
			m.status = "reindex failed: " + apperrors.UserMessage(msg.err)
		} else {
			m.status = fmt.Sprintf("reindexed %d entries", msg.count)
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "f1" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+e":
			m.status = "exporting…"
			return m, m.exportCmd()
		case "ctrl+g":
			m.status = "rendering chart…"
			return m, m.chartCmd(true)
		case "f1":
			m.showHelp = true
			return m, nil
		case "ctrl+p":
			cmd := m.palette.Open()
			return m, cmd
		}

		// Yield to the form while it waits for a confirmation answer and
		// to the history list while its filter is open.
		if m.entryView.Confirming() || m.historyView.Filtering() {
			break
		}

		switch msg.String() {
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "q":
			if m.activeTab == tabHistory {
				return m, tea.Quit
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabLog:
		m.entryView, tabCmd = m.entryView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabLog:
		return m.entryView.View()
	case tabHistory:
		return m.historyView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == tabHistory {
			label = fmt.Sprintf("%s (%d)", label, m.historyView.Count())
		}
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "symptrack  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.redFlag {
		left = theme.Danger.Render(" ! " + m.status + " ")
	}
	right := theme.Muted.Render("f1:help  tab:switch  ctrl+p:palette  ctrl+c:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "export":
		m.status = "exporting…"
		return m, m.exportCmd()
	case "chart":
		m.status = "rendering chart…"
		return m, m.chartCmd(false)
	case "chart:open":
		m.status = "rendering chart…"
		return m, m.chartCmd(true)
	case "reindex":
		m.status = "reindexing…"
		return m, m.reindexCmd()
	case "history:reload":
		m.activeTab = tabHistory
		return m, m.historyView.Reload()
	case "form:clear":
		m.activeTab = tabLog
		var cmd tea.Cmd
		m.entryView, cmd = m.entryView.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
		return m, cmd
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// applySaved sets the status line from a save outcome. Red flags win over
// every other advisory.
func (m *Model) applySaved(msg entryview.SavedMsg) {
	m.redFlag = false
	var flags, notes []string
	for _, a := range msg.Output.Advisories {
		if a.Kind == "red_flag" {
			flags = append(flags, a.Message)
		} else {
			notes = append(notes, a.Message)
		}
	}
	switch {
	case len(flags) > 0:
		m.redFlag = true
		m.status = strings.Join(flags, "; ")
	case msg.Err != nil:
		m.status = apperrors.UserMessage(msg.Err)
	case len(notes) > 0:
		m.status = fmt.Sprintf("saved %s; %s", msg.Output.Record.Date.Format("02-01-2006"), strings.Join(notes, "; "))
	default:
		m.status = "saved " + msg.Output.Record.Date.Format("02-01-2006")
	}
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.entryView, _ = m.entryView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.Export(context.Background())
		return exportedMsg{out: out, err: err}
	}
}

func (m Model) chartCmd(open bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.RenderChart(context.Background(), "", open)
		return chartMsg{out: out, err: err}
	}
}

// refreshChartCmd redraws reports/chart.png from the full store after a save.
func (m Model) refreshChartCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.RenderChart(context.Background(), "", false)
		return chartMsg{out: out, err: err, quiet: true}
	}
}

func (m Model) reindexCmd() tea.Cmd {
	return func() tea.Msg {
		count, err := m.journal.Reindex(context.Background())
		return reindexedMsg{count: count, err: err}
	}
}
