package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "symptrack/internal/modules/journal/dto"
	apperrors "symptrack/internal/platform/errors"
	"symptrack/internal/ui/theme"
)

const dateLayout = "02-01-2006"

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	List(ctx context.Context) ([]journaldto.RecordOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type RecordsLoadedMsg struct {
	Records []journaldto.RecordOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type recordItem struct {
	record journaldto.RecordOutput
}

func (i recordItem) Title() string { return i.record.Date.Format(dateLayout) }
func (i recordItem) Description() string {
	return fmt.Sprintf("congestion %d  itch %d  sneezing %d  pain %.0f",
		i.record.Congestion, i.record.Itch, i.record.Sneezing, i.record.PainScore)
}
func (i recordItem) FilterValue() string {
	return i.record.Date.Format(dateLayout) + " " + i.record.Notes
}

// Labels carries the display names of the two tracked drugs.
type Labels struct {
	DrugA string
	DrugB string
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    HistoryPort
	labels  Labels
	list    list.Model
	preview viewport.Model
	spinner spinner.Model
	loading bool
	count   int
	width   int
	height  int
}

func New(port HistoryPort, labels Labels) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "History"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		labels:  labels,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case RecordsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "History: " + apperrors.UserMessage(msg.Err)
			return m, nil
		}
		m.list.Title = "History"
		m.count = len(msg.Records)
		// newest first
		items := make([]list.Item, 0, len(msg.Records))
		for i := len(msg.Records) - 1; i >= 0; i-- {
			items = append(items, recordItem{record: msg.Records[i]})
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.list.Select(0)
		m.preview.SetContent(m.renderDetail())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.preview.SetContent(m.renderDetail())
			m.preview.GotoTop()
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading history…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Reload re-reads every record from the store.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		records, err := m.port.List(context.Background())
		return RecordsLoadedMsg{Records: records, Err: err}
	}
}

// Count is the number of records last loaded.
func (m Model) Count() int { return m.count }

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(recordItem)
	if !ok {
		return theme.Muted.Render("No entries yet. Log one from the Log tab.")
	}
	r := item.record
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(r.Date.Format(dateLayout)) + "\n\n")

	section := func(title string, rows ...[2]string) {
		sb.WriteString(theme.Hot.Render(title) + "\n")
		for _, row := range rows {
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %-22s", row[0])) + theme.Level(row[1]).Render(orDash(row[1])) + "\n")
		}
		sb.WriteString("\n")
	}

	section("Nasal",
		[2]string{"congestion", fmt.Sprint(r.Congestion)},
		[2]string{"itch", fmt.Sprint(r.Itch)},
		[2]string{"sneezing", fmt.Sprint(r.Sneezing)},
		[2]string{"facial pain", r.FacialPain},
		[2]string{"pain score", fmt.Sprintf("%.0f", r.PainScore)},
		[2]string{"discharge", r.NasalDischarge},
	)
	section("Medication",
		[2]string{m.labels.DrugA, suspension(r.DrugASuspended, r.DrugADays, r.DrugAStopped)},
		[2]string{m.labels.DrugB, suspension(r.DrugBSuspended, r.DrugBDays, r.DrugBStopped)},
		[2]string{"other", r.OtherMedications},
	)
	section("Respiratory",
		[2]string{"breathing difficulty", r.BreathingDifficulty},
		[2]string{"cough", r.Cough},
	)
	section("Skin",
		[2]string{"rash", r.SkinRash},
		[2]string{"hives", r.Hives},
		[2]string{"swelling", r.Swelling},
	)
	section("Post-op",
		[2]string{"days", fmt.Sprint(r.DaysPostOp)},
		[2]string{"breathing improvement", r.BreathingImprovement},
	)
	if strings.TrimSpace(r.Notes) != "" {
		sb.WriteString(theme.Hot.Render("Notes") + "\n  " + r.Notes + "\n")
	}
	return sb.String()
}

func suspension(value string, days float64, stopped bool) string {
	if !stopped {
		return value
	}
	return fmt.Sprintf("stopped ~%.1f days ago", days)
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return strings.ReplaceAll(value, "_", " ")
}
