package journey

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inward/internal/modules/journey/domain"
	"inward/internal/modules/journey/dto"
	apperrors "inward/internal/platform/errors"
	"inward/internal/ui/theme"
)

type JourneyPort interface {
	Current(ctx context.Context) (dto.JourneyOutput, error)
	CurrentResponses(ctx context.Context) (domain.Responses, error)
	History(ctx context.Context) ([]dto.JourneyOutput, error)
}

type LoadedMsg struct {
	Journey   dto.JourneyOutput
	Responses domain.Responses
	History   []dto.JourneyOutput
	NoCurrent bool
	Err       error
}

var ruleTitles = [domain.RuleCount]string{
	"What bothers you is a mirror",
	"Outsized reactions have roots",
	"Both/and, not either/or",
	"Sort your inherited values",
	"Events are neutral",
}

type ruleItem struct {
	number int
	done   bool
}

func (i ruleItem) Title() string {
	marker := "○"
	if i.done {
		marker = "●"
	}
	return fmt.Sprintf("%s Rule %d", marker, i.number)
}
func (i ruleItem) Description() string { return ruleTitles[i.number-1] }
func (i ruleItem) FilterValue() string { return ruleTitles[i.number-1] }

type Model struct {
	port      JourneyPort
	list      list.Model
	detail    viewport.Model
	journey   dto.JourneyOutput
	responses domain.Responses
	history   []dto.JourneyOutput
	noCurrent bool
	errText   string
	width     int
	height    int
}

func New(port JourneyPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "The 5 Rules"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{port: port, list: l, detail: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches the current journey, its answers, and the archive.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		history, err := m.port.History(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		current, err := m.port.Current(context.Background())
		if errors.Is(err, apperrors.ErrNoCurrentJourney) {
			return LoadedMsg{History: history, NoCurrent: true}
		}
		if err != nil {
			return LoadedMsg{Err: err}
		}
		responses, err := m.port.CurrentResponses(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Journey: current, Responses: responses, History: history}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.journey = msg.Journey
		m.responses = msg.Responses
		m.history = msg.History
		m.noCurrent = msg.NoCurrent
		items := make([]list.Item, domain.RuleCount)
		for i := 0; i < domain.RuleCount; i++ {
			items[i] = ruleItem{number: i + 1, done: !msg.NoCurrent && hasRule(msg.Journey.CompletedRules, i+1)}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())
	}

	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		m.detail.SetContent(m.renderDetail())
	}

	var vCmd tea.Cmd
	m.detail, vCmd = m.detail.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
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
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedRule returns the highlighted rule number, 1-based.
func (m Model) SelectedRule() (int, bool) {
	if item, ok := m.list.SelectedItem().(ruleItem); ok {
		return item.number, true
	}
	return 0, false
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	if m.errText != "" {
		return theme.Muted.Render("journey: " + m.errText)
	}
	if m.noCurrent {
		var sb strings.Builder
		sb.WriteString(theme.Muted.Render("No journey in progress. Use :journey:start to begin.") + "\n")
		sb.WriteString(m.renderHistory())
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.journey.ID) + "\n")
	progress := fmt.Sprintf("%d / %d rules complete", len(m.journey.CompletedRules), domain.RuleCount)
	if m.journey.Complete {
		sb.WriteString(theme.Done.Render("✓ "+progress) + "\n\n")
	} else {
		sb.WriteString(theme.Muted.Render(progress) + "\n\n")
	}

	rule, _ := m.SelectedRule()
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("Rule %d: %s", rule, ruleTitles[rule-1])) + "\n\n")
	for _, f := range ruleFields(m.responses, rule) {
		sb.WriteString(theme.Muted.Render(f.label+": "))
		if f.value == "" {
			sb.WriteString(theme.Muted.Render("—") + "\n")
		} else {
			sb.WriteString(f.value + "\n")
		}
	}

	if len(m.journey.Themes) > 0 {
		sb.WriteString("\n" + theme.Muted.Render("themes: ") + strings.Join(m.journey.Themes, ", ") + "\n")
	}
	sb.WriteString("\n" + m.renderHistory())
	sb.WriteString("\n" + theme.Muted.Render("c: mark rule complete  :journey:answer to write"))
	return sb.String()
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return theme.Muted.Render("No archived journeys yet.")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Archive") + "\n")
	for _, j := range m.history {
		line := fmt.Sprintf("%s  %s", j.StartedAt.Format("2006-01-02"), strings.Join(j.Themes, ", "))
		if j.Complete {
			sb.WriteString(theme.Done.Render("✓ ") + line + "\n")
		} else {
			sb.WriteString(theme.Muted.Render("○ ") + line + "\n")
		}
	}
	return sb.String()
}

type fieldLine struct {
	label string
	value string
}

func ruleFields(r domain.Responses, rule int) []fieldLine {
	switch rule {
	case 1:
		return []fieldLine{
			{"trigger", r.Rule1.Trigger},
			{"trait", r.Rule1.Trait},
			{"mirror", r.Rule1.Mirror},
			{"instance", r.Rule1.Instance},
		}
	case 2:
		return []fieldLine{
			{"event", r.Rule2.Event},
			{"why 1", r.Rule2.Why1},
			{"why 2", r.Rule2.Why2},
			{"why 3", r.Rule2.Why3},
			{"conclusion", r.Rule2.Conclusion},
		}
	case 3:
		return []fieldLine{
			{"label", r.Rule3.Label},
			{"fear", r.Rule3.Fear},
			{"integration", r.Rule3.Integration},
		}
	case 4:
		lines := make([]fieldLine, 0, domain.ValueSlots)
		for i := 0; i < domain.ValueSlots; i++ {
			if r.Rule4.Values[i] == "" {
				continue
			}
			lines = append(lines, fieldLine{
				label: fmt.Sprintf("value %d", i+1),
				value: fmt.Sprintf("%s (%s) → %s", r.Rule4.Values[i], r.Rule4.Sources[i], r.Rule4.Decisions[i]),
			})
		}
		if len(lines) == 0 {
			lines = append(lines, fieldLine{label: "values", value: ""})
		}
		return lines
	case 5:
		return []fieldLine{
			{"event", r.Rule5.Event},
			{"judgment", r.Rule5.Judgment},
			{"neutral", r.Rule5.Neutral},
			{"acceptance", r.Rule5.Acceptance},
		}
	}
	return nil
}

func hasRule(completed []int, n int) bool {
	for _, r := range completed {
		if r == n {
			return true
		}
	}
	return false
}
