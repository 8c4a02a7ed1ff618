package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inward/internal/modules/insights/domain"
	insightsin "inward/internal/modules/insights/port/in"
	apperrors "inward/internal/platform/errors"
	"inward/internal/ui/theme"
)

const reportDays = 7

type InsightsPort interface {
	Report(ctx context.Context, days int) (insightsin.Report, error)
	Patterns(ctx context.Context) ([]domain.Pattern, error)
	WeeklyHistory(ctx context.Context) ([]domain.WeeklyInsight, error)
	Narrative(ctx context.Context) (domain.JourneyInsights, error)
}

type LoadedMsg struct {
	Report     insightsin.Report
	Patterns   []domain.Pattern
	Weekly     []domain.WeeklyInsight
	Narrative  domain.JourneyInsights
	HasJourney bool
	Err        error
}

type Model struct {
	port    InsightsPort
	body    viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port InsightsPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, body: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload refetches the report, the pattern snapshot, the weekly archive,
// and the journey narrative in one pass.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		report, err := m.port.Report(ctx, reportDays)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		patterns, err := m.port.Patterns(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		weekly, err := m.port.WeeklyHistory(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		narrative, err := m.port.Narrative(ctx)
		hasJourney := err == nil
		if err != nil && !errors.Is(err, apperrors.ErrNoCurrentJourney) {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Report: report, Patterns: patterns, Weekly: weekly, Narrative: narrative, HasJourney: hasJourney}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 2

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.body.SetContent(theme.Muted.Render("insights: " + msg.Err.Error()))
			return m, nil
		}
		m.body.SetContent(renderInsights(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var vCmd tea.Cmd
	m.body, vCmd = m.body.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Gathering insights…")
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.body.View())
}

func renderInsights(msg LoadedMsg) string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render(fmt.Sprintf("Last %d days", msg.Report.Days)) + "\n")
	sb.WriteString(fmt.Sprintf("%d check-ins, %d%% value alignment\n\n", msg.Report.CheckInCount, msg.Report.AlignmentScore))
	sb.WriteString(renderFrequency("Emotions", msg.Report.Emotions))
	sb.WriteString(renderFrequency("Thought patterns", msg.Report.ThoughtTags))
	sb.WriteString(renderFrequency("Behaviours", msg.Report.Behaviours))

	sb.WriteString(theme.Title.Render("Patterns") + "\n")
	if len(msg.Patterns) == 0 {
		sb.WriteString(theme.Muted.Render("Not enough data yet. Run :insights:detect after a few check-ins.") + "\n")
	}
	for _, p := range msg.Patterns {
		marker := theme.Muted.Render("○")
		if p.Tested {
			marker = theme.Done.Render("●")
		}
		sb.WriteString(fmt.Sprintf("%s %s (seen %d times)\n", marker, p.Description, p.Frequency))
		if p.Hypothesis != "" && !p.Tested {
			sb.WriteString(theme.Muted.Render("   hypothesis: "+p.Hypothesis) + "\n")
		}
	}
	sb.WriteString("\n")

	if len(msg.Weekly) > 0 {
		w := msg.Weekly[0]
		sb.WriteString(theme.Title.Render("Latest weekly summary") + "\n")
		sb.WriteString(theme.Muted.Render("week of ") + w.WeekStarting.Format("Jan 2") + "\n")
		for _, s := range w.BlindSpotSuggestions {
			sb.WriteString(theme.Hot.Render("→ ") + s + "\n")
		}
		sb.WriteString("\n")
	}

	if msg.HasJourney {
		sb.WriteString(theme.Title.Render("From your journey") + "\n")
		n := msg.Narrative
		for _, r := range []*domain.RuleInsight{n.Rule1, n.Rule2, n.Rule3, n.Rule4, n.Rule5} {
			if r == nil {
				continue
			}
			sb.WriteString(r.Insight + "\n")
			sb.WriteString(theme.Muted.Render("   "+r.Advice) + "\n")
		}
		if n.OverallTheme != "" {
			sb.WriteString("\n" + theme.Hot.Render(n.OverallTheme) + "\n")
		}
	}

	return sb.String()
}

func renderFrequency(label string, counts []domain.FrequencyCount) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(label) + "\n")
	if len(counts) == 0 {
		sb.WriteString(theme.Muted.Render("nothing logged yet") + "\n\n")
		return sb.String()
	}
	limit := len(counts)
	if limit > 5 {
		limit = 5
	}
	for _, c := range counts[:limit] {
		sb.WriteString(fmt.Sprintf("%-24s %s\n", c.Item, strings.Repeat("▪", c.Count)))
	}
	sb.WriteString("\n")
	return sb.String()
}
