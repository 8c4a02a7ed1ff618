package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	checkindomain "inward/internal/modules/checkin/domain"
	checkindto "inward/internal/modules/checkin/dto"
	insightsdomain "inward/internal/modules/insights/domain"
	insightsin "inward/internal/modules/insights/port/in"
	journeydomain "inward/internal/modules/journey/domain"
	journeydto "inward/internal/modules/journey/dto"
	plugindto "inward/internal/modules/plugin/dto"
	"inward/internal/ui/components"
	"inward/internal/ui/theme"
	checkinsview "inward/internal/ui/views/checkins"
	insightsview "inward/internal/ui/views/insights"
	journeyview "inward/internal/ui/views/journey"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type journeyPort interface {
	Current(ctx context.Context) (journeydto.JourneyOutput, error)
	CurrentResponses(ctx context.Context) (journeydomain.Responses, error)
	History(ctx context.Context) ([]journeydto.JourneyOutput, error)
	StartNew(ctx context.Context) (journeydto.JourneyOutput, error)
	UpdateResponse(ctx context.Context, input journeydto.UpdateInput) error
	MarkRuleComplete(ctx context.Context, rule int) (journeydto.JourneyOutput, error)
	Reset(ctx context.Context) error
	ArchiveAndStartNew(ctx context.Context) (journeydto.JourneyOutput, error)
}

type checkinPort interface {
	List(ctx context.Context) ([]checkindomain.CheckIn, error)
	DailyCounts(ctx context.Context, days int) ([]checkindto.DayCount, error)
	Delete(ctx context.Context, id string) error
	Reindex(ctx context.Context) (int, error)
}

type insightsPort interface {
	Report(ctx context.Context, days int) (insightsin.Report, error)
	Patterns(ctx context.Context) ([]insightsdomain.Pattern, error)
	WeeklyHistory(ctx context.Context) ([]insightsdomain.WeeklyInsight, error)
	Narrative(ctx context.Context) (insightsdomain.JourneyInsights, error)
	DetectPatterns(ctx context.Context) ([]insightsdomain.Pattern, error)
	MarkPatternTested(ctx context.Context, id string) error
	BuildWeekly(ctx context.Context) (insightsdomain.WeeklyInsight, error)
}

type pluginPort interface {
	GenerateInsight(ctx context.Context, input plugindto.InsightInput) (plugindto.InsightOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabJourney tabID = iota
	tabCheckIns
	tabInsights
	tabCount
)

var tabLabels = [tabCount]string{
	"Journey", "Check-Ins", "Insights",
}

// ─── async messages ───────────────────────────────────────────────────────────

type actionDoneMsg struct {
	status string
	reload tabID
	err    error
}

type pluginInsightMsg struct {
	out plugindto.InsightOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Complete key.Binding
	Delete   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete rule")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete check-in")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Complete, k.Delete},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay, and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	journey  journeyPort
	checkins checkinPort
	insights insightsPort
	plugin   pluginPort

	journeyView  journeyview.Model
	checkinView  checkinsview.Model
	insightsView insightsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(journey journeyPort, checkins checkinPort, insights insightsPort, plugin pluginPort) Model {
	return Model{
		journey:      journey,
		checkins:     checkins,
		insights:     insights,
		plugin:       plugin,
		journeyView:  journeyview.New(journey),
		checkinView:  checkinsview.New(checkins),
		insightsView: insightsview.New(insights),
		activeTab:    tabJourney,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.journeyView.Init(),
		m.checkinView.Init(),
		m.insightsView.Init(),
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

	case actionDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		switch msg.reload {
		case tabJourney:
			cmds = append(cmds, m.journeyView.Reload(), m.insightsView.Reload())
		case tabCheckIns:
			cmds = append(cmds, m.checkinView.Reload(), m.insightsView.Reload())
		case tabInsights:
			cmds = append(cmds, m.insightsView.Reload())
		}
		return m, tea.Batch(cmds...)

	case pluginInsightMsg:
		if msg.err != nil {
			m.status = "plugin: " + msg.err.Error()
			return m, nil
		}
		lines := []string{msg.out.Title, msg.out.Body}
		lines = append(lines, msg.out.Suggestions...)
		m.status = strings.Join(lines, " · ")
		return m, nil

	// Loaded results are routed to their owning view even when another
	// tab is active, so background reloads are never dropped.
	case journeyview.LoadedMsg:
		var cmd tea.Cmd
		m.journeyView, cmd = m.journeyView.Update(msg)
		return m, cmd

	case checkinsview.LoadedMsg:
		var cmd tea.Cmd
		m.checkinView, cmd = m.checkinView.Update(msg)
		return m, cmd

	case insightsview.LoadedMsg:
		var cmd tea.Cmd
		m.insightsView, cmd = m.insightsView.Update(msg)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "c":
			if m.activeTab == tabJourney {
				if rule, ok := m.journeyView.SelectedRule(); ok {
					cmds = append(cmds, m.completeRuleCmd(rule))
				}
			}
		case "x":
			if m.activeTab == tabCheckIns {
				if id, ok := m.checkinView.SelectedID(); ok {
					cmds = append(cmds, m.deleteCheckInCmd(id))
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabJourney:
		m.journeyView, tabCmd = m.journeyView.Update(msg)
	case tabCheckIns:
		m.checkinView, tabCmd = m.checkinView.Update(msg)
	case tabInsights:
		m.insightsView, tabCmd = m.insightsView.Update(msg)
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
	case tabJourney:
		return m.journeyView.View()
	case tabCheckIns:
		return m.checkinView.View()
	case tabInsights:
		return m.insightsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "inward  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
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
	case "journey:start":
		m.activeTab = tabJourney
		return m, m.journeyActionCmd("journey started", func(ctx context.Context) error {
			_, err := m.journey.StartNew(ctx)
			return err
		})

	case "journey:answer":
		if len(parts) < 4 {
			m.status = "usage: journey:answer <rule> <field> [slot] <text>"
			return m, nil
		}
		update := journeydto.UpdateInput{Rule: parts[1], Field: parts[2], Slot: -1}
		rest := parts[3:]
		if slot, err := strconv.Atoi(rest[0]); err == nil && len(rest) > 1 {
			update.Slot = slot
			rest = rest[1:]
		}
		update.Value = strings.Join(rest, " ")
		m.activeTab = tabJourney
		return m, m.journeyActionCmd("answer saved", func(ctx context.Context) error {
			return m.journey.UpdateResponse(ctx, update)
		})

	case "journey:complete":
		if len(parts) < 2 {
			m.status = "usage: journey:complete <rule>"
			return m, nil
		}
		rule, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid rule number"
			return m, nil
		}
		m.activeTab = tabJourney
		return m, m.completeRuleCmd(rule)

	case "journey:reset":
		m.activeTab = tabJourney
		return m, m.journeyActionCmd("journey reset", m.journey.Reset)

	case "journey:new":
		m.activeTab = tabJourney
		return m, m.journeyActionCmd("archived and started fresh", func(ctx context.Context) error {
			_, err := m.journey.ArchiveAndStartNew(ctx)
			return err
		})

	case "checkin:delete":
		if id, ok := m.checkinView.SelectedID(); ok {
			m.activeTab = tabCheckIns
			return m, m.deleteCheckInCmd(id)
		}
		m.status = "no check-in selected"
		return m, nil

	case "checkin:reindex":
		m.activeTab = tabCheckIns
		return m, func() tea.Msg {
			n, err := m.checkins.Reindex(context.Background())
			if err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: fmt.Sprintf("reindexed %d check-ins", n), reload: tabCheckIns}
		}

	case "insights:detect":
		m.activeTab = tabInsights
		return m, func() tea.Msg {
			patterns, err := m.insights.DetectPatterns(context.Background())
			if err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: fmt.Sprintf("detected %d patterns", len(patterns)), reload: tabInsights}
		}

	case "insights:weekly":
		m.activeTab = tabInsights
		return m, func() tea.Msg {
			_, err := m.insights.BuildWeekly(context.Background())
			if err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: "weekly summary built", reload: tabInsights}
		}

	case "insights:test":
		if len(parts) < 2 {
			m.status = "usage: insights:test <pattern-id>"
			return m, nil
		}
		m.activeTab = tabInsights
		id := parts[1]
		return m, func() tea.Msg {
			if err := m.insights.MarkPatternTested(context.Background(), id); err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: "pattern marked tested", reload: tabInsights}
		}

	case "plugin:insight":
		if len(parts) < 2 {
			m.status = "usage: plugin:insight <name>"
			return m, nil
		}
		if m.plugin == nil {
			m.status = "plugin host not configured"
			return m, nil
		}
		name := parts[1]
		m.status = "running plugin " + name + "…"
		return m, func() tea.Msg {
			out, err := m.plugin.GenerateInsight(context.Background(), plugindto.InsightInput{PluginName: name})
			return pluginInsightMsg{out: out, err: err}
		}

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	if m.activeTab == tabCheckIns {
		return m.checkinView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.journeyView, _ = m.journeyView.Update(sz)
	m.checkinView, _ = m.checkinView.Update(sz)
	m.insightsView, _ = m.insightsView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) journeyActionCmd(status string, action func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := action(context.Background()); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: status, reload: tabJourney}
	}
}

func (m Model) completeRuleCmd(rule int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.journey.MarkRuleComplete(context.Background(), rule)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		status := fmt.Sprintf("rule %d complete", rule)
		if out.Complete {
			status = "journey complete"
		}
		return actionDoneMsg{status: status, reload: tabJourney}
	}
}

func (m Model) deleteCheckInCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.checkins.Delete(context.Background(), id); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "check-in deleted", reload: tabCheckIns}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
