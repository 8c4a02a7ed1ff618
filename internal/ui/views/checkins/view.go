package checkins

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inward/internal/modules/checkin/domain"
	checkindto "inward/internal/modules/checkin/dto"
	"inward/internal/ui/theme"
)

type CheckInPort interface {
	List(ctx context.Context) ([]domain.CheckIn, error)
	DailyCounts(ctx context.Context, days int) ([]checkindto.DayCount, error)
}

type LoadedMsg struct {
	CheckIns []domain.CheckIn
	Daily    []checkindto.DayCount
	Err      error
}

type checkInItem struct {
	checkIn domain.CheckIn
}

func (i checkInItem) Title() string {
	return fmt.Sprintf("%s  %s (%d/10)", i.checkIn.Timestamp.Format("Jan 02 15:04"), i.checkIn.Emotion.Primary, i.checkIn.Emotion.Intensity)
}
func (i checkInItem) Description() string { return i.checkIn.Thought }
func (i checkInItem) FilterValue() string {
	return i.checkIn.Emotion.Primary + " " + i.checkIn.Thought
}

type Model struct {
	port    CheckInPort
	list    list.Model
	detail  viewport.Model
	daily   []checkindto.DayCount
	errText string
	width   int
	height  int
}

func New(port CheckInPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Check-Ins"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
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

// Reload refetches the check-in list and the seven-day activity strip.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		checkIns, err := m.port.List(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		daily, err := m.port.DailyCounts(context.Background(), 7)
		if err != nil {
			daily = nil
		}
		return LoadedMsg{CheckIns: checkIns, Daily: daily}
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
		m.daily = msg.Daily
		items := make([]list.Item, len(msg.CheckIns))
		for i, c := range msg.CheckIns {
			items[i] = checkInItem{checkIn: c}
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

// SelectedID returns the highlighted check-in's ID, if any.
func (m Model) SelectedID() (string, bool) {
	if item, ok := m.list.SelectedItem().(checkInItem); ok {
		return item.checkIn.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
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
		return theme.Muted.Render("check-ins: " + m.errText)
	}
	item, ok := m.list.SelectedItem().(checkInItem)
	if !ok {
		return theme.Muted.Render("No check-ins yet. Log one with `inward checkin add`.")
	}
	c := item.checkIn

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(c.Timestamp.Format("Monday, Jan 2 at 15:04")) + "\n\n")
	emotion := c.Emotion.Primary
	if c.Emotion.Secondary != "" {
		emotion += " / " + c.Emotion.Secondary
	}
	sb.WriteString(theme.Muted.Render("feeling:   ") + fmt.Sprintf("%s (%d/10)\n", emotion, c.Emotion.Intensity))
	if c.Emotion.BodyLocation != "" {
		sb.WriteString(theme.Muted.Render("felt in:   ") + c.Emotion.BodyLocation + "\n")
	}
	sb.WriteString(theme.Muted.Render("thought:   ") + c.Thought + "\n")
	if len(c.ThoughtTags) > 0 {
		sb.WriteString(theme.Muted.Render("tags:      ") + strings.Join(c.ThoughtTags, ", ") + "\n")
	}
	if c.BehaviourUrge != "" {
		sb.WriteString(theme.Muted.Render("urge:      ") + c.BehaviourUrge + "\n")
	}
	if c.BehaviourAction != "" {
		sb.WriteString(theme.Muted.Render("did:       ") + c.BehaviourAction + "\n")
	}
	if c.Value != "" {
		sb.WriteString(theme.Muted.Render("value:     ") + c.Value + "\n")
	}
	if c.Context != "" {
		sb.WriteString(theme.Muted.Render("context:   ") + c.Context + "\n")
	}

	if len(m.daily) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Last 7 days") + "\n")
		for _, d := range m.daily {
			sb.WriteString(fmt.Sprintf("%s  %s\n", theme.Muted.Render(d.Day), strings.Repeat("▪", d.Count)))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("x: delete selected check-in"))
	return sb.String()
}
