package preview

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gitglyph/internal/calendar"
	"gitglyph/internal/grid"
	"gitglyph/internal/model"
)

const (
	tabGrid = iota
	tabSchedule
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3FB950"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Options configures the interactive placement preview.
type Options struct {
	Word      string
	Rendering model.Rendering
	WeekZero  time.Time
	GridWidth int
	Anchor    grid.Anchor
	Extra     int
	Intensity int
}

// Model implements the Bubble Tea placement preview.
type Model struct {
	opts Options

	anchor    grid.Anchor
	extra     int
	placement model.Placement

	tabs      []string
	activeTab int
	schedule  table.Model

	width    int
	height   int
	errMsg   string
	accepted bool
}

// NewModel constructs the preview model, validating the initial
// placement.
func NewModel(opts Options) (*Model, error) {
	p, err := grid.Place(opts.Rendering.Width, opts.GridWidth, opts.Anchor, opts.Extra)
	if err != nil {
		return nil, err
	}
	m := &Model{
		opts:      opts,
		anchor:    opts.Anchor,
		extra:     opts.Extra,
		placement: p,
		tabs:      []string{"Grid", "Schedule"},
	}
	m.schedule = buildScheduleTable(m.scheduleRows(), 10)
	return m, nil
}

// Accepted reports the anchor and extra offset the user confirmed with
// enter; ok is false when the preview was quit instead.
func (m *Model) Accepted() (anchor grid.Anchor, extra int, ok bool) {
	return m.anchor, m.extra, m.accepted
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			m.accepted = true
			return m, tea.Quit
		case "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "shift+tab":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "left", "h":
			m.adjust(-1)
			return m, nil
		case "right", "l":
			m.adjust(1)
			return m, nil
		case "a":
			m.cycleAnchor()
			return m, nil
		default:
			if m.activeTab == tabSchedule {
				var cmd tea.Cmd
				m.schedule, cmd = m.schedule.Update(msg)
				return m, cmd
			}
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var body string
	if m.activeTab == tabSchedule {
		body = m.schedule.View()
	} else {
		body = m.renderGrid()
	}
	return strings.Join([]string{m.renderTabs(), m.renderStatus(), body, m.renderFooter()}, "\n")
}

// adjust shifts the extra offset, refusing moves that would push the
// word outside the grid while keeping the last valid placement live.
func (m *Model) adjust(delta int) {
	p, err := grid.Place(m.opts.Rendering.Width, m.opts.GridWidth, m.anchor, m.extra+delta)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.extra += delta
	m.placement = p
	m.schedule.SetRows(m.scheduleRows())
}

func (m *Model) cycleAnchor() {
	order := []grid.Anchor{grid.AnchorLeft, grid.AnchorCenter, grid.AnchorRight}
	idx := 0
	for i, a := range order {
		if a == m.anchor {
			idx = i
		}
	}
	for step := 1; step <= len(order); step++ {
		next := order[(idx+step)%len(order)]
		p, err := grid.Place(m.opts.Rendering.Width, m.opts.GridWidth, next, m.extra)
		if err != nil {
			continue
		}
		m.anchor = next
		m.placement = p
		m.errMsg = ""
		m.schedule.SetRows(m.scheduleRows())
		return
	}
	m.errMsg = "no anchor fits the current offset"
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabSchedule {
		m.schedule.Focus()
	} else {
		m.schedule.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderStatus() string {
	s := fmt.Sprintf("Word: %s  anchor=%s  base=%d  extra=%d  effective=%d  width=%d/%d",
		m.opts.Word, m.anchor, m.placement.Base, m.placement.Extra, m.placement.Effective,
		m.opts.Rendering.Width, m.opts.GridWidth)
	line := statusStyle.Render(truncateLine(s, m.width))
	if m.errMsg != "" {
		line += "\n" + errorStyle.Render(truncateLine(m.errMsg, m.width))
	}
	return line
}

func (m *Model) renderFooter() string {
	return statusStyle.Render("Shift: left/right  Anchor: a  Tabs: tab  Accept: enter  Quit: q")
}

func (m *Model) renderGrid() string {
	var b strings.Builder
	if err := Render(&b, m.opts.Rendering, m.placement, m.opts.WeekZero, CellWidthFor(m.width), true); err != nil {
		return errorStyle.Render(err.Error())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) scheduleRows() []table.Row {
	pixels := make([]model.Pixel, len(m.opts.Rendering.Pixels))
	copy(pixels, m.opts.Rendering.Pixels)
	sort.Slice(pixels, func(i, j int) bool {
		if pixels[i].Col != pixels[j].Col {
			return pixels[i].Col < pixels[j].Col
		}
		return pixels[i].Row < pixels[j].Row
	})
	rows := make([]table.Row, 0, len(pixels))
	for _, px := range pixels {
		day := calendar.DateFor(m.opts.WeekZero, px.Col+m.placement.Effective, px.Row)
		rows = append(rows, table.Row{
			day.Format("2006-01-02"),
			fmt.Sprintf("%d", px.Col),
			fmt.Sprintf("%d", px.Row),
			fmt.Sprintf("%d", m.opts.Intensity),
		})
	}
	return rows
}

func buildScheduleTable(rows []table.Row, height int) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Col", Width: 4},
		{Title: "Row", Width: 4},
		{Title: "Commits", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
	)
	t.SetStyles(scheduleTableStyles())
	return t
}

func scheduleTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) resizeTable() {
	chrome := lipgloss.Height(m.renderTabs()) + lipgloss.Height(m.renderStatus()) + 1
	m.schedule.SetWidth(m.width)
	m.schedule.SetHeight(maxInt(1, m.height-chrome))
}

// Run starts the interactive preview and reports the accepted
// placement, if any.
func Run(opts Options) (anchor grid.Anchor, extra int, accepted bool, err error) {
	m, err := NewModel(opts)
	if err != nil {
		return "", 0, false, err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", 0, false, fmt.Errorf("failed to run preview: %w", err)
	}
	fm, ok := final.(*Model)
	if !ok {
		return "", 0, false, fmt.Errorf("unexpected preview model type")
	}
	anchor, extra, accepted = fm.Accepted()
	return anchor, extra, accepted, nil
}

func truncateLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
