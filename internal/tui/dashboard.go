package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portfolio/models"
)

type dashboardTile struct {
	label string
	page  string
	count func(models.DashboardStats) int
}

var dashboardTiles = []dashboardTile{
	{"Projects", pageProjects, func(s models.DashboardStats) int { return s.Projects }},
	{"Services", pageServices, func(s models.DashboardStats) int { return s.Services }},
	{"Skills", pageSkills, func(s models.DashboardStats) int { return s.Skills }},
	{"Testimonials", pageTestimonials, func(s models.DashboardStats) int { return s.Testimonials }},
	{"Videos", pageVideos, func(s models.DashboardStats) int { return s.Videos }},
	{"Unread Messages", pageMessages, func(s models.DashboardStats) int { return s.UnreadMessages }},
}

// DashboardModel shows one metric tile per resource. Failed count queries
// leave their tile at zero without an error.
type DashboardModel struct {
	shell   *shell
	stats   models.DashboardStats
	cursor  int
	loading bool
	spinner spinner.Model
}

func NewDashboardModel(sh *shell) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &DashboardModel{shell: sh, spinner: s}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	ctx, dashboard := m.shell.ctx, m.shell.services.Dashboard
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return dashboardLoadedMsg{stats: dashboard.Stats(ctx)}
	})
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.stats = msg.stats
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.down):
			if m.cursor < len(dashboardTiles)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.enter):
			page := dashboardTiles[m.cursor].page
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		case msg.String() == "r":
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder
	for i, tile := range dashboardTiles {
		line := fmt.Sprintf("%-16s %6d   Manage →", tile.label, tile.count(m.stats))
		if i == m.cursor {
			b.WriteString(accentStyle(m.shell.theme).Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if m.loading {
		b.WriteString("\n" + m.spinner.View() + " loading metrics")
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ enter: manage │ r: refresh │ 1-9: pages")
}
