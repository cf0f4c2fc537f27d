package tui

import (
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	noticeStyle     = lipgloss.NewStyle().Italic(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	loginLabelStyle = lipgloss.NewStyle().Width(10)
)

var themeAccents = map[models.Theme]lipgloss.Color{
	models.ThemeDark:  lipgloss.Color("#22d3ee"),
	models.ThemeSlate: lipgloss.Color("#94a3b8"),
}

// frameStyle is the outer frame of every screen, tinted by the theme.
func frameStyle(theme models.Theme) lipgloss.Style {
	return appStyle.
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(themeAccents[theme])
}

// markdownStyle names the glamour style matching the theme.
func markdownStyle(theme models.Theme) string {
	if theme == models.ThemeSlate {
		return "dracula"
	}
	return "dark"
}

// accentStyle highlights the active navbar item and the dashboard cursor.
func accentStyle(theme models.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(themeAccents[theme])
}
