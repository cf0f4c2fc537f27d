package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-portfolio/internal/service"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// column is one column of a text table. A zero width is computed from the
// widest cell.
type column struct {
	title string
	width int
}

// renderTable draws rows under a header with a "> " marker on the cursor
// row. Cells wider than their column are cut with fitText.
func renderTable(cols []column, rows [][]string, cursor int) string {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = c.width
		if widths[i] > 0 {
			continue
		}
		widths[i] = lipgloss.Width(c.title)
		for _, row := range rows {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, c := range cols {
		if i > 0 {
			b.WriteString(" │ ")
		}
		b.WriteString(fmt.Sprintf("%-*s", widths[i], c.title))
	}
	b.WriteString("\n──")
	for i, w := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		}
		b.WriteString(strings.Repeat("─", w))
	}
	b.WriteString("\n")

	for r, row := range rows {
		line := "  "
		if r == cursor {
			line = "> "
		}
		for i := range cols {
			if i > 0 {
				line += " │ "
			}
			cell := ""
			if i < len(row) {
				cell = fitText(row[i], widths[i])
			}
			line += fmt.Sprintf("%-*s", widths[i], cell)
		}
		if r == cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// shortTimestamp keeps the date and the minutes of an ISO timestamp:
// "2026-03-01T10:20:30Z" becomes "2026-03-01 10:20".
func shortTimestamp(v string) string {
	if v == "" {
		return "-"
	}
	if len(v) > 16 {
		v = v[:16]
	}
	return strings.Replace(v, "T", " ", 1)
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// timeOrDash renders an optional backend timestamp with shortTimestamp.
func timeOrDash(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return shortTimestamp(t.Format(time.RFC3339))
}

// renderPager draws the prev/next controls, faint when disabled at a
// bound, around the "Page X of N" label.
func renderPager(p service.Pager) string {
	prev, next := "← prev", "next →"
	if !p.HasPrev() {
		prev = helpStyle.Render(prev)
	}
	if !p.HasNext() {
		next = helpStyle.Render(next)
	}
	return prev + "   " + p.Label() + "   " + next
}

// filterLabel renders an empty filter value as "All".
func filterLabel(v string) string {
	if v == "" {
		return "All"
	}
	return v
}
