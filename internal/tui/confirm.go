package tui

// confirmModel is a yes/no overlay. A dialog has a title; a plain prompt
// only has the message.
type confirmModel struct {
	title   string
	message string
	loading bool
}

func (m confirmModel) View() string {
	content := ""
	if m.title != "" {
		content += titleStyle.Render(m.title) + "\n\n"
	}
	content += m.message + "\n\n"
	if m.loading {
		content += "Deleting..."
	} else {
		content += "y yes    n no"
	}
	return overlayBoxStyle.Render(content)
}
