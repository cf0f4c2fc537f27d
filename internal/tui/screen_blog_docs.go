package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portfolio/models"
)

// BlogDocsModel uploads, edits and deletes the blog documents listed in the
// public "Blog Docs" section.
type BlogDocsModel struct {
	screen

	items []models.BlogDocument
	// editing is the row whose metadata the form edits; nil for an upload.
	editing *models.BlogDocument
}

func NewBlogDocsModel(sh *shell) *BlogDocsModel {
	return &BlogDocsModel{screen: newScreen(sh, pageBlogDocs)}
}

func (m *BlogDocsModel) Init() tea.Cmd {
	ctx, seq := m.load.start(m.shell.ctx)
	m.loading = true
	docs := m.shell.services.BlogDocuments
	return func() tea.Msg {
		items, err := docs.List(ctx)
		return listLoadedMsg[models.BlogDocument]{seq: seq, items: items, err: err}
	}
}

func (m *BlogDocsModel) capturingInput() bool {
	return m.form != nil || m.confirm != nil
}

func (m *BlogDocsModel) current() (models.BlogDocument, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return models.BlogDocument{}, false
	}
	return m.items[m.cursor], true
}

func (m *BlogDocsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg[models.BlogDocument]:
		if m.loaded(msg.seq, msg.err) {
			m.items = msg.items
			m.clampCursor(len(m.items))
		}
		return m, nil
	case actionDoneMsg:
		if msg.page != m.name || !m.finishAction(msg) {
			return m, nil
		}
		m.editing = nil
		return m, m.Init()
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.form != nil {
		cmd, _ := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BlogDocsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m, m.updateConfirm(msg)
	}
	if m.form != nil {
		switch {
		case key.Matches(msg, keys.esc):
			m.form = nil
			m.editing = nil
			return m, nil
		case key.Matches(msg, keys.save):
			return m, m.submit()
		}
		cmd, _ := m.form.Update(msg)
		return m, cmd
	}

	if m.moveCursor(msg, len(m.items)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.upload), key.Matches(msg, keys.newItem):
		m.editing = nil
		m.form = newFormModel("UPLOAD BLOG DOCUMENT").
			text("path", "File path", "").
			text("title", "Title (optional)", "").
			toggle("visible", "Visible", true).
			toggle("downloadEnabled", "Download enabled", true).
			text("displayOrder", "Display order", "0").
			start()
	case key.Matches(msg, keys.edit):
		if doc, ok := m.current(); ok {
			m.editing = &doc
			f := models.BlogDocumentFormFrom(doc)
			m.form = newFormModel("EDIT BLOG DOCUMENT").
				text("title", "Title", f.Title).
				toggle("visible", "Visible", f.Visible).
				toggle("downloadEnabled", "Download enabled", f.DownloadEnabled).
				text("displayOrder", "Display order", f.DisplayOrder).
				start()
		}
	case key.Matches(msg, keys.delete):
		if doc, ok := m.current(); ok && !m.busy {
			docs := m.shell.services.BlogDocuments
			m.ask("Delete Blog Document", fmt.Sprintf("Delete %q? This action cannot be undone.", documentTitle(doc)), func() tea.Cmd {
				return m.act("Blog document deleted successfully.", true, func(ctx context.Context) error {
					return docs.Delete(ctx, doc.ID)
				})
			})
		}
	case msg.String() == "r":
		return m, m.Init()
	}
	return m, nil
}

func (m *BlogDocsModel) submit() tea.Cmd {
	if m.form.submitting {
		return nil
	}

	form := models.BlogDocumentForm{
		Title:           m.form.Value("title"),
		Visible:         m.form.Bool("visible"),
		DownloadEnabled: m.form.Bool("downloadEnabled"),
		DisplayOrder:    m.form.Value("displayOrder"),
	}
	m.form.submitting = true
	m.form.errMsg = ""

	docs := m.shell.services.BlogDocuments
	if m.editing != nil {
		doc := *m.editing
		return m.act("Blog document updated successfully.", false, func(ctx context.Context) error {
			_, err := docs.Update(ctx, doc, form)
			return err
		})
	}

	path := m.form.Value("path")
	return m.act("Blog document uploaded successfully.", false, func(ctx context.Context) error {
		_, err := docs.Upload(ctx, path, form)
		return err
	})
}

func documentTitle(doc models.BlogDocument) string {
	if t := strings.TrimSpace(doc.Title); t != "" {
		return t
	}
	return valueOrDash(doc.OriginalName)
}

func (m *BlogDocsModel) View() string {
	if m.form != nil {
		return renderPage(m.form.title, m.form.View(), "tab/↑/↓: field │ space: toggle │ ctrl+s: save │ esc: cancel")
	}

	var b strings.Builder
	if len(m.items) == 0 && !m.loading {
		b.WriteString("No blog documents uploaded yet.\n")
	} else {
		rows := make([][]string, 0, len(m.items))
		for _, doc := range m.items {
			rows = append(rows, []string{
				strconv.Itoa(doc.DisplayOrder),
				documentTitle(doc),
				valueOrDash(doc.OriginalName),
				yesNo(doc.Visible),
				yesNo(doc.DownloadEnabled),
			})
		}
		b.WriteString(renderTable([]column{
			{title: "Order"},
			{title: "Title", width: 28},
			{title: "File", width: 28},
			{title: "Visible"},
			{title: "Download"},
		}, rows, m.cursor))
		b.WriteString("\n")
	}
	b.WriteString(m.statusView())

	return renderPage("BLOG DOCS", m.withOverlay(b.String()), "u: upload │ e: edit │ d: delete │ r: refresh")
}
