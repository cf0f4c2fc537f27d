package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

var messageReadFilters = []string{"", "unread", "read"}

const messageBodyWidth = 72

// MessagesModel is the contact inbox: search, read filter, paging, a
// detail view and read/delete actions.
type MessagesModel struct {
	screen

	search   textinput.Model
	read     string
	pager    service.Pager
	items    []models.Message
	selected *models.Message
}

func NewMessagesModel(sh *shell) *MessagesModel {
	return &MessagesModel{
		screen: newScreen(sh, pageMessages),
		search: newSearchInput("name, email, subject"),
	}
}

func (m *MessagesModel) Init() tea.Cmd {
	m.selected = nil
	return m.reload()
}

func (m *MessagesModel) capturingInput() bool {
	return m.confirm != nil || m.search.Focused()
}

func (m *MessagesModel) reload() tea.Cmd {
	ctx, seq := m.load.start(m.shell.ctx)
	m.loading = true

	q := models.MessageQuery{
		Page:   m.pager.Page,
		Size:   service.MessagePageSize,
		Search: strings.TrimSpace(m.search.Value()),
		Read:   boolFilter(m.read, "read"),
	}
	messages := m.shell.services.Messages
	return func() tea.Msg {
		page, err := messages.List(ctx, q)
		return pageLoadedMsg[models.Message]{seq: seq, page: page, err: err}
	}
}

// current is the open message, or the row under the cursor.
func (m *MessagesModel) current() (models.Message, bool) {
	if m.selected != nil {
		return *m.selected, true
	}
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return models.Message{}, false
	}
	return m.items[m.cursor], true
}

func (m *MessagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg[models.Message]:
		if m.loaded(msg.seq, msg.err) {
			m.items = msg.page.Content
			m.pager.SetTotal(msg.page.TotalPages)
			m.clampCursor(len(m.items))
		}
		return m, nil
	case searchTickMsg:
		if m.settled(msg) {
			m.pager.Reset()
			return m, m.reload()
		}
		return m, nil
	case messageOpenedMsg:
		m.busy = false
		if msg.err != nil {
			m.report("", msg.err)
			return m, nil
		}
		m.selected = &msg.message
		m.report("Message opened.", nil)
		return m, m.reload()
	case actionDoneMsg:
		if msg.page != m.name || !m.finishAction(msg) {
			return m, nil
		}
		if msg.deleted {
			m.selected = nil
			m.pager.AfterDelete(len(m.items))
		}
		return m, m.reload()
	case copiedMsg:
		m.report(msg.what+" copied.", msg.err)
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MessagesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m, m.updateConfirm(msg)
	}
	if m.search.Focused() {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			m.search.Blur()
			return m, nil
		}
		return m, m.typeInto(&m.search, msg)
	}

	if m.selected == nil && m.moveCursor(msg, len(m.items)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.selected = nil
	case key.Matches(msg, keys.enter):
		if m.selected == nil && !m.busy {
			if message, ok := m.current(); ok {
				return m, m.open(message.ID)
			}
		}
	case key.Matches(msg, keys.search):
		m.selected = nil
		return m, m.search.Focus()
	case key.Matches(msg, keys.prev):
		if m.selected == nil && m.pager.Prev() {
			return m, m.reload()
		}
	case key.Matches(msg, keys.next):
		if m.selected == nil && m.pager.Next() {
			return m, m.reload()
		}
	case msg.String() == "s":
		m.read = cycle(messageReadFilters, m.read)
		m.selected = nil
		m.pager.Reset()
		return m, m.reload()
	case msg.String() == "r":
		if message, ok := m.current(); ok && !m.busy {
			return m, m.toggleRead(message)
		}
	case key.Matches(msg, keys.delete):
		if message, ok := m.current(); ok && !m.busy {
			m.askDelete(message)
		}
	case key.Matches(msg, keys.copy):
		if message, ok := m.current(); ok && message.Email != "" {
			return m, copyCmd("Email", message.Email)
		}
	}
	return m, nil
}

func (m *MessagesModel) open(id int64) tea.Cmd {
	m.busy = true
	ctx, messages := m.shell.ctx, m.shell.services.Messages
	return func() tea.Msg {
		message, err := messages.Open(ctx, id)
		return messageOpenedMsg{message: message, err: err}
	}
}

func (m *MessagesModel) toggleRead(message models.Message) tea.Cmd {
	m.busy = true
	notice := "Marked as read."
	if message.Read {
		notice = "Marked as unread."
	}
	if m.selected != nil {
		m.selected.Read = !message.Read
	}
	messages := m.shell.services.Messages
	return m.act(notice, false, func(ctx context.Context) error {
		_, err := messages.ToggleRead(ctx, message)
		return err
	})
}

func (m *MessagesModel) askDelete(message models.Message) {
	messages := m.shell.services.Messages
	text := fmt.Sprintf("Delete the message from %s? This action cannot be undone.", valueOrDash(message.Name))
	m.ask("Delete Message", text, func() tea.Cmd {
		return m.act("Message deleted successfully!", true, func(ctx context.Context) error {
			return messages.Delete(ctx, message.ID)
		})
	})
}

func (m *MessagesModel) View() string {
	if m.selected != nil {
		return renderPage("MESSAGE", m.withOverlay(m.detailView()+m.statusView()),
			"esc: back │ r: read/unread │ d: delete │ c: copy email")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Search: [%s]   Read: %s\n\n", m.search.View(), filterLabel(m.read)))

	if len(m.items) == 0 && !m.loading {
		b.WriteString("No messages found.\n")
	} else {
		rows := make([][]string, 0, len(m.items))
		for _, message := range m.items {
			state := "New"
			if message.Read {
				state = "Read"
			}
			rows = append(rows, []string{state, message.Name, message.Email, message.Subject, timeOrDash(message.CreatedAt)})
		}
		b.WriteString(renderTable([]column{
			{title: "State"},
			{title: "Name", width: 18},
			{title: "Email", width: 24},
			{title: "Subject", width: 28},
			{title: "Received"},
		}, rows, m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n" + renderPager(m.pager))
	b.WriteString(m.statusView())

	return renderPage("MESSAGES", m.withOverlay(b.String()),
		"/: search │ s: read filter │ ←/→: page │ enter: open │ r: read/unread │ d: delete │ c: copy email")
}

func (m *MessagesModel) detailView() string {
	message := *m.selected

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From:     %s <%s>\n", valueOrDash(message.Name), valueOrDash(message.Email)))
	b.WriteString(fmt.Sprintf("Subject:  %s\n", valueOrDash(message.Subject)))
	b.WriteString(fmt.Sprintf("Received: %s\n", timeOrDash(message.CreatedAt)))
	b.WriteString(fmt.Sprintf("Read:     %s\n", yesNo(message.Read)))
	b.WriteString("\n")
	b.WriteString(renderMarkdown(message.Body, m.shell.theme))
	return b.String()
}

// renderMarkdown renders text with glamour, falling back to the raw text
// when rendering fails.
func renderMarkdown(text string, theme models.Theme) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle(theme)),
		glamour.WithWordWrap(messageBodyWidth),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
