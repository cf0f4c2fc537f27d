package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

var videoPublishedFilters = []string{"", "published", "draft"}

// VideosModel lists videos with search, category and published filters.
type VideosModel struct {
	screen

	search    textinput.Model
	category  textinput.Model
	published string
	pager     service.Pager
	items     []models.Video
}

func NewVideosModel(sh *shell) *VideosModel {
	return &VideosModel{
		screen:   newScreen(sh, pageVideos),
		search:   newSearchInput("title, description..."),
		category: newSearchInput("category"),
	}
}

func (m *VideosModel) Init() tea.Cmd {
	return m.reload()
}

func (m *VideosModel) capturingInput() bool {
	return m.form != nil || m.confirm != nil || m.focusedInput() != nil
}

func (m *VideosModel) focusedInput() *textinput.Model {
	switch {
	case m.search.Focused():
		return &m.search
	case m.category.Focused():
		return &m.category
	}
	return nil
}

func (m *VideosModel) reload() tea.Cmd {
	ctx, seq := m.load.start(m.shell.ctx)
	m.loading = true

	q := models.VideoQuery{
		Page:      m.pager.Page,
		Size:      service.VideoPageSize,
		Search:    strings.TrimSpace(m.search.Value()),
		Category:  strings.TrimSpace(m.category.Value()),
		Published: boolFilter(m.published, "published"),
	}
	videos := m.shell.services.Videos
	return func() tea.Msg {
		page, err := videos.List(ctx, q)
		return pageLoadedMsg[models.Video]{seq: seq, page: page, err: err}
	}
}

func (m *VideosModel) current() (models.Video, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return models.Video{}, false
	}
	return m.items[m.cursor], true
}

func (m *VideosModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg[models.Video]:
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
	case actionDoneMsg:
		if msg.page != m.name || !m.finishAction(msg) {
			return m, nil
		}
		if msg.deleted {
			m.pager.AfterDelete(len(m.items))
		}
		return m, m.reload()
	case copiedMsg:
		m.report(msg.what+" copied.", msg.err)
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.form != nil {
		cmd, _ := m.form.Update(msg)
		return m, cmd
	}
	if in := m.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *VideosModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m, m.updateConfirm(msg)
	}
	if m.form != nil {
		switch {
		case key.Matches(msg, keys.esc):
			m.form = nil
			m.editingID = 0
			return m, nil
		case key.Matches(msg, keys.save):
			return m, m.submit()
		}
		cmd, _ := m.form.Update(msg)
		return m, cmd
	}
	if in := m.focusedInput(); in != nil {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			in.Blur()
			return m, nil
		}
		return m, m.typeInto(in, msg)
	}

	if m.moveCursor(msg, len(m.items)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.search):
		return m, m.search.Focus()
	case msg.String() == "g":
		return m, m.category.Focus()
	case key.Matches(msg, keys.prev):
		if m.pager.Prev() {
			return m, m.reload()
		}
	case key.Matches(msg, keys.next):
		if m.pager.Next() {
			return m, m.reload()
		}
	case msg.String() == "s":
		m.published = cycle(videoPublishedFilters, m.published)
		m.pager.Reset()
		return m, m.reload()
	case key.Matches(msg, keys.newItem):
		m.openForm(0, models.NewVideoForm())
	case key.Matches(msg, keys.edit):
		if v, ok := m.current(); ok {
			m.openForm(v.ID, models.VideoFormFrom(v))
		}
	case key.Matches(msg, keys.delete):
		if v, ok := m.current(); ok && !m.busy {
			videos := m.shell.services.Videos
			m.ask("", "Delete this video?", func() tea.Cmd {
				return m.act("Video deleted.", true, func(ctx context.Context) error {
					return videos.Delete(ctx, v.ID)
				})
			})
		}
	case msg.String() == "p":
		if v, ok := m.current(); ok && !m.busy {
			return m, m.togglePublished(v)
		}
	case key.Matches(msg, keys.copy):
		if v, ok := m.current(); ok {
			return m, copyCmd("Embed URL", utils.EmbedURL(v.VideoURL))
		}
	}
	return m, nil
}

func (m *VideosModel) openForm(id int64, f models.VideoForm) {
	title := "NEW VIDEO"
	if id != 0 {
		title = "EDIT VIDEO"
	}

	m.editingID = id
	m.form = newFormModel(title).
		text("title", "Title", f.Title).
		area("description", "Description", f.Description).
		text("category", "Category", f.Category).
		text("videoUrl", "Video URL", f.VideoURL).
		text("thumbnailUrl", "Thumbnail URL", f.ThumbnailURL).
		toggle("published", "Published", f.Published).
		start()
}

func (m *VideosModel) submit() tea.Cmd {
	if m.form.submitting {
		return nil
	}

	form := models.VideoForm{
		Title:        m.form.Value("title"),
		Description:  m.form.Value("description"),
		Category:     m.form.Value("category"),
		VideoURL:     m.form.Value("videoUrl"),
		ThumbnailURL: m.form.Value("thumbnailUrl"),
		Published:    m.form.Bool("published"),
	}

	m.form.submitting = true
	m.form.errMsg = ""

	id := m.editingID
	notice := "Video created."
	if id != 0 {
		notice = "Video updated."
	}
	videos := m.shell.services.Videos
	return m.act(notice, false, func(ctx context.Context) error {
		_, err := videos.Save(ctx, id, form)
		return err
	})
}

func (m *VideosModel) togglePublished(v models.Video) tea.Cmd {
	m.busy = true
	notice := "Video published."
	if v.Published {
		notice = "Video unpublished."
	}
	videos := m.shell.services.Videos
	return m.act(notice, false, func(ctx context.Context) error {
		_, err := videos.TogglePublished(ctx, v)
		return err
	})
}

func (m *VideosModel) View() string {
	if m.form != nil {
		body := m.form.View()
		if embed := utils.EmbedURL(strings.TrimSpace(m.form.Value("videoUrl"))); embed != "" {
			body += "\n\n" + helpStyle.Render("Embed: "+embed)
		}
		return renderPage(m.form.title, body, "tab/↑/↓: field │ space: toggle │ ctrl+s: save │ esc: cancel")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Search: [%s]   Category: [%s]   Published: %s\n\n",
		m.search.View(), m.category.View(), filterLabel(m.published)))

	if len(m.items) == 0 && !m.loading {
		b.WriteString("No videos found.\n")
	} else {
		rows := make([][]string, 0, len(m.items))
		for _, v := range m.items {
			rows = append(rows, []string{v.Title, valueOrDash(v.Category), yesNo(v.Published), timeOrDash(v.UpdatedAt)})
		}
		b.WriteString(renderTable([]column{
			{title: "Title", width: 32},
			{title: "Category", width: 16},
			{title: "Published"},
			{title: "Updated"},
		}, rows, m.cursor))
		b.WriteString("\n")

		if v, ok := m.current(); ok {
			b.WriteString("\n" + helpStyle.Render("Embed: "+valueOrDash(utils.EmbedURL(v.VideoURL))) + "\n")
		}
	}

	b.WriteString("\n" + renderPager(m.pager))
	b.WriteString(m.statusView())

	return renderPage("VIDEOS", m.withOverlay(b.String()),
		"/: search │ g: category │ s: published │ ←/→: page │ n: new │ e: edit │ d: delete │ p: publish │ c: copy embed")
}
