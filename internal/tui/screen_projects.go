package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

var projectStatusFilters = []string{"", string(models.ProjectDraft), string(models.ProjectPublished)}

// ProjectsModel lists projects with search, a status filter and paging,
// and edits them in a form.
type ProjectsModel struct {
	screen

	search textinput.Model
	status string
	pager  service.Pager
	items  []models.Project
}

func NewProjectsModel(sh *shell) *ProjectsModel {
	return &ProjectsModel{
		screen: newScreen(sh, pageProjects),
		search: newSearchInput("title, summary..."),
	}
}

func (m *ProjectsModel) Init() tea.Cmd {
	return m.reload()
}

func (m *ProjectsModel) capturingInput() bool {
	return m.form != nil || m.confirm != nil || m.search.Focused()
}

func (m *ProjectsModel) reload() tea.Cmd {
	ctx, seq := m.load.start(m.shell.ctx)
	m.loading = true

	q := models.ProjectQuery{
		Page:   m.pager.Page,
		Size:   service.ProjectPageSize,
		Search: strings.TrimSpace(m.search.Value()),
		Status: models.ProjectStatus(m.status),
	}
	projects := m.shell.services.Projects
	return func() tea.Msg {
		page, err := projects.List(ctx, q)
		return pageLoadedMsg[models.Project]{seq: seq, page: page, err: err}
	}
}

func (m *ProjectsModel) current() (models.Project, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return models.Project{}, false
	}
	return m.items[m.cursor], true
}

func (m *ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg[models.Project]:
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
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ProjectsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m, m.updateConfirm(msg)
	}
	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.search.Focused() {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			m.search.Blur()
			return m, nil
		}
		return m, m.typeInto(&m.search, msg)
	}

	if m.moveCursor(msg, len(m.items)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.search):
		return m, m.search.Focus()
	case key.Matches(msg, keys.prev):
		if m.pager.Prev() {
			return m, m.reload()
		}
	case key.Matches(msg, keys.next):
		if m.pager.Next() {
			return m, m.reload()
		}
	case msg.String() == "s":
		m.status = cycle(projectStatusFilters, m.status)
		m.pager.Reset()
		return m, m.reload()
	case key.Matches(msg, keys.newItem):
		m.openForm(0, models.NewProjectForm())
	case key.Matches(msg, keys.edit):
		if p, ok := m.current(); ok {
			m.openForm(p.ID, models.ProjectFormFrom(p))
		}
	case key.Matches(msg, keys.delete):
		if p, ok := m.current(); ok && !m.busy {
			m.askDelete(p)
		}
	case msg.String() == "p":
		if p, ok := m.current(); ok && !m.busy {
			return m, m.toggleStatus(p)
		}
	case msg.String() == "f":
		if p, ok := m.current(); ok && !m.busy {
			return m, m.toggleFeatured(p)
		}
	case key.Matches(msg, keys.copy):
		if p, ok := m.current(); ok && p.Slug != nil {
			return m, copyCmd("Slug", *p.Slug)
		}
	}
	return m, nil
}

func (m *ProjectsModel) openForm(id int64, f models.ProjectForm) {
	title := "NEW PROJECT"
	if id != 0 {
		title = "EDIT PROJECT"
	}

	m.editingID = id
	m.form = newFormModel(title).
		text("title", "Title", f.Title).
		text("slug", "Slug", f.Slug).
		text("summary", "Summary", f.Summary).
		area("description", "Description", f.Description).
		text("techTags", "Tech tags", f.TechTags).
		text("liveUrl", "Live URL", f.LiveURL).
		text("githubUrl", "GitHub URL", f.GithubURL).
		text("thumbnailUrl", "Thumbnail URL", f.ThumbnailURL).
		text("galleryImages", "Gallery images", f.GalleryImages).
		toggle("featured", "Featured", f.Featured).
		choose("status", "Status", []string{string(models.ProjectDraft), string(models.ProjectPublished)}, string(f.Status)).
		start()
}

func (m *ProjectsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (m *ProjectsModel) submit() tea.Cmd {
	if m.form.submitting {
		return nil
	}

	form := models.ProjectForm{
		Title:         m.form.Value("title"),
		Slug:          m.form.Value("slug"),
		Summary:       m.form.Value("summary"),
		Description:   m.form.Value("description"),
		TechTags:      m.form.Value("techTags"),
		LiveURL:       m.form.Value("liveUrl"),
		GithubURL:     m.form.Value("githubUrl"),
		ThumbnailURL:  m.form.Value("thumbnailUrl"),
		GalleryImages: m.form.Value("galleryImages"),
		Featured:      m.form.Bool("featured"),
		Status:        models.ProjectStatus(m.form.Value("status")),
	}

	m.form.submitting = true
	m.form.errMsg = ""

	id := m.editingID
	notice := "Project created."
	if id != 0 {
		notice = "Project updated."
	}
	projects := m.shell.services.Projects
	return m.act(notice, false, func(ctx context.Context) error {
		_, err := projects.Save(ctx, id, form)
		return err
	})
}

func (m *ProjectsModel) askDelete(p models.Project) {
	projects := m.shell.services.Projects
	m.ask("Delete Project", fmt.Sprintf("Delete %q? This action cannot be undone.", p.Title), func() tea.Cmd {
		return m.act("Project deleted.", true, func(ctx context.Context) error {
			return projects.Delete(ctx, p.ID)
		})
	})
}

func (m *ProjectsModel) toggleStatus(p models.Project) tea.Cmd {
	m.busy = true
	notice := "Project published."
	if p.Status == models.ProjectPublished {
		notice = "Project moved to draft."
	}
	projects := m.shell.services.Projects
	return m.act(notice, false, func(ctx context.Context) error {
		_, err := projects.ToggleStatus(ctx, p)
		return err
	})
}

func (m *ProjectsModel) toggleFeatured(p models.Project) tea.Cmd {
	m.busy = true
	notice := "Project featured."
	if p.Featured {
		notice = "Project unfeatured."
	}
	projects := m.shell.services.Projects
	return m.act(notice, false, func(ctx context.Context) error {
		_, err := projects.ToggleFeatured(ctx, p)
		return err
	})
}

func (m *ProjectsModel) View() string {
	if m.form != nil {
		return renderPage(m.form.title, m.form.View(), "tab/↑/↓: field │ space: toggle │ ctrl+s: save │ esc: cancel")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Search: [%s]   Status: %s\n\n", m.search.View(), filterLabel(m.status)))

	if len(m.items) == 0 && !m.loading {
		b.WriteString("No projects found.\n")
	} else {
		rows := make([][]string, 0, len(m.items))
		for _, p := range m.items {
			rows = append(rows, []string{
				p.Title,
				slugLabel(p.Slug),
				string(p.Status),
				yesNo(p.Featured),
				timeOrDash(p.UpdatedAt),
			})
		}
		b.WriteString(renderTable([]column{
			{title: "Title", width: 28},
			{title: "Slug", width: 22},
			{title: "Status"},
			{title: "Featured"},
			{title: "Updated"},
		}, rows, m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n" + renderPager(m.pager))
	b.WriteString(m.statusView())

	return renderPage("PROJECTS", m.withOverlay(b.String()),
		"/: search │ s: status │ ←/→: page │ n: new │ e: edit │ d: delete │ p: publish │ f: feature │ c: copy slug")
}

func slugLabel(slug *string) string {
	if slug == nil || *slug == "" {
		return "-"
	}
	return "/" + *slug
}
