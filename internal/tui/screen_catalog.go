package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portfolio/models"
)

// catalogKind describes one of the small unpaginated resources (services,
// skills, testimonials) for [catalogModel].
type catalogKind[T any, F any] struct {
	page  string
	title string
	// noun starts the notices: "<noun> created.".
	noun string

	list   func(ctx context.Context) ([]T, error)
	save   func(ctx context.Context, id int64, form F) error
	remove func(ctx context.Context, id int64) error

	id       func(item T) int64
	blank    func() F
	fromItem func(item T) F
	// fields adds the editor fields for form.
	fields func(f *formModel, form F) *formModel
	// read collects the raw form back from the editor.
	read func(f *formModel) F

	columns []column
	row     func(item T) []string
}

// catalogModel lists a small resource and edits it in a form. Deletes use a
// plain prompt.
type catalogModel[T any, F any] struct {
	screen
	kind  catalogKind[T, F]
	items []T
}

func newCatalogModel[T any, F any](sh *shell, kind catalogKind[T, F]) *catalogModel[T, F] {
	return &catalogModel[T, F]{screen: newScreen(sh, kind.page), kind: kind}
}

func (m *catalogModel[T, F]) Init() tea.Cmd {
	ctx, seq := m.load.start(m.shell.ctx)
	m.loading = true
	list := m.kind.list
	return func() tea.Msg {
		items, err := list(ctx)
		return listLoadedMsg[T]{seq: seq, items: items, err: err}
	}
}

func (m *catalogModel[T, F]) capturingInput() bool {
	return m.form != nil || m.confirm != nil
}

func (m *catalogModel[T, F]) current() (T, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor], true
}

func (m *catalogModel[T, F]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg[T]:
		if m.loaded(msg.seq, msg.err) {
			m.items = msg.items
			m.clampCursor(len(m.items))
		}
		return m, nil
	case actionDoneMsg:
		if msg.page != m.name || !m.finishAction(msg) {
			return m, nil
		}
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

func (m *catalogModel[T, F]) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

	if m.moveCursor(msg, len(m.items)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.newItem):
		m.openForm(0, m.kind.blank())
	case key.Matches(msg, keys.edit):
		if item, ok := m.current(); ok {
			m.openForm(m.kind.id(item), m.kind.fromItem(item))
		}
	case key.Matches(msg, keys.delete):
		if item, ok := m.current(); ok && !m.busy {
			id, remove := m.kind.id(item), m.kind.remove
			m.ask("", "Delete this "+strings.ToLower(m.kind.noun)+"?", func() tea.Cmd {
				return m.act(m.kind.noun+" deleted.", true, func(ctx context.Context) error {
					return remove(ctx, id)
				})
			})
		}
	case msg.String() == "r":
		return m, m.Init()
	}
	return m, nil
}

func (m *catalogModel[T, F]) openForm(id int64, form F) {
	title := "NEW " + strings.ToUpper(m.kind.noun)
	if id != 0 {
		title = "EDIT " + strings.ToUpper(m.kind.noun)
	}
	m.editingID = id
	m.form = m.kind.fields(newFormModel(title), form).start()
}

func (m *catalogModel[T, F]) submit() tea.Cmd {
	if m.form.submitting {
		return nil
	}

	form := m.kind.read(m.form)
	m.form.submitting = true
	m.form.errMsg = ""

	id, save := m.editingID, m.kind.save
	notice := m.kind.noun + " created."
	if id != 0 {
		notice = m.kind.noun + " updated."
	}
	return m.act(notice, false, func(ctx context.Context) error {
		return save(ctx, id, form)
	})
}

func (m *catalogModel[T, F]) View() string {
	if m.form != nil {
		return renderPage(m.form.title, m.form.View(), "tab/↑/↓: field │ ctrl+s: save │ esc: cancel")
	}

	var b strings.Builder
	if len(m.items) == 0 && !m.loading {
		b.WriteString("Nothing here yet.\n")
	} else {
		rows := make([][]string, 0, len(m.items))
		for _, item := range m.items {
			rows = append(rows, m.kind.row(item))
		}
		b.WriteString(renderTable(m.kind.columns, rows, m.cursor))
		b.WriteString("\n")
	}
	b.WriteString(m.statusView())

	return renderPage(m.kind.title, m.withOverlay(b.String()), "n: new │ e: edit │ d: delete │ r: refresh")
}

func NewServicesModel(sh *shell) tea.Model {
	svc := sh.services.ServiceItems
	return newCatalogModel(sh, catalogKind[models.Service, models.ServiceForm]{
		page:  pageServices,
		title: "SERVICES",
		noun:  "Service",
		list:  svc.List,
		save: func(ctx context.Context, id int64, form models.ServiceForm) error {
			_, err := svc.Save(ctx, id, form)
			return err
		},
		remove:   svc.Delete,
		id:       func(s models.Service) int64 { return s.ID },
		blank:    func() models.ServiceForm { return models.ServiceForm{Icon: "Sparkles", DisplayOrder: "0"} },
		fromItem: models.ServiceFormFrom,
		fields: func(f *formModel, form models.ServiceForm) *formModel {
			return f.text("title", "Title", form.Title).
				area("description", "Description", form.Description).
				text("icon", "Icon", form.Icon).
				text("displayOrder", "Display order", form.DisplayOrder)
		},
		read: func(f *formModel) models.ServiceForm {
			return models.ServiceForm{
				Title:        f.Value("title"),
				Description:  f.Value("description"),
				Icon:         f.Value("icon"),
				DisplayOrder: f.Value("displayOrder"),
			}
		},
		columns: []column{{title: "Order"}, {title: "Title", width: 28}, {title: "Icon", width: 12}, {title: "Description", width: 40}},
		row: func(s models.Service) []string {
			return []string{strconv.Itoa(s.DisplayOrder), s.Title, valueOrDash(s.Icon), valueOrDash(s.Description)}
		},
	})
}

func NewSkillsModel(sh *shell) tea.Model {
	svc := sh.services.Skills
	return newCatalogModel(sh, catalogKind[models.Skill, models.SkillForm]{
		page:  pageSkills,
		title: "SKILLS",
		noun:  "Skill",
		list:  svc.List,
		save: func(ctx context.Context, id int64, form models.SkillForm) error {
			_, err := svc.Save(ctx, id, form)
			return err
		},
		remove:   svc.Delete,
		id:       func(s models.Skill) int64 { return s.ID },
		blank:    func() models.SkillForm { return models.SkillForm{} },
		fromItem: models.SkillFormFrom,
		fields: func(f *formModel, form models.SkillForm) *formModel {
			return f.text("category", "Category", form.Category).
				text("name", "Name", form.Name).
				text("level", "Level (1-100)", form.Level)
		},
		read: func(f *formModel) models.SkillForm {
			return models.SkillForm{
				Category: f.Value("category"),
				Name:     f.Value("name"),
				Level:    f.Value("level"),
			}
		},
		columns: []column{{title: "Category", width: 20}, {title: "Name", width: 28}, {title: "Level"}},
		row: func(s models.Skill) []string {
			level := "-"
			if s.Level != nil {
				level = strconv.Itoa(*s.Level)
			}
			return []string{valueOrDash(s.Category), s.Name, level}
		},
	})
}

func NewTestimonialsModel(sh *shell) tea.Model {
	svc := sh.services.Testimonials
	return newCatalogModel(sh, catalogKind[models.Testimonial, models.TestimonialForm]{
		page:  pageTestimonials,
		title: "TESTIMONIALS",
		noun:  "Testimonial",
		list:  svc.List,
		save: func(ctx context.Context, id int64, form models.TestimonialForm) error {
			_, err := svc.Save(ctx, id, form)
			return err
		},
		remove:   svc.Delete,
		id:       func(t models.Testimonial) int64 { return t.ID },
		blank:    func() models.TestimonialForm { return models.TestimonialForm{} },
		fromItem: models.TestimonialFormFrom,
		fields: func(f *formModel, form models.TestimonialForm) *formModel {
			return f.text("name", "Name", form.Name).
				text("role", "Role", form.Role).
				area("quote", "Quote", form.Quote).
				text("avatarUrl", "Avatar URL", form.AvatarURL)
		},
		read: func(f *formModel) models.TestimonialForm {
			return models.TestimonialForm{
				Name:      f.Value("name"),
				Role:      f.Value("role"),
				Quote:     f.Value("quote"),
				AvatarURL: f.Value("avatarUrl"),
			}
		},
		columns: []column{{title: "Name", width: 20}, {title: "Role", width: 20}, {title: "Quote", width: 44}, {title: "Avatar"}},
		row: func(t models.Testimonial) []string {
			return []string{t.Name, valueOrDash(t.Role), t.Quote, yesNo(t.AvatarURL != nil)}
		},
	})
}
