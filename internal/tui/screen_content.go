package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portfolio/models"
)

type contentText struct {
	key   string
	label string
	area  bool
	ptr   func(c *models.Content) *string
}

type contentFlag struct {
	key   string
	label string
	ptr   func(c *models.Content) *bool
}

var contentTexts = []contentText{
	{"brandName", "Brand name", false, func(c *models.Content) *string { return &c.BrandName }},
	{"navHireCtaText", "Nav hire CTA", false, func(c *models.Content) *string { return &c.NavHireCtaText }},
	{"heroTitle", "Hero title", false, func(c *models.Content) *string { return &c.HeroTitle }},
	{"heroHighlight", "Hero highlight", false, func(c *models.Content) *string { return &c.HeroHighlight }},
	{"heroSubheadline", "Hero subheadline", false, func(c *models.Content) *string { return &c.HeroSubheadline }},
	{"heroDescription", "Hero description", true, func(c *models.Content) *string { return &c.HeroDescription }},
	{"heroPrimaryCtaText", "Primary CTA text", false, func(c *models.Content) *string { return &c.HeroPrimaryCtaText }},
	{"heroPrimaryCtaLink", "Primary CTA link", false, func(c *models.Content) *string { return &c.HeroPrimaryCtaLink }},
	{"heroSecondaryCtaText", "Secondary CTA text", false, func(c *models.Content) *string { return &c.HeroSecondaryCtaText }},
	{"heroSecondaryCtaLink", "Secondary CTA link", false, func(c *models.Content) *string { return &c.HeroSecondaryCtaLink }},
	{"heroTagOne", "Hero tag 1", false, func(c *models.Content) *string { return &c.HeroTagOne }},
	{"heroTagTwo", "Hero tag 2", false, func(c *models.Content) *string { return &c.HeroTagTwo }},
	{"heroTagThree", "Hero tag 3", false, func(c *models.Content) *string { return &c.HeroTagThree }},
	{"profileImageUrl", "Profile image URL", false, func(c *models.Content) *string { return &c.ProfileImageURL }},
	{"aboutTitle", "About title", false, func(c *models.Content) *string { return &c.AboutTitle }},
	{"aboutDescription", "About description", true, func(c *models.Content) *string { return &c.AboutDescription }},
	{"statOneValue", "Stat 1 value", false, func(c *models.Content) *string { return &c.StatOneValue }},
	{"statOneLabel", "Stat 1 label", false, func(c *models.Content) *string { return &c.StatOneLabel }},
	{"statTwoValue", "Stat 2 value", false, func(c *models.Content) *string { return &c.StatTwoValue }},
	{"statTwoLabel", "Stat 2 label", false, func(c *models.Content) *string { return &c.StatTwoLabel }},
	{"statThreeValue", "Stat 3 value", false, func(c *models.Content) *string { return &c.StatThreeValue }},
	{"statThreeLabel", "Stat 3 label", false, func(c *models.Content) *string { return &c.StatThreeLabel }},
	{"servicesTitle", "Services title", false, func(c *models.Content) *string { return &c.ServicesTitle }},
	{"workTitle", "Work title", false, func(c *models.Content) *string { return &c.WorkTitle }},
	{"skillsTitle", "Skills title", false, func(c *models.Content) *string { return &c.SkillsTitle }},
	{"testimonialsTitle", "Testimonials title", false, func(c *models.Content) *string { return &c.TestimonialsTitle }},
	{"videosTitle", "Videos title", false, func(c *models.Content) *string { return &c.VideosTitle }},
	{"contactTitle", "Contact title", false, func(c *models.Content) *string { return &c.ContactTitle }},
	{"contactCardTitle", "Contact card title", false, func(c *models.Content) *string { return &c.ContactCardTitle }},
	{"contactEmail", "Contact email", false, func(c *models.Content) *string { return &c.ContactEmail }},
	{"whatsappUrl", "WhatsApp URL", false, func(c *models.Content) *string { return &c.WhatsappURL }},
	{"linkedinUrl", "LinkedIn URL", false, func(c *models.Content) *string { return &c.LinkedinURL }},
	{"githubUrl", "GitHub URL", false, func(c *models.Content) *string { return &c.GithubURL }},
	{"tiktokUrl", "TikTok URL", false, func(c *models.Content) *string { return &c.TiktokURL }},
}

var contentFlags = []contentFlag{
	{"resumeVisible", "Resume visible", func(c *models.Content) *bool { return &c.ResumeVisible }},
	{"resumeDownloadEnabled", "Resume download", func(c *models.Content) *bool { return &c.ResumeDownloadEnabled }},
	{"cvVisible", "CV visible", func(c *models.Content) *bool { return &c.CVVisible }},
	{"cvDownloadEnabled", "CV download", func(c *models.Content) *bool { return &c.CVDownloadEnabled }},
}

var contentFileTypes = []models.ContentFileType{models.ContentFileResume, models.ContentFileCV}

// ContentModel edits the singleton content record and manages the resume
// and CV files. The overview lists the file slots; e opens the full form.
type ContentModel struct {
	screen

	content models.Content
	// upload is the local path prompt of a file upload; uploadType is the
	// slot it targets.
	upload     textinput.Model
	uploadType models.ContentFileType
}

func NewContentModel(sh *shell) *ContentModel {
	in := textinput.New()
	in.Placeholder = "/path/to/file.pdf"
	in.Width = formInputWidth
	in.Prompt = ""

	return &ContentModel{
		screen:  newScreen(sh, pageContent),
		content: models.DefaultContent(),
		upload:  in,
	}
}

func (m *ContentModel) Init() tea.Cmd {
	m.loading = true
	m.form = nil
	ctx, content := m.shell.ctx, m.shell.services.Content
	return func() tea.Msg {
		loaded, err := content.Load(ctx)
		return contentLoadedMsg{content: loaded, err: err}
	}
}

func (m *ContentModel) capturingInput() bool {
	return m.form != nil || m.confirm != nil || m.upload.Focused()
}

func (m *ContentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contentLoadedMsg:
		m.loading = false
		// Load falls back to the defaults, so the form stays usable
		m.content = msg.content
		if msg.err != nil {
			m.report("", msg.err)
		}
		return m, nil
	case contentSavedMsg:
		m.busy = false
		m.closeConfirm()
		if msg.err != nil {
			m.report("", msg.err)
			if m.form != nil {
				m.form.submitting = false
				m.form.errMsg = errorText(msg.err)
			}
			return m, nil
		}
		m.content = msg.content
		m.form = nil
		m.report(msg.notice, nil)
		return m, nil
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
	if m.upload.Focused() {
		var cmd tea.Cmd
		m.upload, cmd = m.upload.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ContentModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m, m.updateConfirm(msg)
	}
	if m.form != nil {
		switch {
		case key.Matches(msg, keys.esc):
			m.form = nil
			return m, nil
		case key.Matches(msg, keys.save):
			return m, m.save()
		}
		cmd, _ := m.form.Update(msg)
		return m, cmd
	}
	if m.upload.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			m.upload.Blur()
			m.upload.SetValue("")
			return m, nil
		case tea.KeyEnter:
			m.upload.Blur()
			return m, m.uploadFile(m.uploadType, m.upload.Value())
		}
		var cmd tea.Cmd
		m.upload, cmd = m.upload.Update(msg)
		return m, cmd
	}

	if m.moveCursor(msg, len(contentFileTypes)) {
		return m, nil
	}

	fileType := contentFileTypes[m.cursor]
	switch {
	case key.Matches(msg, keys.edit):
		m.openForm()
	case key.Matches(msg, keys.upload):
		if !m.busy {
			m.uploadType = fileType
			m.upload.SetValue("")
			return m, m.upload.Focus()
		}
	case key.Matches(msg, keys.delete):
		if m.hasFile(fileType) && !m.busy {
			m.askDelete(fileType)
		}
	case key.Matches(msg, keys.copy):
		read, _ := m.shell.services.Content.FileURLs(fileType)
		return m, copyCmd(fileLabel(fileType)+" read URL", read)
	case msg.String() == "r":
		return m, m.Init()
	}
	return m, nil
}

func (m *ContentModel) openForm() {
	f := newFormModel("EDIT CONTENT")
	c := m.content
	for _, t := range contentTexts {
		if t.area {
			f.area(t.key, t.label, *t.ptr(&c))
		} else {
			f.text(t.key, t.label, *t.ptr(&c))
		}
	}
	for _, flag := range contentFlags {
		f.toggle(flag.key, flag.label, *flag.ptr(&c))
	}
	m.form = f.start()
}

// formContent applies the form onto the loaded record, keeping the file
// references untouched.
func (m *ContentModel) formContent() models.Content {
	c := m.content
	for _, t := range contentTexts {
		*t.ptr(&c) = strings.TrimSpace(m.form.Value(t.key))
	}
	for _, flag := range contentFlags {
		*flag.ptr(&c) = m.form.Bool(flag.key)
	}
	return c
}

func (m *ContentModel) save() tea.Cmd {
	if m.form.submitting {
		return nil
	}
	m.form.submitting = true
	m.form.errMsg = ""

	updated := m.formContent()
	ctx, content := m.shell.ctx, m.shell.services.Content
	return func() tea.Msg {
		saved, err := content.Save(ctx, updated)
		return contentSavedMsg{content: saved, notice: "Content updated successfully.", err: err}
	}
}

func (m *ContentModel) uploadFile(fileType models.ContentFileType, path string) tea.Cmd {
	m.busy = true
	ctx, content := m.shell.ctx, m.shell.services.Content
	notice := fileLabel(fileType) + " uploaded successfully."
	return func() tea.Msg {
		saved, err := content.UploadFile(ctx, fileType, path)
		return contentSavedMsg{content: saved, notice: notice, err: err}
	}
}

func (m *ContentModel) askDelete(fileType models.ContentFileType) {
	label := fileLabel(fileType)
	ctx, content := m.shell.ctx, m.shell.services.Content
	m.ask("Delete File", fmt.Sprintf("Delete the uploaded %s file? This action cannot be undone.", label), func() tea.Cmd {
		return func() tea.Msg {
			saved, err := content.DeleteFile(ctx, fileType)
			return contentSavedMsg{content: saved, notice: label + " deleted successfully.", err: err}
		}
	})
}

func (m *ContentModel) hasFile(fileType models.ContentFileType) bool {
	if fileType == models.ContentFileCV {
		return m.content.CVStoredName != ""
	}
	return m.content.ResumeStoredName != ""
}

func fileLabel(fileType models.ContentFileType) string {
	return strings.ToUpper(string(fileType))
}

func (m *ContentModel) View() string {
	if m.form != nil {
		return renderPage(m.form.title, m.form.View(), "tab/↑/↓: field │ space: toggle │ ctrl+s: save │ esc: cancel")
	}

	c := m.content
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Brand:   %s\n", valueOrDash(c.BrandName)))
	b.WriteString(fmt.Sprintf("Hero:    %s %s\n", c.HeroTitle, c.HeroHighlight))
	b.WriteString(fmt.Sprintf("About:   %s\n", fitText(c.AboutTitle, 60)))
	b.WriteString(fmt.Sprintf("Contact: %s\n\n", valueOrDash(c.ContactEmail)))

	rows := [][]string{
		{"Resume", valueOrDash(c.ResumeOriginalName), yesNo(c.ResumeVisible), yesNo(c.ResumeDownloadEnabled)},
		{"CV", valueOrDash(c.CVOriginalName), yesNo(c.CVVisible), yesNo(c.CVDownloadEnabled)},
	}
	b.WriteString(renderTable([]column{
		{title: "File"},
		{title: "Uploaded", width: 32},
		{title: "Visible"},
		{title: "Download"},
	}, rows, m.cursor))
	b.WriteString("\n")

	fileType := contentFileTypes[m.cursor]
	if m.hasFile(fileType) {
		read, download := m.shell.services.Content.FileURLs(fileType)
		b.WriteString("\n" + helpStyle.Render("Test read:     "+read))
		b.WriteString("\n" + helpStyle.Render("Test download: "+download) + "\n")
	}

	if m.upload.Focused() {
		b.WriteString(fmt.Sprintf("\nUpload %s from: [%s]\n", fileLabel(m.uploadType), m.upload.View()))
	} else if m.busy && m.confirm == nil {
		b.WriteString("\nUploading...\n")
	}
	b.WriteString(m.statusView())

	return renderPage("CONTENT", m.withOverlay(b.String()),
		"e: edit content │ ↑/↓: file │ u: upload │ d: delete file │ c: copy URL │ r: reload")
}
