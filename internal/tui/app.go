package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

// RootModel is the TUI router:
// 1) keeps the active page and the navbar
// 2) handles the global hotkeys (quit, theme, logout, version, 1..9)
// 3) guards every protected page with the session check
// 4) delegates all other messages to the active page
type RootModel struct {
	shell   *shell
	pages   map[string]tea.Model
	current string
	// from is the page requested before the login redirect.
	from string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens the dashboard, or the login
// screen when no valid session is stored.
func NewRootModel(ctx context.Context, services *service.AdminServices, buildInfo models.AppBuildInfo) RootModel {
	sh := &shell{
		ctx:      ctx,
		services: services,
		theme:    services.Session.Theme(ctx),
		username: services.Session.Username(ctx),
	}

	r := RootModel{
		shell:     sh,
		pages:     newPages(sh),
		buildInfo: buildInfo,
	}
	r.current = r.resolve(pageDashboard)
	return r
}

func newPages(sh *shell) map[string]tea.Model {
	return map[string]tea.Model{
		pageLogin:        NewLoginModel(sh),
		pageDashboard:    NewDashboardModel(sh),
		pageProjects:     NewProjectsModel(sh),
		pageVideos:       NewVideosModel(sh),
		pageMessages:     NewMessagesModel(sh),
		pageServices:     NewServicesModel(sh),
		pageSkills:       NewSkillsModel(sh),
		pageTestimonials: NewTestimonialsModel(sh),
		pageContent:      NewContentModel(sh),
		pageBlogDocs:     NewBlogDocsModel(sh),
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.pages[r.current].Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		// the guard is re-evaluated on every interaction, so an expiring
		// token sends the admin back to the login screen
		if r.current != pageLogin && !r.authenticated() {
			return r.navigate(r.current, nil)
		}

		if r.current != pageLogin && !r.capturing() {
			switch {
			case key.Matches(keyMsg, keys.version):
				r.showBuildInfo = true
				return r, nil
			case key.Matches(keyMsg, keys.theme):
				return r, r.cmdToggleTheme()
			case key.Matches(keyMsg, keys.logout):
				return r, r.cmdLogout()
			case key.Matches(keyMsg, keys.home):
				return r.navigate(pageDashboard, nil)
			}
			if page, ok := shortcutPage(keyMsg.String()); ok {
				return r.navigate(page, nil)
			}
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg.Page, msg.Payload)
	case LoginResult:
		if msg.Err == nil {
			r.shell.username = msg.Session.Username
			target := r.from
			if target == "" {
				target = pageDashboard
			}
			r.from = ""
			return r.navigate(target, nil)
		}
	case loggedOutMsg:
		r.shell.username = ""
		r.from = ""
		return r.navigate(pageLogin, nil)
	case themeChangedMsg:
		if msg.err == nil {
			r.shell.theme = msg.theme
		}
		return r, nil
	}

	if result, ok := msg.(pageResult); ok && result.resultPage() != r.current {
		owner, ok := r.pages[result.resultPage()]
		if !ok {
			return r, nil
		}
		// the follow-up reload is dropped; the screen reloads in Init when
		// the admin comes back
		updated, _ := owner.Update(msg)
		r.pages[result.resultPage()] = updated
		return r, nil
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

// navigate switches to page through the route guard and starts it. A
// payload is delivered to the page instead of its Init.
func (r RootModel) navigate(page string, payload any) (tea.Model, tea.Cmd) {
	if _, exists := r.pages[page]; !exists {
		return r, nil
	}

	r.showBuildInfo = false
	target := r.resolve(page)
	r.current = target

	if payload != nil && target == page {
		return r, func() tea.Msg { return payload }
	}
	return r, r.pages[target].Init()
}

// resolve applies the route guard. Protected pages need a valid session;
// the requested page is remembered so a successful login returns to it.
// The login page itself is skipped while a session is valid.
func (r *RootModel) resolve(page string) string {
	authed := r.authenticated()
	switch {
	case page == pageLogin && authed:
		return pageDashboard
	case page != pageLogin && !authed:
		r.from = page
		return pageLogin
	}
	return page
}

func (r RootModel) authenticated() bool {
	return r.shell.services.Session.IsAuthenticated(r.shell.ctx)
}

func (r RootModel) capturing() bool {
	c, ok := r.pages[r.current].(capturer)
	return ok && c.capturingInput()
}

func (r RootModel) cmdToggleTheme() tea.Cmd {
	ctx, session := r.shell.ctx, r.shell.services.Session
	return func() tea.Msg {
		theme, err := session.ToggleTheme(ctx)
		return themeChangedMsg{theme: theme, err: err}
	}
}

func (r RootModel) cmdLogout() tea.Cmd {
	ctx, auth := r.shell.ctx, r.shell.services.Auth
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func shortcutPage(k string) (string, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return "", false
	}
	i := int(k[0] - '1')
	if i >= len(navOrder) {
		return "", false
	}
	return navOrder[i], true
}

func (r RootModel) View() string {
	style := frameStyle(r.shell.theme)
	if r.showBuildInfo {
		return style.Render(renderBuildInfoWindow(r.buildInfo))
	}

	page, ok := r.pages[r.current]
	if !ok {
		return style.Render(renderPage("ADMIN", "", ""))
	}
	if r.current == pageLogin {
		return style.Render(page.View())
	}
	return style.Render(r.navbar() + "\n\n" + page.View())
}

// navbar lists the pages with their shortcuts, the signed-in admin and the
// theme.
func (r RootModel) navbar() string {
	items := make([]string, 0, len(navOrder))
	for i, p := range navOrder {
		item := fmt.Sprintf("%d %s", i+1, pageTitles[p])
		if p == r.current {
			item = accentStyle(r.shell.theme).Render(item)
		}
		items = append(items, item)
	}

	user := r.shell.username
	if user == "" {
		user = "admin"
	}
	return titleStyle.Render("KELLYFLO Admin") + "  " + strings.Join(items, " │ ") + "\n" +
		helpStyle.Render(fmt.Sprintf("signed in as %s │ theme %s │ t: theme │ L: logout │ v: version", user, r.shell.theme))
}
