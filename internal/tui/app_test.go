package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

type fixture struct {
	session      *mock.MockSessionService
	auth         *mock.MockAuthService
	projects     *mock.MockProjectService
	videos       *mock.MockVideoService
	messages     *mock.MockMessageService
	serviceItems *mock.MockServiceItemService
	skills       *mock.MockSkillService
	testimonials *mock.MockTestimonialService
	content      *mock.MockContentService
	docs         *mock.MockBlogDocumentService
	dashboard    *mock.MockDashboardService

	services *service.AdminServices
	shell    *shell
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		session:      mock.NewMockSessionService(ctrl),
		auth:         mock.NewMockAuthService(ctrl),
		projects:     mock.NewMockProjectService(ctrl),
		videos:       mock.NewMockVideoService(ctrl),
		messages:     mock.NewMockMessageService(ctrl),
		serviceItems: mock.NewMockServiceItemService(ctrl),
		skills:       mock.NewMockSkillService(ctrl),
		testimonials: mock.NewMockTestimonialService(ctrl),
		content:      mock.NewMockContentService(ctrl),
		docs:         mock.NewMockBlogDocumentService(ctrl),
		dashboard:    mock.NewMockDashboardService(ctrl),
	}
	f.services = &service.AdminServices{
		Session:       f.session,
		Auth:          f.auth,
		Projects:      f.projects,
		Videos:        f.videos,
		Messages:      f.messages,
		ServiceItems:  f.serviceItems,
		Skills:        f.skills,
		Testimonials:  f.testimonials,
		Content:       f.content,
		BlogDocuments: f.docs,
		Dashboard:     f.dashboard,
	}
	f.shell = &shell{ctx: context.Background(), services: f.services, theme: models.ThemeDark}
	return f
}

// newRoot expects the theme and username reads done by NewRootModel.
func (f *fixture) newRoot() RootModel {
	f.session.EXPECT().Theme(gomock.Any()).Return(models.ThemeDark)
	f.session.EXPECT().Username(gomock.Any()).Return("")
	return NewRootModel(context.Background(), f.services, models.NewAppBuildInfo("1.0.0", "", ""))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	if cmd == nil {
		return next, nil
	}
	return next, cmd()
}

func TestRootModel_RedirectsToLoginAndReturnsAfterLogin(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(false).Times(2)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(true).AnyTimes()

	root := f.newRoot()
	assert.Equal(t, pageLogin, root.current)

	next, _ := root.Update(NavigateTo{Page: pageProjects})
	root = next.(RootModel)
	assert.Equal(t, pageLogin, root.current)
	assert.Equal(t, pageProjects, root.from)

	next, cmd := root.Update(LoginResult{Session: models.Session{Token: "t", Username: "kelly"}})
	root = next.(RootModel)

	assert.Equal(t, pageProjects, root.current)
	assert.Empty(t, root.from)
	assert.Equal(t, "kelly", root.shell.username)
	assert.NotNil(t, cmd)
}

func TestRootModel_FailedLoginStaysOnLogin(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(false).AnyTimes()

	root := f.newRoot()
	next, _ := root.Update(LoginResult{Err: service.ErrInvalidDataProvided})
	root = next.(RootModel)

	assert.Equal(t, pageLogin, root.current)
	login := root.pages[pageLogin].(*LoginModel)
	assert.Equal(t, "Please fill in the required fields.", login.errMsg)
}

func TestRootModel_LoginPageSkippedWhenAuthenticated(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(true).AnyTimes()

	root := f.newRoot()
	require.Equal(t, pageDashboard, root.current)

	next, _ := root.Update(NavigateTo{Page: pageLogin})
	assert.Equal(t, pageDashboard, next.(RootModel).current)
}

func TestRootModel_ExpiredSessionRedirectsOnNextKey(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(true).Times(1)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(false).AnyTimes()

	root := f.newRoot()
	require.Equal(t, pageDashboard, root.current)

	next, _ := root.Update(runes("j"))
	root = next.(RootModel)

	assert.Equal(t, pageLogin, root.current)
	assert.Equal(t, pageDashboard, root.from)
}

func TestRootModel_LogoutReturnsToLogin(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(true).Times(2)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(false).AnyTimes()
	f.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	root := f.newRoot()
	next, msg := update(t, root, runes("L"))
	require.IsType(t, loggedOutMsg{}, msg)

	next, _ = next.Update(msg)
	root = next.(RootModel)
	assert.Equal(t, pageLogin, root.current)
	assert.Empty(t, root.from)
}

func TestRootModel_ToggleTheme(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(true).AnyTimes()
	f.session.EXPECT().ToggleTheme(gomock.Any()).Return(models.ThemeSlate, nil)

	root := f.newRoot()
	next, msg := update(t, root, runes("t"))
	next, _ = next.Update(msg)

	assert.Equal(t, models.ThemeSlate, next.(RootModel).shell.theme)
}

func TestRootModel_ShortcutsIgnoredWhileTyping(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(true).AnyTimes()

	root := f.newRoot()
	next, _ := root.Update(NavigateTo{Page: pageProjects})
	root = next.(RootModel)

	projects := root.pages[pageProjects].(*ProjectsModel)
	projects.search.Focus()

	next, _ = root.Update(runes("3"))
	assert.Equal(t, pageProjects, next.(RootModel).current)
	assert.Equal(t, "3", projects.search.Value())
}

func TestRootModel_NumberShortcutNavigates(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(true).AnyTimes()

	root := f.newRoot()
	next, _ := root.Update(runes("4"))

	assert.Equal(t, pageMessages, next.(RootModel).current)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(false).AnyTimes()

	root := f.newRoot()
	next, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, next.(RootModel).quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_ActionResultReachesScreenAfterNavigatingAway(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(true).AnyTimes()
	draft := models.Project{ID: 1, Title: "Demo", Status: models.ProjectDraft}
	f.projects.EXPECT().List(gomock.Any(), gomock.Any()).Return(projectPage(1, draft), nil).AnyTimes()
	f.videos.EXPECT().List(gomock.Any(), gomock.Any()).Return(models.Page[models.Video]{}, nil).AnyTimes()
	f.projects.EXPECT().ToggleStatus(gomock.Any(), draft).Return(models.Project{}, nil).Times(2)

	var next tea.Model = f.newRoot()
	next, loaded := update(t, next, runes("2"))
	next, _ = next.Update(loaded)

	next, toggle := next.Update(runes("p"))
	require.NotNil(t, toggle)

	// leave before the toggle returns
	next, loaded = update(t, next, runes("3"))
	next, _ = next.Update(loaded)
	require.Equal(t, pageVideos, next.(RootModel).current)

	next, cmd := next.Update(toggle())
	assert.Nil(t, cmd)
	projects := next.(RootModel).pages[pageProjects].(*ProjectsModel)
	assert.False(t, projects.busy)
	assert.Equal(t, "Project published.", projects.notice)

	next, loaded = update(t, next, runes("2"))
	next, _ = next.Update(loaded)
	require.Len(t, projects.items, 1)

	_, toggle = next.Update(runes("p"))
	require.NotNil(t, toggle)
	assert.IsType(t, actionDoneMsg{}, toggle())
}

func TestRootModel_MessageOpenedAfterLeavingReleasesScreen(t *testing.T) {
	f := newFixture(t)
	f.session.EXPECT().IsAuthenticated(gomock.Any()).Return(true).AnyTimes()
	f.messages.EXPECT().Open(gomock.Any(), int64(3)).Return(models.Message{ID: 3, Read: true}, nil)

	root := f.newRoot()
	root.current = pageMessages
	messages := root.pages[pageMessages].(*MessagesModel)
	messages.items = []models.Message{{ID: 3}}

	next, open := root.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, open)
	require.True(t, messages.busy)

	r := next.(RootModel)
	r.current = pageServices
	_, cmd := r.Update(open())

	assert.Nil(t, cmd)
	assert.False(t, messages.busy)
	require.NotNil(t, messages.selected)
	assert.Equal(t, "Message opened.", messages.notice)
}
