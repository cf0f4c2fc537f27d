package tui

import "github.com/MKhiriev/go-portfolio/models"

// Page names understood by [RootModel].
const (
	pageLogin        = "login"
	pageDashboard    = "dashboard"
	pageProjects     = "projects"
	pageVideos       = "videos"
	pageMessages     = "messages"
	pageServices     = "services"
	pageSkills       = "skills"
	pageTestimonials = "testimonials"
	pageContent      = "content"
	pageBlogDocs     = "blog-docs"
)

// navOrder is the order of the navbar and of the 1..9 shortcuts.
var navOrder = []string{
	pageDashboard,
	pageProjects,
	pageVideos,
	pageMessages,
	pageServices,
	pageSkills,
	pageTestimonials,
	pageContent,
	pageBlogDocs,
}

var pageTitles = map[string]string{
	pageLogin:        "Login",
	pageDashboard:    "Dashboard",
	pageProjects:     "Projects",
	pageVideos:       "Videos",
	pageMessages:     "Messages",
	pageServices:     "Services",
	pageSkills:       "Skills",
	pageTestimonials: "Testimonials",
	pageContent:      "Content",
	pageBlogDocs:     "Blog Docs",
}

// NavigateTo asks [RootModel] to switch to Page. When Payload is set it is
// delivered to the target page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login screen once the backend answered.
type LoginResult struct {
	Session models.Session
	Err     error
}

type loggedOutMsg struct {
	err error
}

type themeChangedMsg struct {
	theme models.Theme
	err   error
}

type dashboardLoadedMsg struct {
	stats models.DashboardStats
}

// pageLoadedMsg carries one page of a paginated list. seq identifies the
// load that produced it; answers of superseded loads are dropped.
type pageLoadedMsg[T any] struct {
	seq  int
	page models.Page[T]
	err  error
}

// listLoadedMsg carries an unpaginated list.
type listLoadedMsg[T any] struct {
	seq   int
	items []T
	err   error
}

// searchTickMsg fires once the search input has been quiet for the
// debounce interval.
type searchTickMsg struct {
	page string
	seq  int
}

// actionDoneMsg reports the outcome of a mutating call of one screen.
// deleted marks a successful delete so paginated screens can step back.
type actionDoneMsg struct {
	page    string
	notice  string
	err     error
	deleted bool
}

// pageResult is the outcome of a call started by one screen. RootModel hands
// it to that screen even after the admin has moved to another one, so the
// screen can release its busy state.
type pageResult interface {
	resultPage() string
}

func (m actionDoneMsg) resultPage() string    { return m.page }
func (m contentSavedMsg) resultPage() string  { return pageContent }
func (m messageOpenedMsg) resultPage() string { return pageMessages }

type contentLoadedMsg struct {
	content models.Content
	err     error
}

type contentSavedMsg struct {
	content models.Content
	notice  string
	err     error
}

type messageOpenedMsg struct {
	message models.Message
	err     error
}

type copiedMsg struct {
	what string
	err  error
}
