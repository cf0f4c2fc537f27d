package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

// Query parameters of the landing page.
const (
	queryProject = "project"
	queryVideo   = "video"
	queryWatch   = "watch"
	queryDoc     = "doc"
	// queryFrom marks a modal opened from a card on the page itself.
	queryFrom = "from"
	fromCard  = "card"
)

const themeCookie = "kellyflo_theme"

// Contact notices.
const (
	contactSuccessText = "Message sent successfully! I will get back to you shortly."
	previewNoticeText  = "Preview works best for PDF files. This file type can be downloaded and opened locally."
	downloadOffText    = "Download disabled by admin"
)

type filterLink struct {
	Label  string
	URL    string
	Active bool
}

type videoCard struct {
	models.Video
	WatchURL string
}

type documentCard struct {
	models.DocumentEntry
	OpenURL string
}

type videoModal struct {
	Video    models.Video
	EmbedURL string
	CloseURL string
	// Back makes the close control navigate back in history.
	Back bool
}

type documentModal struct {
	Entry    models.DocumentEntry
	CloseURL string
	Notice   string
}

type contactView struct {
	Values     models.ContactMessage
	Error      string
	Success    string
	Confirming bool
}

type testimonialView struct {
	Testimonial models.Testimonial
	Index       int
	Count       int
	IntervalMS  int64
}

type pageView struct {
	Content models.Content
	Theme   models.Theme
	// ReturnURL is where the theme toggle comes back to.
	ReturnURL string

	Services       []models.Service
	ProjectFilters []filterLink
	Projects       []models.Project
	SkillGroups    []models.SkillGroup
	Testimonial    *testimonialView
	VideoFilters   []filterLink
	Videos         []videoCard
	Documents      []documentCard

	Video    *videoModal
	Document *documentModal
	Contact  contactView

	DownloadOffText string
	Year            int
}

// buildPage derives everything the landing template shows from the loaded
// data and the request query.
func (h *Handler) buildPage(r *http.Request, landing models.Landing, contact contactView) pageView {
	q := r.URL.Query()

	page := pageView{
		Content:         landing.Content,
		Theme:           themeFromRequest(r),
		ReturnURL:       withParams(q, nil),
		Services:        landing.Services,
		SkillGroups:     service.GroupSkills(landing.Skills),
		Testimonial:     h.currentTestimonial(landing.Testimonials),
		Contact:         contact,
		DownloadOffText: downloadOffText,
		Year:            time.Now().Year(),
	}

	projectFilter := service.ResolveFilter(service.ProjectFilters(landing.Projects), q.Get(queryProject))
	page.ProjectFilters = filterLinks(q, queryProject, service.ProjectFilters(landing.Projects), projectFilter, "work")
	page.Projects = service.FilterProjects(landing.Projects, projectFilter)

	videoFilter := service.ResolveFilter(service.VideoFilters(landing.Videos), q.Get(queryVideo))
	page.VideoFilters = filterLinks(q, queryVideo, service.VideoFilters(landing.Videos), videoFilter, "videos")
	for _, v := range service.FilterVideos(landing.Videos, videoFilter) {
		watch := withParams(q, map[string]string{queryWatch: strconv.FormatInt(v.ID, 10), queryFrom: fromCard, queryDoc: ""})
		page.Videos = append(page.Videos, videoCard{Video: v, WatchURL: watch})
	}

	for _, d := range landing.Documents {
		open := withParams(q, map[string]string{queryDoc: d.Key, queryWatch: "", queryFrom: ""})
		page.Documents = append(page.Documents, documentCard{DocumentEntry: d, OpenURL: open})
	}

	page.Video = videoModalFor(q, landing.Videos, sameSiteReferrer(r))
	page.Document = documentModalFor(q, landing.Documents)

	return page
}

// currentTestimonial picks the card shown for the rotator's index. The
// rotator length is owned by the warmup worker; handlers only read it, and an
// index left over from a longer list wraps onto the current one.
func (h *Handler) currentTestimonial(testimonials []models.Testimonial) *testimonialView {
	if len(testimonials) == 0 {
		return nil
	}

	idx := h.services.Rotator.Index() % len(testimonials)
	return &testimonialView{
		Testimonial: testimonials[idx],
		Index:       idx,
		Count:       len(testimonials),
		IntervalMS:  h.settings.RotationInterval.Milliseconds(),
	}
}

// videoModalFor opens the video named by ?watch. Opening from a card of this
// site pushes a history entry, so closing goes back. A modal loaded any other
// way, including a copied link that still carries from=card, closes by linking
// to the modal-free URL.
func videoModalFor(q url.Values, videos []models.Video, fromThisSite bool) *videoModal {
	id, err := strconv.ParseInt(q.Get(queryWatch), 10, 64)
	if err != nil {
		return nil
	}

	for _, v := range videos {
		if v.ID != id {
			continue
		}

		var state service.ModalState
		if q.Get(queryFrom) == fromCard && fromThisSite {
			state.Open(id)
		} else {
			state.Restore(id)
		}

		return &videoModal{
			Video:    v,
			EmbedURL: utils.EmbedURL(v.VideoURL),
			CloseURL: withParams(q, map[string]string{queryWatch: "", queryFrom: ""}) + "#videos",
			Back:     state.Pushed(),
		}
	}
	return nil
}

// sameSiteReferrer reports whether the request was made from a page of this
// site. Fresh tabs and bookmarks carry no referrer.
func sameSiteReferrer(r *http.Request) bool {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host == "" {
		return false
	}
	return strings.EqualFold(ref.Host, r.Host)
}

func documentModalFor(q url.Values, docs []models.DocumentEntry) *documentModal {
	key := q.Get(queryDoc)
	if key == "" {
		return nil
	}

	entry, ok := service.FindDocument(docs, key)
	if !ok {
		return nil
	}

	modal := &documentModal{
		Entry:    entry,
		CloseURL: withParams(q, map[string]string{queryDoc: ""}) + "#blog",
	}
	if !entry.IsPDF() {
		modal.Notice = previewNoticeText
	}
	return modal
}

func filterLinks(q url.Values, key string, options []string, selected, anchor string) []filterLink {
	links := make([]filterLink, 0, len(options))
	for _, o := range options {
		value := o
		if o == service.FilterAll {
			value = ""
		}
		links = append(links, filterLink{
			Label:  o,
			URL:    withParams(q, map[string]string{key: value}) + "#" + anchor,
			Active: o == selected,
		})
	}
	return links
}

// withParams returns the landing URL for q with params applied. An empty
// value removes the parameter.
func withParams(q url.Values, params map[string]string) string {
	next := make(url.Values, len(q))
	for k, v := range q {
		next[k] = append([]string(nil), v...)
	}

	for k, v := range params {
		if v == "" {
			next.Del(k)
			continue
		}
		next.Set(k, v)
	}

	if len(next) == 0 {
		return "/"
	}
	return "/?" + next.Encode()
}

func themeFromRequest(r *http.Request) models.Theme {
	c, err := r.Cookie(themeCookie)
	if err != nil {
		return models.ThemeDark
	}
	return models.ParseTheme(c.Value)
}
