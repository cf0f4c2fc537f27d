package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
)

// searchDebounce is how long the search inputs must stay quiet before a
// reload is issued.
const searchDebounce = 300 * time.Millisecond

// shell is the state every screen shares with [RootModel].
type shell struct {
	ctx      context.Context
	services *service.AdminServices
	theme    models.Theme
	username string
}

// loader hands out one context per list load. Starting a load cancels the
// previous one and bumps the sequence, so a late answer is recognised as
// stale and dropped.
type loader struct {
	seq    int
	cancel context.CancelFunc
}

func (l *loader) start(parent context.Context) (context.Context, int) {
	l.stop()
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	l.seq++
	return ctx, l.seq
}

func (l *loader) stale(seq int) bool {
	return seq != l.seq
}

func (l *loader) stop() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// capturer is implemented by screens that sometimes own the keyboard, e.g.
// while a form or a search input is focused. [RootModel] leaves its global
// single-key shortcuts alone while a screen captures input.
type capturer interface {
	capturingInput() bool
}

// screen is the state shared by the resource screens: cursor, load
// tracking, the ephemeral notice or error, the confirmation overlay and the
// editor form.
type screen struct {
	shell *shell
	name  string

	load     loader
	debounce int
	cursor   int
	loading  bool
	// busy disables the triggering control while a mutating call runs.
	busy bool

	notice string
	errMsg string

	confirm   *confirmModel
	onConfirm func() tea.Cmd

	form      *formModel
	editingID int64
}

func newScreen(sh *shell, name string) screen {
	return screen{shell: sh, name: name, loading: true}
}

// report replaces the previous outcome; notices are not queued.
func (s *screen) report(notice string, err error) {
	if err != nil {
		s.notice = ""
		s.errMsg = errorText(err)
		return
	}
	s.errMsg = ""
	s.notice = notice
}

// ask opens a confirmation. A non-empty title makes it a dialog that stays
// open with a loading state until the action finishes; a plain prompt
// closes as soon as it is answered.
func (s *screen) ask(title, message string, then func() tea.Cmd) {
	s.confirm = &confirmModel{title: title, message: message}
	s.onConfirm = then
}

func (s *screen) closeConfirm() {
	s.confirm = nil
	s.onConfirm = nil
}

// updateConfirm answers an open confirmation. No request is issued unless
// the admin confirms.
func (s *screen) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	if s.confirm.loading {
		return nil
	}

	switch {
	case key.Matches(msg, keys.yes):
		then := s.onConfirm
		if s.confirm.title != "" {
			s.confirm.loading = true
		} else {
			s.closeConfirm()
		}
		s.busy = true
		if then == nil {
			return nil
		}
		return then()
	case key.Matches(msg, keys.no):
		s.closeConfirm()
	}
	return nil
}

// loaded applies the outcome of list load seq and reports whether its items
// may replace the current ones. Stale answers are dropped.
func (s *screen) loaded(seq int, err error) bool {
	if s.load.stale(seq) {
		return false
	}
	s.loading = false
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.errMsg = errorText(err)
		}
		return false
	}
	return true
}

// moveCursor handles up/down over n rows and reports whether msg was a
// cursor key.
func (s *screen) moveCursor(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, keys.up):
		if s.cursor > 0 {
			s.cursor--
		}
		return true
	case key.Matches(msg, keys.down):
		if s.cursor < n-1 {
			s.cursor++
		}
		return true
	}
	return false
}

func (s *screen) clampCursor(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// act runs call and reports its outcome as an [actionDoneMsg] of this
// screen.
func (s *screen) act(notice string, deleted bool, call func(ctx context.Context) error) tea.Cmd {
	ctx := s.shell.ctx
	page := s.name
	return func() tea.Msg {
		err := call(ctx)
		return actionDoneMsg{page: page, notice: notice, err: err, deleted: deleted && err == nil}
	}
}

// finishAction applies an [actionDoneMsg] and reports whether the list
// must be reloaded.
func (s *screen) finishAction(msg actionDoneMsg) bool {
	s.busy = false
	s.closeConfirm()
	s.report(msg.notice, msg.err)
	if msg.err != nil {
		if s.form != nil {
			s.form.submitting = false
			s.form.errMsg = errorText(msg.err)
		}
		return false
	}
	s.form = nil
	s.editingID = 0
	return true
}

// typeInto feeds msg to a search input and schedules a debounced reload
// when its value changed.
func (s *screen) typeInto(in *textinput.Model, msg tea.Msg) tea.Cmd {
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() == before {
		return cmd
	}

	s.debounce++
	seq, page := s.debounce, s.name
	return tea.Batch(cmd, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{page: page, seq: seq}
	}))
}

// settled reports whether tick is the last debounce tick of this screen.
func (s *screen) settled(tick searchTickMsg) bool {
	return tick.page == s.name && tick.seq == s.debounce
}

func (s *screen) statusView() string {
	var b strings.Builder
	if s.loading {
		b.WriteString("\nLoading...")
	}
	if s.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(s.notice))
	}
	if s.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+s.errMsg))
	}
	return b.String()
}

// withOverlay appends the open confirmation to body.
func (s *screen) withOverlay(body string) string {
	if s.confirm == nil {
		return body
	}
	return body + "\n\n" + s.confirm.View()
}

func newSearchInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 30
	in.Prompt = ""
	return in
}

// cycle returns the option after current, wrapping at the end.
func cycle(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func boolFilter(v string, whenTrue string) *bool {
	if v == "" || v == "all" {
		return nil
	}
	b := v == whenTrue
	return &b
}

// copyCmd writes text to the system clipboard.
func copyCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.WriteAll(text)}
	}
}
