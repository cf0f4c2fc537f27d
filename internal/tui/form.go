package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	formInputWidth = 54
	// formWindow is the number of fields visible at once; long forms scroll
	// with the focus.
	formWindow = 12
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldArea
	fieldToggle
	fieldChoice
)

type formField struct {
	key   string
	label string
	kind  fieldKind

	input   textinput.Model
	area    textarea.Model
	checked bool
	options []string
	choice  int
}

// formModel is a vertical editor built from text inputs, text areas,
// yes/no toggles and option choices. tab, shift+tab and the arrow keys move
// the focus; space flips toggles and cycles choices.
type formModel struct {
	title      string
	fields     []formField
	focus      int
	submitting bool
	errMsg     string
}

func newFormModel(title string) *formModel {
	return &formModel{title: title}
}

func (f *formModel) text(key, label, value string) *formModel {
	in := textinput.New()
	in.Placeholder = strings.ToLower(label)
	in.Width = formInputWidth
	in.SetValue(value)
	f.fields = append(f.fields, formField{key: key, label: label, kind: fieldText, input: in})
	return f
}

func (f *formModel) area(key, label, value string) *formModel {
	ta := textarea.New()
	ta.Placeholder = label
	ta.ShowLineNumbers = false
	ta.SetWidth(formInputWidth)
	ta.SetHeight(4)
	ta.SetValue(value)
	f.fields = append(f.fields, formField{key: key, label: label, kind: fieldArea, area: ta})
	return f
}

func (f *formModel) toggle(key, label string, value bool) *formModel {
	f.fields = append(f.fields, formField{key: key, label: label, kind: fieldToggle, checked: value})
	return f
}

func (f *formModel) choose(key, label string, options []string, value string) *formModel {
	field := formField{key: key, label: label, kind: fieldChoice, options: options}
	for i, o := range options {
		if o == value {
			field.choice = i
		}
	}
	f.fields = append(f.fields, field)
	return f
}

// start focuses the first field.
func (f *formModel) start() *formModel {
	f.focusAt(0)
	return f
}

func (f *formModel) field(key string) *formField {
	for i := range f.fields {
		if f.fields[i].key == key {
			return &f.fields[i]
		}
	}
	return nil
}

// Value returns the text of a text field, the selected option of a choice
// or "" for unknown keys.
func (f *formModel) Value(key string) string {
	field := f.field(key)
	if field == nil {
		return ""
	}
	switch field.kind {
	case fieldText:
		return field.input.Value()
	case fieldArea:
		return field.area.Value()
	case fieldChoice:
		if len(field.options) == 0 {
			return ""
		}
		return field.options[field.choice]
	}
	return ""
}

func (f *formModel) Bool(key string) bool {
	field := f.field(key)
	return field != nil && field.checked
}

func (f *formModel) setBool(key string, v bool) {
	if field := f.field(key); field != nil {
		field.checked = v
	}
}

func (f *formModel) focusAt(i int) {
	if len(f.fields) == 0 {
		return
	}
	cur := &f.fields[f.focus]
	cur.input.Blur()
	cur.area.Blur()

	f.focus = (i + len(f.fields)) % len(f.fields)
	next := &f.fields[f.focus]
	switch next.kind {
	case fieldText:
		next.input.Focus()
	case fieldArea:
		next.area.Focus()
	}
}

// Update routes a key to the focused field. It reports whether the key was
// consumed; ctrl+s and esc are left to the caller.
func (f *formModel) Update(msg tea.Msg) (tea.Cmd, bool) {
	if len(f.fields) == 0 {
		return nil, false
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg), true
	}
	if key.Matches(keyMsg, keys.save, keys.esc) {
		return nil, false
	}

	cur := &f.fields[f.focus]
	switch {
	case key.Matches(keyMsg, keys.tab):
		f.focusAt(f.focus + 1)
		return nil, true
	case key.Matches(keyMsg, keys.backtab):
		f.focusAt(f.focus - 1)
		return nil, true
	case keyMsg.Type == tea.KeyDown && cur.kind != fieldArea:
		f.focusAt(f.focus + 1)
		return nil, true
	case keyMsg.Type == tea.KeyUp && cur.kind != fieldArea:
		f.focusAt(f.focus - 1)
		return nil, true
	case keyMsg.Type == tea.KeyEnter && cur.kind != fieldArea:
		f.focusAt(f.focus + 1)
		return nil, true
	}

	switch cur.kind {
	case fieldToggle:
		if key.Matches(keyMsg, keys.toggle) {
			cur.checked = !cur.checked
		}
		return nil, true
	case fieldChoice:
		if len(cur.options) == 0 {
			return nil, true
		}
		switch keyMsg.Type {
		case tea.KeySpace, tea.KeyRight:
			cur.choice = (cur.choice + 1) % len(cur.options)
		case tea.KeyLeft:
			cur.choice = (cur.choice - 1 + len(cur.options)) % len(cur.options)
		}
		return nil, true
	}

	return f.updateFocused(msg), true
}

func (f *formModel) updateFocused(msg tea.Msg) tea.Cmd {
	cur := &f.fields[f.focus]
	var cmd tea.Cmd
	switch cur.kind {
	case fieldText:
		cur.input, cmd = cur.input.Update(msg)
	case fieldArea:
		cur.area, cmd = cur.area.Update(msg)
	}
	return cmd
}

func (f *formModel) View() string {
	labelWidth := 0
	for _, field := range f.fields {
		labelWidth = max(labelWidth, lipgloss.Width(field.label))
	}

	from, to := f.window()
	var b strings.Builder
	if from > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ↑ %d more", from)))
		b.WriteString("\n")
	}
	for i := from; i < to; i++ {
		field := f.fields[i]
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-*s │ ", marker, labelWidth, field.label))
		switch field.kind {
		case fieldText:
			b.WriteString("[" + field.input.View() + "]")
		case fieldArea:
			b.WriteString("\n" + field.area.View())
		case fieldToggle:
			if field.checked {
				b.WriteString("[x] Yes")
			} else {
				b.WriteString("[ ] No")
			}
		case fieldChoice:
			if len(field.options) > 0 {
				b.WriteString("< " + field.options[field.choice] + " >")
			}
		}
		b.WriteString("\n")
	}
	if to < len(f.fields) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ↓ %d more", len(f.fields)-to)))
		b.WriteString("\n")
	}

	if f.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// window returns the slice of fields around the focus that fits on screen.
func (f *formModel) window() (int, int) {
	if len(f.fields) <= formWindow {
		return 0, len(f.fields)
	}
	from := max(f.focus-formWindow/2, 0)
	to := from + formWindow
	if to > len(f.fields) {
		to = len(f.fields)
		from = to - formWindow
	}
	return from, to
}
