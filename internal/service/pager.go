package service

import "fmt"

// Pager tracks the page index of a paginated admin list. The zero value is
// on page 0 with one known page.
type Pager struct {
	Page       int
	TotalPages int
}

func (p Pager) HasPrev() bool { return p.Page > 0 }
func (p Pager) HasNext() bool { return p.Page+1 < p.TotalPages }

// Prev moves one page back and reports whether the page changed.
func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.Page--
	return true
}

// Next moves one page forward and reports whether the page changed.
func (p *Pager) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.Page++
	return true
}

// Reset returns to the first page. Changing a search term or a filter
// resets the pager.
func (p *Pager) Reset() {
	p.Page = 0
}

// SetTotal records the page count of the last load; zero counts as one.
func (p *Pager) SetTotal(totalPages int) {
	p.TotalPages = max(totalPages, 1)
}

// AfterDelete steps back one page when the deleted row was the only row on
// a page beyond the first, and reports whether it did.
func (p *Pager) AfterDelete(rowsOnPage int) bool {
	if rowsOnPage == 1 && p.Page > 0 {
		p.Page--
		return true
	}
	return false
}

// Label renders "Page X of N" with N at least 1.
func (p Pager) Label() string {
	return fmt.Sprintf("Page %d of %d", p.Page+1, max(p.TotalPages, 1))
}
