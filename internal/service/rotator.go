package service

import "sync"

// Rotator is the shared index of the displayed testimonial. It is advanced
// by a background worker and read by request handlers.
type Rotator struct {
	mu  sync.RWMutex
	n   int
	idx int
}

func NewRotator() *Rotator {
	return &Rotator{}
}

// SetLen records how many testimonials exist. The index restarts at 0 when
// it falls outside the new length.
func (r *Rotator) SetLen(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.n = max(n, 0)
	if r.idx >= r.n {
		r.idx = 0
	}
}

// Advance moves to the next testimonial, wrapping at the end. With zero or
// one testimonial nothing rotates.
func (r *Rotator) Advance() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.n > 1 {
		r.idx = (r.idx + 1) % r.n
	}
	return r.idx
}

func (r *Rotator) Index() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.idx
}
