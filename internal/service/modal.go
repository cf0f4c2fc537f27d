package service

// ModalState is the visibility machine of the video modal. Two close paths
// converge on the same reset: a programmatic Close, and Popped for an
// external back navigation.
type ModalState struct {
	active int64
	open   bool
	pushed bool
}

// Open shows video id and records that a history entry was pushed for it,
// so a later Close navigates back instead of resetting directly.
func (m *ModalState) Open(id int64) {
	m.active, m.open, m.pushed = id, true, true
}

// Restore shows video id without a pushed history entry, as when the page
// is loaded directly with the modal open.
func (m *ModalState) Restore(id int64) {
	m.active, m.open, m.pushed = id, true, false
}

// Close reports whether the caller must navigate back. When it must, the
// state is reset by the resulting Popped; otherwise it is reset now.
func (m *ModalState) Close() (navigateBack bool) {
	if m.pushed {
		m.pushed = false
		return true
	}
	m.reset()
	return false
}

// Popped resets the state after any back navigation.
func (m *ModalState) Popped() {
	m.reset()
}

// Active returns the open video id.
func (m ModalState) Active() (int64, bool) {
	return m.active, m.open
}

// Pushed reports whether closing goes through a back navigation.
func (m ModalState) Pushed() bool {
	return m.pushed
}

func (m *ModalState) reset() {
	m.active, m.open, m.pushed = 0, false, false
}
