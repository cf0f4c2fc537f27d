package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModalState(t *testing.T) {
	t.Run("close after open navigates back", func(t *testing.T) {
		var m ModalState
		m.Open(4)

		id, open := m.Active()
		assert.True(t, open)
		assert.Equal(t, int64(4), id)

		assert.True(t, m.Close())
		_, open = m.Active()
		assert.True(t, open, "state stays until the back navigation lands")

		m.Popped()
		_, open = m.Active()
		assert.False(t, open)
	})

	t.Run("restored modal closes directly", func(t *testing.T) {
		var m ModalState
		m.Restore(9)

		assert.False(t, m.Pushed())
		assert.False(t, m.Close())
		_, open := m.Active()
		assert.False(t, open)
	})

	t.Run("external back resets", func(t *testing.T) {
		var m ModalState
		m.Open(1)
		m.Popped()

		assert.False(t, m.Pushed())
		_, open := m.Active()
		assert.False(t, open)
	})
}
