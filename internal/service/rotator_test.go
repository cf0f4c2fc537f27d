package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotator(t *testing.T) {
	r := NewRotator()
	assert.Equal(t, 0, r.Advance())

	r.SetLen(1)
	assert.Equal(t, 0, r.Advance())

	r.SetLen(3)
	assert.Equal(t, 1, r.Advance())
	assert.Equal(t, 2, r.Advance())
	assert.Equal(t, 0, r.Advance())

	r.Advance()
	r.Advance()
	r.SetLen(2)
	assert.Equal(t, 0, r.Index(), "index past the new length restarts")
}

func TestRotator_Concurrent(t *testing.T) {
	r := NewRotator()
	r.SetLen(5)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() { defer wg.Done(); r.Advance() }()
		go func() { defer wg.Done(); _ = r.Index() }()
	}
	wg.Wait()

	assert.Equal(t, 0, r.Index())
}
