package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("a", 1)
	s.Set("a", 2)
	val, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, val, "set replaces")
	assert.Equal(t, 1, s.Len())
}

func TestStore_Keys(t *testing.T) {
	s := New[string, bool]()
	s.Set("x", true)
	s.Set("y", false)

	assert.ElementsMatch(t, []string{"x", "y"}, s.Keys())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New[int, int]()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(i, i*i)
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Get(i)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
	val, _ := s.Get(7)
	assert.Equal(t, 49, val)
}
