package syncmap

import (
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	m := NewRegistry[int]()
	m.Set("a", 1)
	m.Set("b", 2)

	v, ok := m.Lookup("a")
	assert.True(t, ok)
	assert.EqualValues(t, 1, v)

	_, ok = m.Lookup("missing")
	assert.False(t, ok)

	keys := m.Keys()
	sort.Strings(keys)
	assert.EqualValues(t, []string{"a", "b"}, keys)

	m.Set("a", 3)
	v, _ = m.Lookup("a")
	assert.EqualValues(t, 3, v)
}

func TestMap_Concurrent(t *testing.T) {
	m := NewRegistry[string]()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := strconv.Itoa(i)
			m.Set(key, key)
			_, _ = m.Lookup(key)
		}(i)
	}
	wg.Wait()
	assert.Len(t, m.Keys(), 32)
}
