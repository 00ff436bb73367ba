package opengl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFenceSwap(t *testing.T) {
	f := NewFence(0)
	assert.True(t, f.IsNull())

	assert.Equal(t, Sync(0), f.Swap(7))
	assert.False(t, f.IsNull())
	assert.Equal(t, Sync(7), f.Handle())
	assert.Equal(t, Sync(7), f.Swap(0))
	assert.True(t, f.IsNull())
}

func TestFenceSwapConcurrent(t *testing.T) {
	f := NewFence(0)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[Sync]int)
	)
	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(s Sync) {
			defer wg.Done()
			old := f.Swap(s)
			mu.Lock()
			seen[old]++
			mu.Unlock()
		}(Sync(i))
	}
	wg.Wait()
	seen[f.Swap(0)]++

	// Every handle is returned exactly once, so none leaks.
	assert.Len(t, seen, 17)
	for s, n := range seen {
		assert.Equal(t, 1, n, "sync %d", s)
	}
}

func TestShaderModule(t *testing.T) {
	raw := RawShaderModule(12)
	s, ok := raw.Raw()
	assert.True(t, ok)
	assert.Equal(t, Shader(12), s)
	_, ok = raw.Spirv()
	assert.False(t, ok)

	code := []byte{0x03, 0x02, 0x23, 0x07}
	spv := SpirvShaderModule(code)
	code[0] = 0
	got, ok := spv.Spirv()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x03, 0x02, 0x23, 0x07}, got)
	_, ok = spv.Raw()
	assert.False(t, ok)
}
