package opengl

import (
	"sync"
	"testing"

	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotList = []metadata.DescriptorBinding

func TestAssignOverflowSlotGrowsInOrder(t *testing.T) {
	r := NewDescriptorRemapper()

	assert.Equal(t, slotList{0}, r.AssignOverflowSlot(BindingImages, 0, 1))
	assert.Equal(t, slotList{0, 1}, r.AssignOverflowSlot(BindingImages, 0, 1))
	assert.Equal(t, slotList{2}, r.AssignOverflowSlot(BindingImages, 1, 0))
	assert.Equal(t, slotList{0, 1, 3}, r.AssignOverflowSlot(BindingImages, 0, 1))

	got, ok := r.Lookup(BindingImages, 0, 1)
	require.True(t, ok)
	assert.Equal(t, slotList{0, 1, 3}, got)
	assert.EqualValues(t, 4, r.SlotCount(BindingImages))
}

func TestAssignOverflowSlotNeverDuplicates(t *testing.T) {
	r := NewDescriptorRemapper()
	seen := make(map[metadata.DescriptorBinding]bool)
	for i := 0; i < 64; i++ {
		set := metadata.DescriptorSetIndex(i % 3)
		binding := metadata.DescriptorBinding(i % 5)
		got := r.AssignOverflowSlot(BindingUniformBuffers, set, binding)
		last := got[len(got)-1]
		assert.False(t, seen[last], "slot %d handed out twice", last)
		seen[last] = true
	}
}

func TestReserveThenAssignExplicit(t *testing.T) {
	r := NewDescriptorRemapper()

	first := r.AssignOverflowSlot(BindingImages, 0, 0)
	reserved := r.ReserveSlot(BindingImages)
	assert.EqualValues(t, 1, reserved)

	// Reserving records nothing.
	_, ok := r.Lookup(BindingImages, 0, 2)
	assert.False(t, ok)

	got := r.AssignExplicitSlot(reserved, BindingImages, 0, 0)
	assert.Equal(t, append(first, reserved), got)

	// The counter was consumed by ReserveSlot, not by AssignExplicitSlot.
	assert.EqualValues(t, 2, r.SlotCount(BindingImages))
	assert.Equal(t, slotList{2}, r.AssignOverflowSlot(BindingImages, 0, 3))
}

func TestAssignExplicitSlotCoalescesDuplicates(t *testing.T) {
	r := NewDescriptorRemapper()
	slot := r.ReserveSlot(BindingUniformBuffers)
	assert.Equal(t, slotList{slot}, r.AssignExplicitSlot(slot, BindingUniformBuffers, 2, 7))
	assert.Equal(t, slotList{slot}, r.AssignExplicitSlot(slot, BindingUniformBuffers, 2, 7))
}

func TestLookupUnregistered(t *testing.T) {
	r := NewDescriptorRemapper()
	r.AssignOverflowSlot(BindingImages, 0, 0)

	for _, kind := range []BindingKind{BindingImages, BindingUniformBuffers} {
		for set := metadata.DescriptorSetIndex(0); set < 3; set++ {
			for binding := metadata.DescriptorBinding(0); binding < 3; binding++ {
				if kind == BindingImages && set == 0 && binding == 0 {
					continue
				}
				got, ok := r.Lookup(kind, set, binding)
				assert.False(t, ok, "%s set %d binding %d", kind, set, binding)
				assert.Nil(t, got)
			}
		}
	}
}

func TestKindsHaveDisjointCounters(t *testing.T) {
	r := NewDescriptorRemapper()
	for i := 0; i < 5; i++ {
		r.AssignOverflowSlot(BindingImages, 0, metadata.DescriptorBinding(i))
	}
	for i := 0; i < 3; i++ {
		r.AssignOverflowSlot(BindingUniformBuffers, 0, metadata.DescriptorBinding(i))
	}
	assert.EqualValues(t, 5, r.SlotCount(BindingImages))
	assert.EqualValues(t, 3, r.SlotCount(BindingUniformBuffers))

	// Same (set, binding) under two kinds are two abstract bindings.
	img, ok := r.Lookup(BindingImages, 0, 1)
	require.True(t, ok)
	ubo, ok := r.Lookup(BindingUniformBuffers, 0, 1)
	require.True(t, ok)
	assert.Equal(t, slotList{1}, img)
	assert.Equal(t, slotList{1}, ubo)
}

func TestLookupReturnsCopy(t *testing.T) {
	r := NewDescriptorRemapper()
	r.AssignOverflowSlot(BindingImages, 0, 0)
	got, _ := r.Lookup(BindingImages, 0, 0)
	got[0] = 99

	again, _ := r.Lookup(BindingImages, 0, 0)
	assert.Equal(t, slotList{0}, again)
}

func TestNames(t *testing.T) {
	r := NewDescriptorRemapper()
	r.AssignOverflowSlot(BindingUniformBuffers, 1, 0)
	r.RegisterName("Globals", BindingUniformBuffers, 1, 0)
	r.RegisterName("u_shadow", BindingImages, 0, 4)

	key, ok := r.ResolveName("Globals")
	require.True(t, ok)
	assert.Equal(t, BindingKey{BindingUniformBuffers, 1, 0}, key)

	got, ok := r.LookupName("Globals")
	require.True(t, ok)
	assert.Equal(t, slotList{0}, got)

	// Named but without slots.
	_, ok = r.LookupName("u_shadow")
	assert.False(t, ok)

	_, ok = r.LookupName("missing")
	assert.False(t, ok)
}

func TestKeysSorted(t *testing.T) {
	r := NewDescriptorRemapper()
	r.AssignOverflowSlot(BindingUniformBuffers, 0, 0)
	r.AssignOverflowSlot(BindingImages, 1, 2)
	r.AssignOverflowSlot(BindingImages, 0, 5)
	r.AssignOverflowSlot(BindingImages, 1, 0)

	assert.Equal(t, []BindingKey{
		{BindingImages, 0, 5},
		{BindingImages, 1, 0},
		{BindingImages, 1, 2},
		{BindingUniformBuffers, 0, 0},
	}, r.Keys())
}

func TestInvalidKindPanics(t *testing.T) {
	r := NewDescriptorRemapper()
	assert.Panics(t, func() { r.ReserveSlot(bindingKindCount) })
	assert.Panics(t, func() { r.AssignOverflowSlot(BindingKind(9), 0, 0) })

	_, ok := r.Lookup(BindingKind(9), 0, 0)
	assert.False(t, ok)
}

func TestBindingKindOf(t *testing.T) {
	tests := []struct {
		ty   metadata.DescriptorType
		kind BindingKind
		ok   bool
	}{
		{metadata.DescriptorTypeSampler, BindingImages, true},
		{metadata.DescriptorTypeCombinedImageSampler, BindingImages, true},
		{metadata.DescriptorTypeSampledImage, BindingImages, true},
		{metadata.DescriptorTypeStorageImage, BindingImages, true},
		{metadata.DescriptorTypeUniformBuffer, BindingUniformBuffers, true},
		{metadata.DescriptorTypeUniformBufferDynamic, BindingUniformBuffers, true},
		{metadata.DescriptorTypeStorageBuffer, 0, false},
		{metadata.DescriptorTypeInputAttachment, 0, false},
	}
	for _, tt := range tests {
		kind, ok := BindingKindOf(tt.ty)
		assert.Equal(t, tt.ok, ok, tt.ty.String())
		if ok {
			assert.Equal(t, tt.kind, kind, tt.ty.String())
		}
	}
}

func TestConcurrentLookups(t *testing.T) {
	r := NewDescriptorRemapper()
	for b := metadata.DescriptorBinding(0); b < 8; b++ {
		r.AssignOverflowSlot(BindingImages, 0, b)
		r.AssignOverflowSlot(BindingUniformBuffers, 0, b)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				b := metadata.DescriptorBinding(i % 8)
				got, ok := r.Lookup(BindingImages, 0, b)
				if assert.True(t, ok) {
					assert.Equal(t, slotList{b}, got)
				}
			}
		}()
	}
	// A writer registering new bindings while readers run.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			r.AssignOverflowSlot(BindingImages, 1, metadata.DescriptorBinding(i))
		}
	}()
	wg.Wait()
	assert.EqualValues(t, 108, r.SlotCount(BindingImages))
}

func TestAssignExplicitSlotUnreserved(t *testing.T) {
	r := NewDescriptorRemapper()
	r.ReserveSlot(BindingImages)

	assert.Equal(t, slotList{5}, r.AssignExplicitSlot(5, BindingImages, 0, 0))
	assert.EqualValues(t, 6, r.SlotCount(BindingImages))
	assert.EqualValues(t, 6, r.ReserveSlot(BindingImages))
	assert.Equal(t, slotList{7}, r.AssignOverflowSlot(BindingImages, 0, 1))

	// A slot below the counter doesn't move it back.
	r.AssignExplicitSlot(0, BindingImages, 0, 2)
	assert.EqualValues(t, 8, r.SlotCount(BindingImages))
}
