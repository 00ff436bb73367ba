package opengl

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
)

// DescriptorSetLayout is the list of bindings declared for a set.
type DescriptorSetLayout []metadata.DescriptorSetLayoutBinding

// Find returns the declaration of binding.
func (l DescriptorSetLayout) Find(binding metadata.DescriptorBinding) (metadata.DescriptorSetLayoutBinding, bool) {
	for _, b := range l {
		if b.Binding == binding {
			return b, true
		}
	}
	return metadata.DescriptorSetLayoutBinding{}, false
}

// DescSetBindingType tells which resource a DescSetBinding holds.
type DescSetBindingType uint8

const (
	DescBuffer DescSetBindingType = iota
	DescTexture
	DescSampler
)

func (t DescSetBindingType) String() string {
	switch t {
	case DescBuffer:
		return "buffer"
	case DescTexture:
		return "texture"
	case DescSampler:
		return "sampler"
	}
	return "unknown"
}

/**
 * @brief A resource written into a descriptor set. Only the fields of
 * the variant named by Type are meaningful.
 */
type DescSetBinding struct {
	Type    DescSetBindingType
	Binding metadata.DescriptorBinding
	/** @brief Array element inside the binding. */
	Element metadata.DescriptorArrayIndex

	/** @brief Binding kind of a buffer, textures and samplers are always images. */
	Kind   BindingKind
	Buffer RawBuffer
	Offset int64
	Size   int64

	Texture Texture
	Sampler FatSampler
}

func BufferBinding(kind BindingKind, binding metadata.DescriptorBinding, element metadata.DescriptorArrayIndex, buffer RawBuffer, offset, size int64) DescSetBinding {
	return DescSetBinding{Type: DescBuffer, Kind: kind, Binding: binding, Element: element, Buffer: buffer, Offset: offset, Size: size}
}

func TextureBinding(binding metadata.DescriptorBinding, element metadata.DescriptorArrayIndex, texture Texture) DescSetBinding {
	return DescSetBinding{Type: DescTexture, Kind: BindingImages, Binding: binding, Element: element, Texture: texture}
}

func SamplerBinding(binding metadata.DescriptorBinding, element metadata.DescriptorArrayIndex, sampler FatSampler) DescSetBinding {
	return DescSetBinding{Type: DescSampler, Kind: BindingImages, Binding: binding, Element: element, Sampler: sampler}
}

func (b DescSetBinding) sameSlot(o DescSetBinding) bool {
	return b.Type == o.Type && b.Binding == o.Binding && b.Element == o.Element
}

// DescriptorSet is pure client side bookkeeping: GL has no descriptor set
// object. The binding list may be updated from one goroutine while command
// recording reads it from another, so every access takes the set's lock.
type DescriptorSet struct {
	ID uuid.UUID

	layout DescriptorSetLayout

	mu       sync.Mutex
	bindings []DescSetBinding
}

func newDescriptorSet(layout DescriptorSetLayout) *DescriptorSet {
	return &DescriptorSet{
		ID:     uuid.New(),
		layout: slices.Clone(layout),
	}
}

// Layout returns a copy of the bindings the set was allocated with.
func (ds *DescriptorSet) Layout() DescriptorSetLayout {
	return slices.Clone(ds.layout)
}

func (ds *DescriptorSet) validate(w DescSetBinding) error {
	if len(ds.layout) == 0 {
		return nil
	}
	decl, ok := ds.layout.Find(w.Binding)
	if !ok {
		return fmt.Errorf("descriptor set %s: binding %d not in layout", ds.ID, w.Binding)
	}
	if uint32(w.Element) >= decl.Count {
		return fmt.Errorf("descriptor set %s: binding %d element %d out of range (count %d)", ds.ID, w.Binding, w.Element, decl.Count)
	}
	if kind, ok := BindingKindOf(decl.Type); ok && kind != w.Kind {
		return fmt.Errorf("descriptor set %s: binding %d is %s, got %s write", ds.ID, w.Binding, decl.Type, w.Kind)
	}
	return nil
}

// Write updates the set. A write replaces an earlier one for the same
// binding, element and resource type. Writes are applied all or nothing.
func (ds *DescriptorSet) Write(writes ...DescSetBinding) error {
	for _, w := range writes {
		if err := ds.validate(w); err != nil {
			core.LogError(err.Error())
			return err
		}
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, w := range writes {
		i := slices.IndexFunc(ds.bindings, w.sameSlot)
		if i >= 0 {
			ds.bindings[i] = w
			continue
		}
		ds.bindings = append(ds.bindings, w)
	}
	return nil
}

// CopyFrom appends the bindings of src to ds, as a descriptor copy does.
func (ds *DescriptorSet) CopyFrom(src *DescriptorSet) error {
	if src == ds {
		return nil
	}
	return ds.Write(src.Bindings()...)
}

// Bindings returns a snapshot of the set's bindings in write order.
func (ds *DescriptorSet) Bindings() []DescSetBinding {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return slices.Clone(ds.bindings)
}

// Clear removes every binding.
func (ds *DescriptorSet) Clear() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.bindings = nil
}

// DescriptorPool hands out descriptor sets. Allocation always succeeds and
// freeing does nothing, there is no server side object to manage.
type DescriptorPool struct{}

func NewDescriptorPool() *DescriptorPool {
	return &DescriptorPool{}
}

// AllocateSet returns a fresh set with no bindings. The error is always nil.
func (p *DescriptorPool) AllocateSet(layout DescriptorSetLayout) (*DescriptorSet, error) {
	ds := newDescriptorSet(layout)
	core.LogDebug("allocated descriptor set %s with %d bindings", ds.ID, len(layout))
	return ds, nil
}

// AllocateSets allocates one set per layout.
func (p *DescriptorPool) AllocateSets(layouts []DescriptorSetLayout) ([]*DescriptorSet, error) {
	sets := make([]*DescriptorSet, 0, len(layouts))
	for _, l := range layouts {
		ds, err := p.AllocateSet(l)
		if err != nil {
			return nil, err
		}
		sets = append(sets, ds)
	}
	return sets, nil
}

// FreeSets does nothing: OpenGL has no meaningful concept of a descriptor set.
func (p *DescriptorPool) FreeSets(sets ...*DescriptorSet) {}

// Reset does nothing, for the same reason as FreeSets.
func (p *DescriptorPool) Reset() {}
