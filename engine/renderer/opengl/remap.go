package opengl

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
)

// BindingKind is the category of a GL binding point. Each kind has its own
// flat namespace: texture image units and uniform buffer binding points.
type BindingKind uint8

const (
	BindingImages BindingKind = iota
	BindingUniformBuffers

	bindingKindCount
)

func (k BindingKind) String() string {
	switch k {
	case BindingImages:
		return "images"
	case BindingUniformBuffers:
		return "uniform_buffers"
	}
	return fmt.Sprintf("BindingKind(%d)", uint8(k))
}

// Valid reports whether k is one of the known binding kinds.
func (k BindingKind) Valid() bool { return k < bindingKindCount }

// BindingKindOf returns the binding kind a descriptor type is flattened into.
// Descriptor types the backend does not track report false.
func BindingKindOf(ty metadata.DescriptorType) (BindingKind, bool) {
	switch ty {
	case metadata.DescriptorTypeSampler,
		metadata.DescriptorTypeCombinedImageSampler,
		metadata.DescriptorTypeSampledImage,
		metadata.DescriptorTypeStorageImage:
		return BindingImages, true
	case metadata.DescriptorTypeUniformBuffer,
		metadata.DescriptorTypeUniformBufferDynamic:
		return BindingUniformBuffers, true
	}
	return 0, false
}

// BindingKey identifies an abstract binding.
type BindingKey struct {
	Kind    BindingKind
	Set     metadata.DescriptorSetIndex
	Binding metadata.DescriptorBinding
}

func (k BindingKey) String() string {
	return fmt.Sprintf("%s(set=%d, binding=%d)", k.Kind, k.Set, k.Binding)
}

func compareKeys(a, b BindingKey) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Set, b.Set); c != 0 {
		return c
	}
	return cmp.Compare(a.Binding, b.Binding)
}

// DescriptorRemapper stores where descriptor bindings have been remapped to.
//
// OpenGL doesn't support sets, so every (kind, set, binding) is flattened
// into one or more slots of the kind's single namespace. Slots handed out
// for a kind are never reused: the per-kind counter only increases.
//
// The remapper is shared between a pipeline layout and everything that
// resolves bindings against it. Lookups take a read lock, registrations
// take the write lock.
type DescriptorRemapper struct {
	mu       sync.RWMutex
	bindings map[BindingKey][]metadata.DescriptorBinding
	names    map[string]BindingKey
	next     [bindingKindCount]metadata.DescriptorBinding
}

func NewDescriptorRemapper() *DescriptorRemapper {
	return &DescriptorRemapper{
		bindings: make(map[BindingKey][]metadata.DescriptorBinding),
		names:    make(map[string]BindingKey),
	}
}

func mustValid(kind BindingKind) {
	if !kind.Valid() {
		panic(fmt.Errorf("%w: %d", core.ErrUnknownBindingKind, uint8(kind)))
	}
}

// ReserveSlot hands out the next free slot of kind without recording a mapping.
func (r *DescriptorRemapper) ReserveSlot(kind BindingKind) metadata.DescriptorBinding {
	mustValid(kind)
	r.mu.Lock()
	defer r.mu.Unlock()
	slot := r.next[kind]
	r.next[kind]++
	return slot
}

// AssignOverflowSlot allocates the next free slot of kind, appends it to the
// slots of (kind, set, binding) and returns all of them.
func (r *DescriptorRemapper) AssignOverflowSlot(kind BindingKind, set metadata.DescriptorSetIndex, binding metadata.DescriptorBinding) []metadata.DescriptorBinding {
	mustValid(kind)
	r.mu.Lock()
	defer r.mu.Unlock()
	key := BindingKey{kind, set, binding}
	slot := r.next[kind]
	r.next[kind]++
	r.bindings[key] = append(r.bindings[key], slot)
	return slices.Clone(r.bindings[key])
}

// AssignExplicitSlot appends slot, previously obtained from ReserveSlot, to
// the slots of (kind, set, binding) and returns all of them.
// Registering a slot the key already maps to is a no-op. A slot that was
// never reserved moves the counter past it, so it is not handed out again.
func (r *DescriptorRemapper) AssignExplicitSlot(slot metadata.DescriptorBinding, kind BindingKind, set metadata.DescriptorSetIndex, binding metadata.DescriptorBinding) []metadata.DescriptorBinding {
	mustValid(kind)
	r.mu.Lock()
	defer r.mu.Unlock()
	key := BindingKey{kind, set, binding}
	if slot >= r.next[kind] {
		core.LogWarn("slot %d of %s was not reserved (next is %d)", slot, kind, r.next[kind])
		r.next[kind] = slot + 1
	}
	if slices.Contains(r.bindings[key], slot) {
		core.LogWarn("slot %d already registered for %s", slot, key)
		return slices.Clone(r.bindings[key])
	}
	r.bindings[key] = append(r.bindings[key], slot)
	return slices.Clone(r.bindings[key])
}

// Lookup returns the slots of an abstract binding in registration order.
// It reports false if the binding was never registered, which means the
// binding is not used by the pipeline.
func (r *DescriptorRemapper) Lookup(kind BindingKind, set metadata.DescriptorSetIndex, binding metadata.DescriptorBinding) ([]metadata.DescriptorBinding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slots, ok := r.bindings[BindingKey{kind, set, binding}]
	if !ok {
		return nil, false
	}
	return slices.Clone(slots), true
}

// RegisterName associates a shader-visible identifier with an abstract
// binding. It is used when the translated shader lost its explicit binding
// decorations and slots have to be assigned by name.
func (r *DescriptorRemapper) RegisterName(name string, kind BindingKind, set metadata.DescriptorSetIndex, binding metadata.DescriptorBinding) {
	mustValid(kind)
	r.mu.Lock()
	defer r.mu.Unlock()
	key := BindingKey{kind, set, binding}
	if prev, ok := r.names[name]; ok && prev != key {
		core.LogWarn("name %q moved from %s to %s", name, prev, key)
	}
	r.names[name] = key
}

// ResolveName returns the abstract binding registered for name.
func (r *DescriptorRemapper) ResolveName(name string) (BindingKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.names[name]
	return key, ok
}

// LookupName resolves name to its abstract binding and returns its slots.
func (r *DescriptorRemapper) LookupName(name string) ([]metadata.DescriptorBinding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.names[name]
	if !ok {
		return nil, false
	}
	slots, ok := r.bindings[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(slots), true
}

// SlotCount returns the number of slots handed out for kind so far.
func (r *DescriptorRemapper) SlotCount(kind BindingKind) uint32 {
	mustValid(kind)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint32(r.next[kind])
}

// Keys returns every registered abstract binding, sorted.
func (r *DescriptorRemapper) Keys() []BindingKey {
	r.mu.RLock()
	keys := make([]BindingKey, 0, len(r.bindings))
	for k := range r.bindings {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	slices.SortFunc(keys, compareKeys)
	return keys
}
