package opengl

import (
	"fmt"

	"github.com/spaghettifunk/anima-gl/engine/config"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
)

// NativeObjects creates and deletes the GL objects the device owns. It is
// implemented on top of the loaded GL functions and must be called with the
// device's context current.
type NativeObjects interface {
	GenSampler(info metadata.SamplerInfo) (Sampler, error)
	DeleteSampler(s Sampler)
	FenceSync() (Sync, error)
	DeleteSync(s Sync)
}

// Device creates the backend objects. The sampler representation and the
// binding strategy are decided once here, from the context capabilities,
// and stay the same for the device lifetime.
type Device struct {
	caps           Capabilities
	objs           NativeObjects
	samplerObjects bool
	nameBinding    bool
	memoryTypes    []MemoryType
}

func NewDevice(caps Capabilities, objs NativeObjects, cfg config.Backend) (*Device, error) {
	if !caps.UniformBuffers() {
		err := fmt.Errorf("%s: uniform buffers not supported", caps.Version)
		core.LogError(err.Error())
		return nil, err
	}
	d := &Device{
		caps:           caps,
		objs:           objs,
		samplerObjects: caps.SamplerObjects() && !cfg.ForceSamplerEmulation && objs != nil,
		nameBinding:    !caps.ExplicitBindings() || cfg.ForceNameBinding,
		memoryTypes:    MemoryTypes(caps),
	}
	core.LogInfo("device created for %s (sampler objects: %t, name binding: %t)", caps.Version, d.samplerObjects, d.nameBinding)
	return d, nil
}

func (d *Device) Capabilities() Capabilities { return d.caps }

// SamplerObjects reports whether samplers are native objects.
func (d *Device) SamplerObjects() bool { return d.samplerObjects }

// NeedsNameBinding reports whether binding points must be assigned by
// uniform name because translated shaders carry no binding decorations.
func (d *Device) NeedsNameBinding() bool { return d.nameBinding }

func (d *Device) CreateSampler(info metadata.SamplerInfo) (FatSampler, error) {
	if !d.samplerObjects {
		return EmulatedSampler(info), nil
	}
	s, err := d.objs.GenSampler(info)
	if err != nil {
		core.LogError("failed to create sampler: %s", err)
		return FatSampler{}, err
	}
	return NativeSampler(s), nil
}

func (d *Device) DestroySampler(s FatSampler) {
	handle, ok := s.Sampler()
	if !ok {
		return
	}
	if d.objs == nil {
		core.LogWarn("sampler %d not deleted: %s", handle, core.ErrNoContext)
		return
	}
	d.objs.DeleteSampler(handle)
}

// CreateFence creates a fence. A signaled fence gets a sync object right away,
// an unsignaled one gets it when work is submitted.
func (d *Device) CreateFence(signaled bool) (*Fence, error) {
	if !signaled {
		return NewFence(0), nil
	}
	if d.objs == nil || !d.caps.Sync() {
		return nil, fmt.Errorf("create fence: %w", core.ErrNoContext)
	}
	s, err := d.objs.FenceSync()
	if err != nil {
		core.LogError("failed to create fence: %s", err)
		return nil, err
	}
	return NewFence(s), nil
}

// ResetFence drops the fence's sync object.
func (d *Device) ResetFence(f *Fence) {
	old := f.Swap(0)
	if old == 0 {
		return
	}
	if d.objs == nil {
		core.LogWarn("sync object %#x not deleted: %s", uintptr(old), core.ErrNoContext)
		return
	}
	d.objs.DeleteSync(old)
}

func (d *Device) DestroyFence(f *Fence) {
	d.ResetFence(f)
}

func (d *Device) CreateSemaphore() *Semaphore {
	return &Semaphore{}
}

// CreatePipelineLayout creates a layout and assigns binding points to the
// reflected shader resources.
func (d *Device) CreatePipelineLayout(setLayouts []DescriptorSetLayout, resources []ReflectedResource) (*PipelineLayout, error) {
	pl := NewPipelineLayout(setLayouts)
	if _, err := pl.Populate(resources); err != nil {
		return nil, err
	}
	if n := pl.Remap.SlotCount(BindingImages); n > d.caps.Limits.MaxCombinedTextureImageUnits {
		core.LogWarn("layout %s uses %d texture units, limit is %d", pl.ID, n, d.caps.Limits.MaxCombinedTextureImageUnits)
	}
	if n := pl.Remap.SlotCount(BindingUniformBuffers); n > d.caps.Limits.MaxUniformBufferBindings {
		core.LogWarn("layout %s uses %d uniform buffer bindings, limit is %d", pl.ID, n, d.caps.Limits.MaxUniformBufferBindings)
	}
	return pl, nil
}

// CreateDescriptorPool creates a pool. The sizes are accepted for API
// compatibility, GL pools have no capacity.
func (d *Device) CreateDescriptorPool(maxSets int, ranges []metadata.DescriptorRangeDesc) (*DescriptorPool, error) {
	core.LogDebug("descriptor pool: %d sets, %d ranges", maxSets, len(ranges))
	return NewDescriptorPool(), nil
}

func (d *Device) MemoryTypes() []MemoryType {
	return append([]MemoryType(nil), d.memoryTypes...)
}

func (d *Device) AllocateMemory(typeIndex uint32, size uint64) (*Memory, error) {
	if int(typeIndex) >= len(d.memoryTypes) {
		err := fmt.Errorf("memory type %d of %d: %w", typeIndex, len(d.memoryTypes), core.ErrOutOfDeviceMemory)
		core.LogError(err.Error())
		return nil, err
	}
	return NewMemory(d.memoryTypes[typeIndex].Properties, typeIndex, size), nil
}

// BindBufferMemory binds buf to mem at offset.
func (d *Device) BindBufferMemory(mem *Memory, buf *Buffer, offset uint64) error {
	if offset > mem.Size || buf.Size > mem.Size-offset {
		err := fmt.Errorf("buffer %d at offset %d overflows memory of size %d: %w", buf.Raw, offset, mem.Size, core.ErrOutOfDeviceMemory)
		core.LogError(err.Error())
		return err
	}
	return mem.BindBuffer(buf)
}

// MapMemory returns the glMapBufferRange access bits and range for mapping
// [offset, offset+size) of mem.
func (d *Device) MapMemory(mem *Memory, offset, size uint64) (Enum, metadata.MemoryRange, error) {
	if offset > mem.Size || size > mem.Size-offset {
		err := fmt.Errorf("map [%d, +%d) of memory of size %d: %w", offset, size, mem.Size, core.ErrOutOfDeviceMemory)
		core.LogError(err.Error())
		return 0, metadata.MemoryRange{}, err
	}
	flags, err := mem.MapAccess()
	if err != nil {
		return 0, metadata.MemoryRange{}, err
	}
	if !mem.Properties.Contains(metadata.MemoryCoherent) {
		flags |= MAP_FLUSH_EXPLICIT_BIT
	}
	return flags, mem.MappedRange(offset, size, d.caps.Limits.NonCoherentAtomSize), nil
}
