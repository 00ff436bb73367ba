package opengl

import (
	"fmt"
	"sync/atomic"

	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
)

// Memory is a single allocation. GL has no separate memory objects, storage
// belongs to buffers, so the allocation remembers the first buffer bound to
// it and every later use is checked against that buffer's target.
type Memory struct {
	/** @brief The properties the allocation was created with. */
	Properties metadata.MemoryProperties
	/** @brief Index into the device memory types. */
	TypeIndex uint32
	/** @brief Allocation size. */
	Size uint64

	firstBound atomic.Pointer[Buffer]
}

func NewMemory(properties metadata.MemoryProperties, typeIndex uint32, size uint64) *Memory {
	return &Memory{Properties: properties, TypeIndex: typeIndex, Size: size}
}

// CanUpload reports whether the host can write to the allocation.
func (m *Memory) CanUpload() bool {
	return m.Properties.Contains(metadata.MemoryCPUVisible)
}

// CanDownload reports whether the host can read the allocation back without
// an explicit flush.
func (m *Memory) CanDownload() bool {
	return m.Properties.Contains(metadata.MemoryCPUVisible | metadata.MemoryCPUCached)
}

// MapFlags returns the access bits for glMapBufferRange. The mask is empty
// when the memory is not host visible.
func (m *Memory) MapFlags() Enum {
	var flags Enum
	if m.CanDownload() {
		flags |= MAP_READ_BIT
	}
	if m.CanUpload() {
		flags |= MAP_WRITE_BIT
	}
	return flags
}

// MapAccess is MapFlags with the empty mask turned into an error.
func (m *Memory) MapAccess() (Enum, error) {
	flags := m.MapFlags()
	if flags == 0 {
		return 0, fmt.Errorf("memory type %d (%#x): %w", m.TypeIndex, uint32(m.Properties), core.ErrMappingNotSupported)
	}
	return flags, nil
}

// MappedRange returns the range to map or flush for [offset, offset+size).
// Non-coherent memory is widened to multiples of atom. The range must lie
// inside the allocation.
func (m *Memory) MappedRange(offset, size, atom uint64) metadata.MemoryRange {
	if m.Properties.Contains(metadata.MemoryCoherent) || atom <= 1 {
		return metadata.MemoryRange{Offset: offset, Size: size}
	}
	start := metadata.GetAlignedDown(min(offset, m.Size), atom)
	end := min(metadata.GetAligned(offset+size, atom), m.Size)
	if end < start {
		end = start
	}
	return metadata.MemoryRange{Offset: start, Size: end - start}
}

// BindBuffer records buf as the buffer owning this allocation. Only the first
// call records anything; later buffers must use the same target.
func (m *Memory) BindBuffer(buf *Buffer) error {
	if buf == nil {
		return fmt.Errorf("bind buffer: nil buffer")
	}
	if buf.Size > m.Size {
		return fmt.Errorf("bind buffer %d: size %d exceeds allocation size %d: %w", buf.Raw, buf.Size, m.Size, core.ErrOutOfDeviceMemory)
	}
	b := *buf
	if m.firstBound.CompareAndSwap(nil, &b) {
		return nil
	}
	return m.ValidateTarget(buf.Target)
}

// ValidateTarget checks target against the first bound buffer. Unbound
// memory accepts any target.
func (m *Memory) ValidateTarget(target Enum) error {
	first := m.firstBound.Load()
	if first == nil || first.Target == target {
		return nil
	}
	err := fmt.Errorf("target %#x, bound to buffer %d with target %#x: %w", uint32(target), first.Raw, uint32(first.Target), core.ErrMemoryTargetMismatch)
	core.LogError(err.Error())
	return err
}

// FirstBoundBuffer returns the buffer that claimed the allocation, if any.
func (m *Memory) FirstBoundBuffer() (Buffer, bool) {
	first := m.firstBound.Load()
	if first == nil {
		return Buffer{}, false
	}
	return *first, true
}

/**
 * @brief A memory type exposed by the device.
 */
type MemoryType struct {
	Properties metadata.MemoryProperties
	HeapIndex  uint32
}

// MemoryTypes returns the memory types exposed for caps. Host caching is only
// offered when buffers can be mapped for reading.
func MemoryTypes(caps Capabilities) []MemoryType {
	types := []MemoryType{
		{Properties: metadata.MemoryDeviceLocal, HeapIndex: 0},
		{Properties: metadata.MemoryCPUVisible | metadata.MemoryCoherent, HeapIndex: 1},
	}
	if caps.MapBufferRange() {
		types = append(types, MemoryType{
			Properties: metadata.MemoryCPUVisible | metadata.MemoryCoherent | metadata.MemoryCPUCached,
			HeapIndex:  1,
		})
	}
	return types
}
