package metadata

/** @brief Properties of a memory heap/type. */
type MemoryProperties uint32

const (
	/** @brief Device local memory, fastest for the device to access. */
	MemoryDeviceLocal MemoryProperties = 0x1
	/** @brief Memory the host can map for writing. */
	MemoryCPUVisible MemoryProperties = 0x2
	/** @brief Host writes are visible without an explicit flush. */
	MemoryCoherent MemoryProperties = 0x4
	/** @brief Host reads are cached, so readback needs no extra round trip. */
	MemoryCPUCached MemoryProperties = 0x8
	/** @brief Memory that may be allocated lazily by the device. */
	MemoryLazilyAllocated MemoryProperties = 0x10
)

// Contains reports whether all the properties in mask are set.
func (p MemoryProperties) Contains(mask MemoryProperties) bool { return hasAll(p, mask) }

/** @brief A memory range, in bytes. */
type MemoryRange struct {
	Offset uint64
	Size   uint64
}

// GetAligned rounds operand up to a multiple of granularity, which must be a power of two.
func GetAligned(operand, granularity uint64) uint64 {
	val := (operand + (granularity - 1)) &^ (granularity - 1)
	return val
}

// GetAlignedDown rounds operand down to a multiple of granularity, which must be a power of two.
func GetAlignedDown(operand, granularity uint64) uint64 {
	return operand &^ (granularity - 1)
}
