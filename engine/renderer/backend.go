package renderer

// DescriptorPool allocates descriptor sets of type S for layouts of type L.
// Backends that have no server side descriptor sets still return an error
// so callers can treat every backend the same way.
type DescriptorPool[L, S any] interface {
	AllocateSet(layout L) (S, error)
	AllocateSets(layouts []L) ([]S, error)
	FreeSets(sets ...S)
	Reset()
}

// MappableMemory is a memory allocation the host may be able to map.
type MappableMemory interface {
	CanUpload() bool
	CanDownload() bool
}
