package opengl

import "sync/atomic"

// Fence wraps a GLsync. GL sync objects can be queried from any context
// sharing the object, so the handle is safe to read and swap across
// goroutines.
type Fence struct {
	sync atomic.Uintptr
}

func NewFence(s Sync) *Fence {
	f := &Fence{}
	f.sync.Store(uintptr(s))
	return f
}

// Handle returns the current sync object.
func (f *Fence) Handle() Sync { return Sync(f.sync.Load()) }

// Swap replaces the sync object, e.g. when the fence is resubmitted, and
// returns the previous one so it can be deleted.
func (f *Fence) Swap(s Sync) Sync { return Sync(f.sync.Swap(uintptr(s))) }

// IsNull reports whether the fence has no sync object, i.e. it was never
// submitted or has been reset.
func (f *Fence) IsNull() bool { return f.sync.Load() == 0 }

// Semaphore carries no state: all work runs on a single GL context, so there
// is no inter-queue synchronization to do.
type Semaphore struct{}
