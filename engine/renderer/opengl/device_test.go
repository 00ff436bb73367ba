package opengl

import (
	"errors"
	"sync"
	"testing"

	"github.com/spaghettifunk/anima-gl/engine/config"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	mu       sync.Mutex
	next     uint32
	samplers map[Sampler]metadata.SamplerInfo
	syncs    map[Sync]bool
	fail     error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{
		samplers: make(map[Sampler]metadata.SamplerInfo),
		syncs:    make(map[Sync]bool),
	}
}

func (f *fakeObjects) GenSampler(info metadata.SamplerInfo) (Sampler, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return 0, f.fail
	}
	f.next++
	s := Sampler(f.next)
	f.samplers[s] = info
	return s, nil
}

func (f *fakeObjects) DeleteSampler(s Sampler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.samplers, s)
}

func (f *fakeObjects) FenceSync() (Sync, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return 0, f.fail
	}
	f.next++
	s := Sync(f.next)
	f.syncs[s] = true
	return s, nil
}

func (f *fakeObjects) DeleteSync(s Sync) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.syncs, s)
}

func gl33() Capabilities { return NewCapabilities(Version{Major: 3, Minor: 3}, nil) }

func TestNewDeviceRequiresUniformBuffers(t *testing.T) {
	_, err := NewDevice(NewCapabilities(Version{Major: 2, Minor: 1}, nil), nil, config.Backend{})
	assert.Error(t, err)

	d, err := NewDevice(NewCapabilities(Version{Major: 2, Minor: 1}, []string{"GL_ARB_uniform_buffer_object"}), nil, config.Backend{})
	require.NoError(t, err)
	assert.False(t, d.SamplerObjects())
	assert.True(t, d.NeedsNameBinding())
}

func TestDeviceSamplerMode(t *testing.T) {
	info := metadata.NewSamplerInfo(metadata.FilterLinear, metadata.WrapClamp)

	t.Run("native", func(t *testing.T) {
		objs := newFakeObjects()
		d, err := NewDevice(gl33(), objs, config.Backend{})
		require.NoError(t, err)
		require.True(t, d.SamplerObjects())

		s, err := d.CreateSampler(info)
		require.NoError(t, err)
		handle, ok := s.Sampler()
		require.True(t, ok)
		assert.Equal(t, info, objs.samplers[handle])
		_, ok = s.Info()
		assert.False(t, ok)

		d.DestroySampler(s)
		assert.Empty(t, objs.samplers)
	})

	t.Run("forced emulation", func(t *testing.T) {
		objs := newFakeObjects()
		d, err := NewDevice(gl33(), objs, config.Backend{ForceSamplerEmulation: true})
		require.NoError(t, err)
		require.False(t, d.SamplerObjects())

		s, err := d.CreateSampler(info)
		require.NoError(t, err)
		got, ok := s.Info()
		require.True(t, ok)
		assert.Equal(t, info, got)
		assert.Empty(t, objs.samplers)

		// Destroying an emulated sampler touches no GL object.
		d.DestroySampler(s)
	})

	t.Run("no context", func(t *testing.T) {
		d, err := NewDevice(gl33(), nil, config.Backend{})
		require.NoError(t, err)
		assert.False(t, d.SamplerObjects())
	})

	t.Run("failure", func(t *testing.T) {
		objs := newFakeObjects()
		objs.fail = errors.New("GL_OUT_OF_MEMORY")
		d, err := NewDevice(gl33(), objs, config.Backend{})
		require.NoError(t, err)
		_, err = d.CreateSampler(info)
		assert.ErrorIs(t, err, objs.fail)
	})
}

func TestDeviceNameBinding(t *testing.T) {
	d, err := NewDevice(NewCapabilities(Version{Major: 4, Minor: 5}, nil), nil, config.Backend{})
	require.NoError(t, err)
	assert.False(t, d.NeedsNameBinding())

	d, err = NewDevice(NewCapabilities(Version{Major: 4, Minor: 5}, nil), nil, config.Backend{ForceNameBinding: true})
	require.NoError(t, err)
	assert.True(t, d.NeedsNameBinding())
}

func TestDeviceFences(t *testing.T) {
	objs := newFakeObjects()
	d, err := NewDevice(gl33(), objs, config.Backend{})
	require.NoError(t, err)

	unsignaled, err := d.CreateFence(false)
	require.NoError(t, err)
	assert.True(t, unsignaled.IsNull())

	signaled, err := d.CreateFence(true)
	require.NoError(t, err)
	assert.False(t, signaled.IsNull())
	assert.True(t, objs.syncs[signaled.Handle()])

	d.ResetFence(signaled)
	assert.True(t, signaled.IsNull())
	assert.Empty(t, objs.syncs)

	// Resetting an empty fence is a no-op.
	d.ResetFence(unsignaled)
	d.DestroyFence(unsignaled)

	assert.NotNil(t, d.CreateSemaphore())
}

func TestDeviceSignaledFenceWithoutContext(t *testing.T) {
	d, err := NewDevice(gl33(), nil, config.Backend{})
	require.NoError(t, err)
	_, err = d.CreateFence(true)
	assert.ErrorIs(t, err, core.ErrNoContext)
}

func TestDeviceCreatePipelineLayout(t *testing.T) {
	d, err := NewDevice(gl33(), nil, config.Backend{})
	require.NoError(t, err)

	pl, err := d.CreatePipelineLayout([]DescriptorSetLayout{testSetLayout()}, []ReflectedResource{
		{Name: "Globals", Kind: BindingUniformBuffers, Set: 0, Binding: 0},
		{Name: "u_textures", Kind: BindingImages, Set: 0, Binding: 1, Count: 4},
	})
	require.NoError(t, err)
	slots, ok := pl.Remap.LookupName("u_textures")
	require.True(t, ok)
	assert.Len(t, slots, 4)

	_, err = d.CreatePipelineLayout(nil, []ReflectedResource{{Kind: BindingKind(5)}})
	assert.ErrorIs(t, err, core.ErrUnknownBindingKind)

	pool, err := d.CreateDescriptorPool(16, []metadata.DescriptorRangeDesc{{Type: metadata.DescriptorTypeUniformBuffer, Count: 16}})
	require.NoError(t, err)
	_, err = pool.AllocateSet(testSetLayout())
	assert.NoError(t, err)
}

func TestDeviceMemory(t *testing.T) {
	d, err := NewDevice(gl33(), nil, config.Backend{})
	require.NoError(t, err)

	types := d.MemoryTypes()
	require.Len(t, types, 3)
	types[0].Properties = 0
	assert.Equal(t, metadata.MemoryDeviceLocal, d.MemoryTypes()[0].Properties)

	_, err = d.AllocateMemory(uint32(len(types)), 1024)
	assert.ErrorIs(t, err, core.ErrOutOfDeviceMemory)

	local, err := d.AllocateMemory(0, 1024)
	require.NoError(t, err)
	_, _, err = d.MapMemory(local, 0, 64)
	assert.ErrorIs(t, err, core.ErrMappingNotSupported)

	buf := &Buffer{Raw: 1, Target: UNIFORM_BUFFER, Size: 512}
	assert.ErrorIs(t, d.BindBufferMemory(local, buf, 768), core.ErrOutOfDeviceMemory)
	require.NoError(t, d.BindBufferMemory(local, buf, 512))
	first, ok := local.FirstBoundBuffer()
	require.True(t, ok)
	assert.EqualValues(t, 1, first.Raw)

	cached, err := d.AllocateMemory(2, 1024)
	require.NoError(t, err)
	flags, rng, err := d.MapMemory(cached, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, Enum(MAP_READ_BIT|MAP_WRITE_BIT), flags)
	assert.Equal(t, metadata.MemoryRange{Offset: 10, Size: 20}, rng)
}

func TestDeviceMapNonCoherentMemory(t *testing.T) {
	d, err := NewDevice(gl33(), nil, config.Backend{})
	require.NoError(t, err)

	mem := NewMemory(metadata.MemoryCPUVisible, 0, 1024)
	flags, rng, err := d.MapMemory(mem, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, Enum(MAP_WRITE_BIT|MAP_FLUSH_EXPLICIT_BIT), flags)
	assert.Equal(t, metadata.MemoryRange{Offset: 0, Size: 64}, rng)
}

func TestDeviceMapMemoryOutOfRange(t *testing.T) {
	d, err := NewDevice(gl33(), nil, config.Backend{})
	require.NoError(t, err)

	mem := NewMemory(metadata.MemoryCPUVisible, 1, 128)
	tests := []struct {
		offset, size uint64
	}{
		{512, 16},
		{129, 0},
		{64, 65},
		{1, ^uint64(0)},
	}
	for _, tt := range tests {
		_, _, err := d.MapMemory(mem, tt.offset, tt.size)
		assert.ErrorIs(t, err, core.ErrOutOfDeviceMemory, "offset %d size %d", tt.offset, tt.size)
	}

	_, rng, err := d.MapMemory(mem, 64, 64)
	require.NoError(t, err)
	assert.Equal(t, metadata.MemoryRange{Offset: 64, Size: 64}, rng)
}

func TestDeviceBindBufferMemoryOverflow(t *testing.T) {
	d, err := NewDevice(gl33(), nil, config.Backend{})
	require.NoError(t, err)

	mem, err := d.AllocateMemory(0, 1024)
	require.NoError(t, err)
	buf := &Buffer{Raw: 1, Target: UNIFORM_BUFFER, Size: 512}
	assert.ErrorIs(t, d.BindBufferMemory(mem, buf, ^uint64(0)-100), core.ErrOutOfDeviceMemory)
	assert.ErrorIs(t, d.BindBufferMemory(mem, buf, 2048), core.ErrOutOfDeviceMemory)
	_, ok := mem.FirstBoundBuffer()
	assert.False(t, ok)
}

func TestDeviceWithoutNativeObjects(t *testing.T) {
	d, err := NewDevice(gl33(), nil, config.Backend{})
	require.NoError(t, err)

	f, err := d.CreateFence(false)
	require.NoError(t, err)
	// The recording layer submitted work and stored a sync object.
	f.Swap(0x1234)
	assert.NotPanics(t, func() { d.ResetFence(f) })
	assert.True(t, f.IsNull())

	f.Swap(0x5678)
	assert.NotPanics(t, func() { d.DestroyFence(f) })

	assert.NotPanics(t, func() { d.DestroySampler(NativeSampler(3)) })
}
