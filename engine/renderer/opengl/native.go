package opengl

// Native object names. They carry no behavior, only type identity so a
// texture name can't be passed where a buffer name is expected.
type (
	RawBuffer   uint32
	Shader      uint32
	Program     uint32
	Framebuffer uint32
	Surface     uint32
	Texture     uint32
	Sampler     uint32
)

// Sync is a GLsync object pointer.
type Sync uintptr

// DefaultFramebuffer is the window-system provided framebuffer.
const DefaultFramebuffer Framebuffer = 0

/**
 * @brief A buffer object together with the target it was created for.
 */
type Buffer struct {
	/** @brief The buffer object name. */
	Raw RawBuffer
	/** @brief The bind target, e.g. ARRAY_BUFFER. */
	Target Enum
	/** @brief The buffer size in bytes. */
	Size uint64
}

// BufferView has no GL counterpart; texel buffers are not supported.
type BufferView struct{}
