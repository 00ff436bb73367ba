package opengl

// Enum is a GLenum/GLbitfield value.
type Enum uint32

const (
	NONE = 0

	MAP_READ_BIT              = 0x0001
	MAP_WRITE_BIT             = 0x0002
	MAP_INVALIDATE_RANGE_BIT  = 0x0004
	MAP_INVALIDATE_BUFFER_BIT = 0x0008
	MAP_FLUSH_EXPLICIT_BIT    = 0x0010
	MAP_UNSYNCHRONIZED_BIT    = 0x0020
	MAP_PERSISTENT_BIT        = 0x0040
	MAP_COHERENT_BIT          = 0x0080

	ARRAY_BUFFER          = 0x8892
	ELEMENT_ARRAY_BUFFER  = 0x8893
	PIXEL_PACK_BUFFER     = 0x88EB
	PIXEL_UNPACK_BUFFER   = 0x88EC
	UNIFORM_BUFFER        = 0x8A11
	TEXTURE_BUFFER        = 0x8C2A
	COPY_READ_BUFFER      = 0x8F36
	COPY_WRITE_BUFFER     = 0x8F37
	DRAW_INDIRECT_BUFFER  = 0x8F3F
	SHADER_STORAGE_BUFFER = 0x90D2

	POINTS         = 0x0
	LINES          = 0x1
	LINE_STRIP     = 0x3
	TRIANGLES      = 0x4
	TRIANGLE_STRIP = 0x5
	PATCHES        = 0xE

	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
	DOUBLE         = 0x140A
	HALF_FLOAT     = 0x140B

	TEXTURE_2D           = 0x0DE1
	TEXTURE_BORDER_COLOR = 0x1004
	TEXTURE_MAG_FILTER   = 0x2800
	TEXTURE_MIN_FILTER   = 0x2801
	TEXTURE_WRAP_S       = 0x2802
	TEXTURE_WRAP_T       = 0x2803
	TEXTURE_WRAP_R       = 0x8072
	TEXTURE_MIN_LOD      = 0x813A
	TEXTURE_MAX_LOD      = 0x813B
	TEXTURE_LOD_BIAS     = 0x8501
	TEXTURE_COMPARE_MODE = 0x884C
	TEXTURE_COMPARE_FUNC = 0x884D

	TEXTURE_MAX_ANISOTROPY_EXT = 0x84FE

	NEAREST                = 0x2600
	LINEAR                 = 0x2601
	NEAREST_MIPMAP_NEAREST = 0x2700
	LINEAR_MIPMAP_NEAREST  = 0x2701
	NEAREST_MIPMAP_LINEAR  = 0x2702
	LINEAR_MIPMAP_LINEAR   = 0x2703

	REPEAT          = 0x2901
	CLAMP_TO_BORDER = 0x812D
	CLAMP_TO_EDGE   = 0x812F
	MIRRORED_REPEAT = 0x8370

	COMPARE_REF_TO_TEXTURE = 0x884E

	NEVER    = 0x0200
	LESS     = 0x0201
	EQUAL    = 0x0202
	LEQUAL   = 0x0203
	GREATER  = 0x0204
	NOTEQUAL = 0x0205
	GEQUAL   = 0x0206
	ALWAYS   = 0x0207

	COLOR         = 0x1800
	DEPTH         = 0x1801
	STENCIL       = 0x1802
	DEPTH_STENCIL = 0x84F9
)
