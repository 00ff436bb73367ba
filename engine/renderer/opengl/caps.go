package opengl

import (
	"fmt"
	"slices"
)

// Version is a GL or GL ES context version.
type Version struct {
	Major, Minor int
	ES           bool
}

// ParseVersion parses a GL_VERSION string such as "4.6.0 NVIDIA 535.54" or
// "OpenGL ES 3.2 Mesa 23.0".
func ParseVersion(glVer string) (Version, error) {
	var v Version
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &v.Major, &v.Minor); err == nil {
		v.ES = true
		return v, nil
	} else if _, err := fmt.Sscanf(glVer, "WebGL %d.%d", &v.Major, &v.Minor); err == nil {
		// WebGL major version v corresponds to OpenGL ES version v + 1
		v.Major++
		v.ES = true
		return v, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &v.Major, &v.Minor); err == nil {
		return v, nil
	}
	return Version{}, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major, v.Minor)
}

// KnownExtensions are the extensions the backend looks for.
var KnownExtensions = []string{
	"GL_ARB_sampler_objects",
	"GL_ARB_shading_language_420pack",
	"GL_ARB_map_buffer_range",
	"GL_EXT_map_buffer_range",
	"GL_ARB_buffer_storage",
	"GL_EXT_buffer_storage",
	"GL_ARB_uniform_buffer_object",
	"GL_ARB_sync",
	"GL_EXT_texture_filter_anisotropic",
}

// Limits are implementation limits relevant to binding.
type Limits struct {
	MaxCombinedTextureImageUnits uint32
	MaxUniformBufferBindings     uint32
	UniformBufferOffsetAlignment uint64
	NonCoherentAtomSize          uint64
}

// DefaultLimits are the minimums guaranteed by GL 3.3.
func DefaultLimits() Limits {
	return Limits{
		MaxCombinedTextureImageUnits: 48,
		MaxUniformBufferBindings:     36,
		UniformBufferOffsetAlignment: 256,
		NonCoherentAtomSize:          64,
	}
}

// Capabilities is what the context reported when the device was created.
type Capabilities struct {
	Version    Version
	Extensions []string
	Limits     Limits
}

func NewCapabilities(v Version, extensions []string) Capabilities {
	return Capabilities{Version: v, Extensions: slices.Clone(extensions), Limits: DefaultLimits()}
}

// HasExtension reports whether the named extension is supported.
func (c Capabilities) HasExtension(name string) bool {
	return slices.Contains(c.Extensions, name)
}

// SamplerObjects reports whether separate sampler objects exist.
func (c Capabilities) SamplerObjects() bool {
	if c.Version.ES {
		return c.Version.AtLeast(3, 0)
	}
	return c.Version.AtLeast(3, 3) || c.HasExtension("GL_ARB_sampler_objects")
}

// ExplicitBindings reports whether shaders can declare layout(binding = N).
// Without it binding points are assigned by uniform name after linking.
func (c Capabilities) ExplicitBindings() bool {
	if c.Version.ES {
		return c.Version.AtLeast(3, 1)
	}
	return c.Version.AtLeast(4, 2) || c.HasExtension("GL_ARB_shading_language_420pack")
}

// MapBufferRange reports whether glMapBufferRange is available.
func (c Capabilities) MapBufferRange() bool {
	return c.Version.AtLeast(3, 0) || c.HasExtension("GL_ARB_map_buffer_range") || c.HasExtension("GL_EXT_map_buffer_range")
}

// BufferStorage reports whether immutable buffer storage is available.
func (c Capabilities) BufferStorage() bool {
	if !c.Version.ES && c.Version.AtLeast(4, 4) {
		return true
	}
	return c.HasExtension("GL_ARB_buffer_storage") || c.HasExtension("GL_EXT_buffer_storage")
}

// UniformBuffers reports whether uniform buffer objects are available.
func (c Capabilities) UniformBuffers() bool {
	if c.Version.ES {
		return c.Version.AtLeast(3, 0)
	}
	return c.Version.AtLeast(3, 1) || c.HasExtension("GL_ARB_uniform_buffer_object")
}

// Sync reports whether fence sync objects are available.
func (c Capabilities) Sync() bool {
	if c.Version.ES {
		return c.Version.AtLeast(3, 0)
	}
	return c.Version.AtLeast(3, 2) || c.HasExtension("GL_ARB_sync")
}
