package opengl

// ShaderModule is either an already compiled shader object or SPIR-V code
// waiting to be translated to GLSL.
type ShaderModule struct {
	raw   Shader
	spirv []byte
}

func RawShaderModule(s Shader) ShaderModule { return ShaderModule{raw: s} }

// SpirvShaderModule copies code, so the caller may reuse its buffer.
func SpirvShaderModule(code []byte) ShaderModule {
	c := make([]byte, len(code))
	copy(c, code)
	return ShaderModule{spirv: c}
}

// Raw returns the shader object, if the module is not SPIR-V.
func (m ShaderModule) Raw() (Shader, bool) { return m.raw, m.spirv == nil }

// Spirv returns the SPIR-V code, if any.
func (m ShaderModule) Spirv() ([]byte, bool) { return m.spirv, m.spirv != nil }
