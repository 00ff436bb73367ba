package metadata

/** @brief Index of a descriptor set inside a pipeline layout. */
type DescriptorSetIndex uint16

/** @brief Binding number of a descriptor inside a descriptor set. */
type DescriptorBinding uint32

/** @brief Index of an element inside an arrayed descriptor. */
type DescriptorArrayIndex uint32

/**
 * @brief The type of a descriptor.
 */
type DescriptorType int

const (
	DescriptorTypeSampler DescriptorType = iota
	DescriptorTypeCombinedImageSampler
	DescriptorTypeSampledImage
	DescriptorTypeStorageImage
	DescriptorTypeUniformTexelBuffer
	DescriptorTypeStorageTexelBuffer
	DescriptorTypeUniformBuffer
	DescriptorTypeStorageBuffer
	DescriptorTypeUniformBufferDynamic
	DescriptorTypeStorageBufferDynamic
	DescriptorTypeInputAttachment
)

func (t DescriptorType) String() string {
	switch t {
	case DescriptorTypeSampler:
		return "sampler"
	case DescriptorTypeCombinedImageSampler:
		return "combined_image_sampler"
	case DescriptorTypeSampledImage:
		return "sampled_image"
	case DescriptorTypeStorageImage:
		return "storage_image"
	case DescriptorTypeUniformTexelBuffer:
		return "uniform_texel_buffer"
	case DescriptorTypeStorageTexelBuffer:
		return "storage_texel_buffer"
	case DescriptorTypeUniformBuffer:
		return "uniform_buffer"
	case DescriptorTypeStorageBuffer:
		return "storage_buffer"
	case DescriptorTypeUniformBufferDynamic:
		return "uniform_buffer_dynamic"
	case DescriptorTypeStorageBufferDynamic:
		return "storage_buffer_dynamic"
	case DescriptorTypeInputAttachment:
		return "input_attachment"
	}
	return "unknown"
}

/** @brief Shader stages a descriptor is visible to. */
type ShaderStageFlags uint32

const (
	ShaderStageVertex   ShaderStageFlags = 0x1
	ShaderStageHull     ShaderStageFlags = 0x2
	ShaderStageDomain   ShaderStageFlags = 0x4
	ShaderStageGeometry ShaderStageFlags = 0x8
	ShaderStageFragment ShaderStageFlags = 0x10
	ShaderStageCompute  ShaderStageFlags = 0x20

	ShaderStageGraphics = ShaderStageVertex | ShaderStageHull | ShaderStageDomain | ShaderStageGeometry | ShaderStageFragment
	ShaderStageAll      = ShaderStageGraphics | ShaderStageCompute
)

// Contains reports whether all the stages in mask are set.
func (f ShaderStageFlags) Contains(mask ShaderStageFlags) bool { return hasAll(f, mask) }

/**
 * @brief Describes a single binding of a descriptor set layout.
 */
type DescriptorSetLayoutBinding struct {
	/** @brief The binding number, unique inside the set. */
	Binding DescriptorBinding
	/** @brief The descriptor type. */
	Type DescriptorType
	/** @brief The number of array elements. Zero means unused. */
	Count uint32
	/** @brief The stages which can access the binding. */
	Stages ShaderStageFlags
	/** @brief Whether the binding uses immutable samplers. */
	ImmutableSamplers bool
}

/**
 * @brief The number of descriptors of a given type a pool is expected to hold.
 */
type DescriptorRangeDesc struct {
	Type  DescriptorType
	Count uint32
}
