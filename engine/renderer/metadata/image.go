package metadata

/** @brief Mip level of an image. */
type Level uint8

/** @brief Array layer of an image. */
type Layer uint16

/**
 * @brief The numeric interpretation of the channels of a format.
 * Needed to pick the right clear function for an image.
 */
type ChannelType int

const (
	ChannelUnorm ChannelType = iota
	ChannelSnorm
	ChannelUint
	ChannelSint
	ChannelUfloat
	ChannelSfloat
	ChannelUscaled
	ChannelSscaled
	ChannelSrgb
)

/** @brief Represents supported sampler filtering modes. */
type Filter int

const (
	/** @brief Nearest-neighbor filtering. */
	FilterNearest Filter = iota
	/** @brief Linear (i.e. bilinear) filtering.*/
	FilterLinear
)

/** @brief How texture coordinates outside [0, 1] are resolved. */
type WrapMode int

const (
	WrapTile WrapMode = iota
	WrapMirror
	WrapClamp
	WrapBorder
)

/** @brief Comparison operators for depth-compare samplers. */
type Comparison int

const (
	ComparisonNever Comparison = iota
	ComparisonLess
	ComparisonEqual
	ComparisonLessEqual
	ComparisonGreater
	ComparisonNotEqual
	ComparisonGreaterEqual
	ComparisonAlways
)

/** @brief Inclusive range of mip levels a sampler can access. */
type LodRange struct {
	Min float32
	Max float32
}

/**
 * @brief Sampling parameters. Either used to create a sampler
 * object or applied directly to a texture unit.
 */
type SamplerInfo struct {
	/** @brief Minification filter. */
	MinFilter Filter
	/** @brief Magnification filter. */
	MagFilter Filter
	/** @brief Filter between mip levels. */
	MipFilter Filter
	/** @brief Wrap modes for the U, V and W coordinates. */
	Wrap [3]WrapMode
	LodBias float32
	Lod     LodRange
	/** @brief Depth comparison, nil when disabled. */
	Comparison *Comparison
	/** @brief Border color used by WrapBorder, RGBA. */
	Border [4]float32
	/** @brief Max anisotropy, 0 or 1 disables it. */
	Anisotropy uint8
}

// NewSamplerInfo returns sampler parameters using the same filter and wrap mode everywhere.
func NewSamplerInfo(filter Filter, wrap WrapMode) SamplerInfo {
	return SamplerInfo{
		MinFilter: filter,
		MagFilter: filter,
		MipFilter: filter,
		Wrap:      [3]WrapMode{wrap, wrap, wrap},
		Lod:       LodRange{Min: -1000, Max: 1000},
	}
}
