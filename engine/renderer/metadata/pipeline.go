package metadata

/** @brief Color channels written by a blend target. */
type ColorMask uint8

const (
	ColorMaskRed   ColorMask = 0x1
	ColorMaskGreen ColorMask = 0x2
	ColorMaskBlue  ColorMask = 0x4
	ColorMaskAlpha ColorMask = 0x8
	ColorMaskAll             = ColorMaskRed | ColorMaskGreen | ColorMaskBlue | ColorMaskAlpha
)

/** @brief Blend state of a single color target. */
type ColorBlendDesc struct {
	Mask    ColorMask
	Enabled bool
}

/** @brief How often vertex attributes are fetched. */
type VertexInputRate int

const (
	VertexInputRateVertex VertexInputRate = iota
	VertexInputRateInstance
)

/** @brief Describes a vertex buffer binding. */
type VertexBufferDesc struct {
	Binding uint32
	Stride  uint32
	Rate    VertexInputRate
}
