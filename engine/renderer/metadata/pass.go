package metadata

/** @brief Index of an attachment inside a render pass. */
type AttachmentID int

/** @brief What to do with an attachment's contents at the start of a pass. */
type AttachmentLoadOp int

const (
	AttachmentLoadOpLoad AttachmentLoadOp = iota
	AttachmentLoadOpClear
	AttachmentLoadOpDontCare
)

/** @brief What to do with an attachment's contents at the end of a pass. */
type AttachmentStoreOp int

const (
	AttachmentStoreOpStore AttachmentStoreOp = iota
	AttachmentStoreOpDontCare
)

type AttachmentOps struct {
	Load  AttachmentLoadOp
	Store AttachmentStoreOp
}

/**
 * @brief Describes a render pass attachment.
 */
type Attachment struct {
	/** @brief The attachment channel type, used to pick the clear function. */
	Channel ChannelType
	/** @brief The number of samples. */
	Samples uint8
	/** @brief Color/depth operations. */
	Ops AttachmentOps
	/** @brief Stencil operations. */
	StencilOps AttachmentOps
}

/**
 * @brief Describes which attachments a subpass uses.
 */
type SubpassDesc struct {
	Colors       []AttachmentID
	DepthStencil *AttachmentID
	Inputs       []AttachmentID
	Resolves     []AttachmentID
}
