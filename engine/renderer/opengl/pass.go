package opengl

import (
	"fmt"
	"slices"

	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
)

/**
 * @brief A render pass. GL has no render pass object, this only keeps the
 * attachment bookkeeping used when binding framebuffers and clearing.
 */
type RenderPass struct {
	Attachments []metadata.Attachment
	Subpasses   []SubpassDesc
}

/**
 * @brief The color attachments written by a subpass.
 */
type SubpassDesc struct {
	ColorAttachments []metadata.AttachmentID
}

// IsUsing reports whether the attachment is used by this subpass.
func (s SubpassDesc) IsUsing(id metadata.AttachmentID) bool {
	return slices.Contains(s.ColorAttachments, id)
}

// NewRenderPass builds a render pass, checking that every color reference
// points at an existing attachment.
func NewRenderPass(attachments []metadata.Attachment, subpasses []metadata.SubpassDesc) (*RenderPass, error) {
	pass := &RenderPass{
		Attachments: slices.Clone(attachments),
		Subpasses:   make([]SubpassDesc, 0, len(subpasses)),
	}
	for i, sp := range subpasses {
		for _, id := range sp.Colors {
			if id < 0 || int(id) >= len(attachments) {
				err := fmt.Errorf("subpass %d: color attachment %d of %d: %w", i, id, len(attachments), core.ErrInvalidAttachment)
				core.LogError(err.Error())
				return nil, err
			}
		}
		pass.Subpasses = append(pass.Subpasses, SubpassDesc{ColorAttachments: slices.Clone(sp.Colors)})
	}
	return pass, nil
}

// FirstUse returns the index of the first subpass using the attachment, which
// is where a load op clear happens.
func (p *RenderPass) FirstUse(id metadata.AttachmentID) (int, bool) {
	for i, sp := range p.Subpasses {
		if sp.IsUsing(id) {
			return i, true
		}
	}
	return 0, false
}
