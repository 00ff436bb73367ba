package opengl

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
)

/**
 * @brief Holds the descriptor set layouts of a pipeline and the table
 * flattening their bindings into GL binding points.
 */
type PipelineLayout struct {
	ID uuid.UUID
	/** @brief The set layouts, indexed by set number. */
	SetLayouts []DescriptorSetLayout
	/** @brief Shared with every pipeline and lookup using this layout. */
	Remap *DescriptorRemapper
}

func NewPipelineLayout(setLayouts []DescriptorSetLayout) *PipelineLayout {
	layouts := make([]DescriptorSetLayout, len(setLayouts))
	for i := range setLayouts {
		layouts[i] = append(DescriptorSetLayout(nil), setLayouts[i]...)
	}
	return &PipelineLayout{
		ID:         uuid.New(),
		SetLayouts: layouts,
		Remap:      NewDescriptorRemapper(),
	}
}

/**
 * @brief A resource found by shader reflection.
 */
type ReflectedResource struct {
	/** @brief The identifier of the resource in the shader source. */
	Name    string
	Kind    BindingKind
	Set     metadata.DescriptorSetIndex
	Binding metadata.DescriptorBinding
	/** @brief Array size, 0 is treated as 1. */
	Count uint32
	/** @brief Stage the resource was reflected from, 0 if unknown. */
	Stage metadata.ShaderStageFlags
}

// Populate assigns binding points to reflected resources and returns, for each
// resource, the slots it was given. Each array element gets its own slot.
// A resource seen again, e.g. from another stage, reuses the slots it
// already has and only gets new ones for elements it did not have yet.
func (pl *PipelineLayout) Populate(resources []ReflectedResource) ([][]metadata.DescriptorBinding, error) {
	out := make([][]metadata.DescriptorBinding, len(resources))
	for i, res := range resources {
		if !res.Kind.Valid() {
			err := fmt.Errorf("resource %q: %w", res.Name, core.ErrUnknownBindingKind)
			core.LogError(err.Error())
			return nil, err
		}
		pl.checkDeclared(res)
		count := max(res.Count, 1)
		slots, _ := pl.Remap.Lookup(res.Kind, res.Set, res.Binding)
		for uint32(len(slots)) < count {
			slots = pl.Remap.AssignOverflowSlot(res.Kind, res.Set, res.Binding)
		}
		if res.Name != "" {
			pl.Remap.RegisterName(res.Name, res.Kind, res.Set, res.Binding)
		}
		out[i] = slots[:count]
		core.LogDebug("layout %s: %q %s -> %v", pl.ID, res.Name, BindingKey{res.Kind, res.Set, res.Binding}, out[i])
	}
	return out, nil
}

// checkDeclared warns about a resource the set layouts don't declare for its
// stage. Binding still goes ahead, drivers accept the mismatch.
func (pl *PipelineLayout) checkDeclared(res ReflectedResource) bool {
	if int(res.Set) >= len(pl.SetLayouts) {
		return true
	}
	decl, ok := pl.SetLayouts[res.Set].Find(res.Binding)
	if !ok {
		core.LogWarn("layout %s: %q at set %d binding %d is not declared", pl.ID, res.Name, res.Set, res.Binding)
		return false
	}
	if res.Stage != 0 && !decl.Stages.Contains(res.Stage) {
		core.LogWarn("layout %s: %q is used by stages %#x, declared for %#x", pl.ID, res.Name, uint32(res.Stage), uint32(decl.Stages))
		return false
	}
	return true
}

/**
 * @brief A descriptor set binding resolved to the GL binding point it
 * must be bound to.
 */
type BoundSlot struct {
	Slot    metadata.DescriptorBinding
	Binding DescSetBinding
}

// ResolveSet maps the bindings of ds, bound as set number set, to GL binding
// points. Bindings the pipeline does not use are skipped.
func (pl *PipelineLayout) ResolveSet(set metadata.DescriptorSetIndex, ds *DescriptorSet) []BoundSlot {
	bindings := ds.Bindings()
	bound := make([]BoundSlot, 0, len(bindings))
	for _, b := range bindings {
		slots, ok := pl.Remap.Lookup(b.Kind, set, b.Binding)
		if !ok {
			continue
		}
		if int(b.Element) >= len(slots) {
			core.LogDebug("layout %s: element %d of %s has no slot", pl.ID, b.Element, BindingKey{b.Kind, set, b.Binding})
			continue
		}
		bound = append(bound, BoundSlot{Slot: slots[b.Element], Binding: b})
	}
	return bound
}

// VertexAttribFunction is the glVertexAttrib*Pointer variant used for an attribute.
type VertexAttribFunction uint8

const (
	VertexAttribFloat   VertexAttribFunction = iota // glVertexAttribPointer
	VertexAttribInteger                             // glVertexAttribIPointer
	VertexAttribDouble                              // glVertexAttribLPointer
)

// VertexAttribFunctionFor picks the pointer function for a component type.
// Integer types read as floats (normalized or scaled) use the float variant.
func VertexAttribFunctionFor(ty Enum, asFloat bool) VertexAttribFunction {
	switch ty {
	case DOUBLE:
		return VertexAttribDouble
	case BYTE, UNSIGNED_BYTE, SHORT, UNSIGNED_SHORT, INT, UNSIGNED_INT:
		if !asFloat {
			return VertexAttribInteger
		}
	}
	return VertexAttribFloat
}

type AttributeDesc struct {
	Location       uint32
	Offset         uint32
	Binding        uint32
	Size           int32
	Format         Enum
	VertexAttribFn VertexAttribFunction
}

type GraphicsPipeline struct {
	Program   Program
	Primitive Enum
	/** @brief Vertices per patch, set only for PATCHES. */
	PatchSize     *int32
	BlendTargets  []metadata.ColorBlendDesc
	Attributes    []AttributeDesc
	VertexBuffers []*metadata.VertexBufferDesc
	Layout        *PipelineLayout
}

type ComputePipeline struct {
	Program Program
	Layout  *PipelineLayout
}
