package opengl

import (
	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
)

// FatSampler is either a sampler object or, for GL versions without sampler
// objects, the raw parameters to apply to the bound texture unit. The variant
// is picked once by the device and never changes afterwards.
type FatSampler struct {
	native bool
	handle Sampler
	info   metadata.SamplerInfo
}

func NativeSampler(s Sampler) FatSampler { return FatSampler{native: true, handle: s} }

func EmulatedSampler(info metadata.SamplerInfo) FatSampler { return FatSampler{info: info} }

// Sampler returns the sampler object, if this is one.
func (s FatSampler) Sampler() (Sampler, bool) { return s.handle, s.native }

// Info returns the raw sampling parameters, if no sampler object is used.
func (s FatSampler) Info() (metadata.SamplerInfo, bool) { return s.info, !s.native }

// TexParameter is one glTexParameter call.
type TexParameter struct {
	Name Enum
	// Int is used unless Floats holds more than zero values.
	Int    int32
	Floats []float32
}

// TexParameters returns the glTexParameter calls that reproduce info on a
// texture. The order is stable.
func TexParameters(info metadata.SamplerInfo) []TexParameter {
	params := []TexParameter{
		{Name: TEXTURE_MIN_FILTER, Int: int32(minFilter(info.MinFilter, info.MipFilter))},
		{Name: TEXTURE_MAG_FILTER, Int: int32(filter(info.MagFilter))},
		{Name: TEXTURE_WRAP_S, Int: int32(wrapMode(info.Wrap[0]))},
		{Name: TEXTURE_WRAP_T, Int: int32(wrapMode(info.Wrap[1]))},
		{Name: TEXTURE_WRAP_R, Int: int32(wrapMode(info.Wrap[2]))},
		{Name: TEXTURE_MIN_LOD, Floats: []float32{info.Lod.Min}},
		{Name: TEXTURE_MAX_LOD, Floats: []float32{info.Lod.Max}},
		{Name: TEXTURE_LOD_BIAS, Floats: []float32{info.LodBias}},
	}
	if info.Comparison != nil {
		params = append(params,
			TexParameter{Name: TEXTURE_COMPARE_MODE, Int: COMPARE_REF_TO_TEXTURE},
			TexParameter{Name: TEXTURE_COMPARE_FUNC, Int: int32(comparison(*info.Comparison))},
		)
	} else {
		params = append(params, TexParameter{Name: TEXTURE_COMPARE_MODE, Int: NONE})
	}
	for _, w := range info.Wrap {
		if w == metadata.WrapBorder {
			border := info.Border
			params = append(params, TexParameter{Name: TEXTURE_BORDER_COLOR, Floats: border[:]})
			break
		}
	}
	if info.Anisotropy > 1 {
		params = append(params, TexParameter{Name: TEXTURE_MAX_ANISOTROPY_EXT, Floats: []float32{float32(info.Anisotropy)}})
	}
	return params
}

func filter(f metadata.Filter) Enum {
	if f == metadata.FilterLinear {
		return LINEAR
	}
	return NEAREST
}

func minFilter(min, mip metadata.Filter) Enum {
	switch {
	case min == metadata.FilterNearest && mip == metadata.FilterNearest:
		return NEAREST_MIPMAP_NEAREST
	case min == metadata.FilterLinear && mip == metadata.FilterNearest:
		return LINEAR_MIPMAP_NEAREST
	case min == metadata.FilterNearest && mip == metadata.FilterLinear:
		return NEAREST_MIPMAP_LINEAR
	}
	return LINEAR_MIPMAP_LINEAR
}

func wrapMode(w metadata.WrapMode) Enum {
	switch w {
	case metadata.WrapMirror:
		return MIRRORED_REPEAT
	case metadata.WrapClamp:
		return CLAMP_TO_EDGE
	case metadata.WrapBorder:
		return CLAMP_TO_BORDER
	}
	return REPEAT
}

func comparison(c metadata.Comparison) Enum {
	switch c {
	case metadata.ComparisonLess:
		return LESS
	case metadata.ComparisonEqual:
		return EQUAL
	case metadata.ComparisonLessEqual:
		return LEQUAL
	case metadata.ComparisonGreater:
		return GREATER
	case metadata.ComparisonNotEqual:
		return NOTEQUAL
	case metadata.ComparisonGreaterEqual:
		return GEQUAL
	case metadata.ComparisonAlways:
		return ALWAYS
	}
	return NEVER
}
