package opengl

import (
	"fmt"

	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/metadata"
)

// ImageKind tells whether an image is a renderbuffer surface or a texture.
type ImageKind struct {
	surface bool
	name    uint32
}

func SurfaceImage(s Surface) ImageKind { return ImageKind{surface: true, name: uint32(s)} }
func TextureImage(t Texture) ImageKind { return ImageKind{name: uint32(t)} }

// Surface returns the renderbuffer name if the image is a surface.
func (k ImageKind) Surface() (Surface, bool) { return Surface(k.name), k.surface }

// Texture returns the texture name if the image is a texture.
func (k ImageKind) Texture() (Texture, bool) { return Texture(k.name), !k.surface }

func (k ImageKind) String() string {
	if k.surface {
		return fmt.Sprintf("Surface(%d)", k.name)
	}
	return fmt.Sprintf("Texture(%d)", k.name)
}

/**
 * @brief An image, either renderable surface or texture.
 */
type Image struct {
	Kind ImageKind
	/** @brief Required for clearing operations. */
	Channel metadata.ChannelType
}

type viewKind uint8

const (
	viewSurface viewKind = iota
	viewTexture
	viewTextureLayer
)

// ImageView refines an image to a mip level and, for layered images, a layer.
// Surfaces have no refinement.
type ImageView struct {
	kind  viewKind
	name  uint32
	level metadata.Level
	layer metadata.Layer
}

func SurfaceView(s Surface) ImageView { return ImageView{kind: viewSurface, name: uint32(s)} }

func TextureView(t Texture, level metadata.Level) ImageView {
	return ImageView{kind: viewTexture, name: uint32(t), level: level}
}

func TextureLayerView(t Texture, level metadata.Level, layer metadata.Layer) ImageView {
	return ImageView{kind: viewTextureLayer, name: uint32(t), level: level, layer: layer}
}

// Surface returns the renderbuffer name of a surface view.
func (v ImageView) Surface() (Surface, bool) { return Surface(v.name), v.kind == viewSurface }

// Texture returns the texture name and level of a texture view, layered or not.
func (v ImageView) Texture() (Texture, metadata.Level, bool) {
	return Texture(v.name), v.level, v.kind != viewSurface
}

// Layer returns the layer of a layered texture view.
func (v ImageView) Layer() (metadata.Layer, bool) { return v.layer, v.kind == viewTextureLayer }

func (v ImageView) String() string {
	switch v.kind {
	case viewSurface:
		return fmt.Sprintf("Surface(%d)", v.name)
	case viewTexture:
		return fmt.Sprintf("Texture(%d, level=%d)", v.name, v.level)
	}
	return fmt.Sprintf("TextureLayer(%d, level=%d, layer=%d)", v.name, v.level, v.layer)
}

// View creates a view of img. A nil layer selects the whole level. Surfaces
// only accept level 0 without a layer.
func (img Image) View(level metadata.Level, layer *metadata.Layer) (ImageView, error) {
	if s, ok := img.Kind.Surface(); ok {
		if level != 0 || layer != nil {
			return ImageView{}, fmt.Errorf("surface %d: level %d: %w", s, level, core.ErrInvalidView)
		}
		return SurfaceView(s), nil
	}
	t, _ := img.Kind.Texture()
	if layer != nil {
		return TextureLayerView(t, level, *layer), nil
	}
	return TextureView(t, level), nil
}

// ClearFunc is the glClearBuffer entry point matching an attachment's channels.
type ClearFunc uint8

const (
	ClearBufferFloat ClearFunc = iota // glClearBufferfv
	ClearBufferInt                    // glClearBufferiv
	ClearBufferUint                   // glClearBufferuiv
)

// ClearFuncFor returns the clear entry point for a channel type.
func ClearFuncFor(ch metadata.ChannelType) ClearFunc {
	switch ch {
	case metadata.ChannelUint:
		return ClearBufferUint
	case metadata.ChannelSint:
		return ClearBufferInt
	}
	return ClearBufferFloat
}

// ClearFunc returns the clear entry point for the image.
func (img Image) ClearFunc() ClearFunc { return ClearFuncFor(img.Channel) }
