package renderer

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/anima-gl/engine/config"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/opengl"
)

var (
	_ DescriptorPool[opengl.DescriptorSetLayout, *opengl.DescriptorSet] = (*opengl.DescriptorPool)(nil)
	_ MappableMemory                                                    = (*opengl.Memory)(nil)
)

type RendererType uint8

const (
	Vulkan RendererType = iota
	DirectX
	Metal
	OpenGL
)

func (t RendererType) String() string {
	switch t {
	case Vulkan:
		return "vulkan"
	case DirectX:
		return "directx"
	case Metal:
		return "metal"
	case OpenGL:
		return "opengl"
	}
	return "unknown"
}

type Renderer struct {
	rendererType RendererType
	device       *opengl.Device
}

var (
	mu       sync.Mutex
	renderer *Renderer
)

// Initialize creates the process wide device. Calling it again returns the
// device created the first time.
func Initialize(rendererType RendererType, cfg *config.Config, caps opengl.Capabilities, objs opengl.NativeObjects) (*opengl.Device, error) {
	mu.Lock()
	defer mu.Unlock()
	if renderer != nil {
		return renderer.device, nil
	}
	if rendererType != OpenGL {
		err := fmt.Errorf("%s: %w", rendererType, core.ErrUnsupportedRenderer)
		core.LogError(err.Error())
		return nil, err
	}
	dev, err := opengl.NewDevice(caps, objs, cfg.Backend)
	if err != nil {
		return nil, err
	}
	renderer = &Renderer{rendererType: rendererType, device: dev}
	return dev, nil
}

// Device returns the initialized device, or nil.
func Device() *opengl.Device {
	mu.Lock()
	defer mu.Unlock()
	if renderer == nil {
		return nil
	}
	return renderer.device
}

// Shutdown drops the device so Initialize can create a new one.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()
	renderer = nil
	return nil
}
