package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/anima-gl/engine/config"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/renderer/opengl"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the window and the GL context the backend runs on.
type Platform struct {
	Window *glfw.Window

	versionOverride string
}

func New() *Platform {
	return &Platform{}
}

// Startup creates a window with a GL context and makes it current.
func (p *Platform) Startup(cfg config.Platform) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, boolHint(!cfg.Hidden))
	if cfg.ES {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	}
	if cfg.Major > 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	}
	if !cfg.ES && (cfg.Major > 3 || (cfg.Major == 3 && cfg.Minor >= 2)) {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(640, 480, cfg.Title, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		glfw.Terminate()
		return err
	}
	window.MakeContextCurrent()
	p.Window = window
	p.versionOverride = cfg.VersionOverride
	return nil
}

// Capabilities reports the version and extensions of the current context.
func (p *Platform) Capabilities() (opengl.Capabilities, error) {
	if p.Window == nil || glfw.GetCurrentContext() == nil {
		return opengl.Capabilities{}, fmt.Errorf("capabilities: %w", core.ErrNoContext)
	}
	v := opengl.Version{
		Major: p.Window.GetAttrib(glfw.ContextVersionMajor),
		Minor: p.Window.GetAttrib(glfw.ContextVersionMinor),
		ES:    p.Window.GetAttrib(glfw.ClientAPI) == glfw.OpenGLESAPI,
	}
	v, err := applyVersionOverride(v, p.versionOverride)
	if err != nil {
		return opengl.Capabilities{}, err
	}
	var exts []string
	for _, name := range opengl.KnownExtensions {
		if glfw.ExtensionSupported(name) {
			exts = append(exts, name)
		}
	}
	core.LogDebug("%s with %d known extensions", v, len(exts))
	return opengl.NewCapabilities(v, exts), nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

// applyVersionOverride returns the version parsed from override, which may
// not be newer than the context's own version.
func applyVersionOverride(v opengl.Version, override string) (opengl.Version, error) {
	if override == "" {
		return v, nil
	}
	o, err := opengl.ParseVersion(override)
	if err != nil {
		core.LogError("version override: %s", err)
		return v, err
	}
	if o.ES != v.ES || !v.AtLeast(o.Major, o.Minor) {
		err := fmt.Errorf("version override %s not supported by %s", o, v)
		core.LogError(err.Error())
		return v, err
	}
	core.LogInfo("context %s reported as %s", v, o)
	return o, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
