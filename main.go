/*
Probe creates a GL context, detects what the backend can use on this
machine and reports the binding strategy the device picks.
*/
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/spaghettifunk/anima-gl/engine/config"
	"github.com/spaghettifunk/anima-gl/engine/core"
	"github.com/spaghettifunk/anima-gl/engine/platform"
	"github.com/spaghettifunk/anima-gl/engine/renderer"
)

func main() {
	path := flag.String("config", config.DefaultPath, "path to the TOML configuration")
	flag.Parse()

	cfg, err := config.Load(*path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		core.LogFatal("%s", err)
	}
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		core.LogFatal("%s", err)
	}
	if watcher, err := config.Watch(*path, config.ApplyLogLevel); err != nil {
		core.LogWarn("config changes will not be picked up: %s", err)
	} else {
		defer watcher.Close()
	}

	p := platform.New()
	if err := p.Startup(cfg.Platform); err != nil {
		core.LogFatal("%s", err)
	}
	defer p.Shutdown()

	caps, err := p.Capabilities()
	if err != nil {
		core.LogFatal("%s", err)
	}
	dev, err := renderer.Initialize(renderer.OpenGL, cfg, caps, nil)
	if err != nil {
		core.LogFatal("%s", err)
	}
	defer renderer.Shutdown()

	core.LogInfo("context: %s, extensions: %v", caps.Version, caps.Extensions)
	core.LogInfo("sampler objects supported: %t", caps.SamplerObjects())
	core.LogInfo("name based binding: %t", dev.NeedsNameBinding())
	for i, mt := range dev.MemoryTypes() {
		core.LogInfo("memory type %d: properties %#x, heap %d", i, uint32(mt.Properties), mt.HeapIndex)
	}
}
