package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the probe looks for its configuration.
const DefaultPath = "anima.toml"

type Log struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `toml:"level"`
}

type Platform struct {
	Title  string `toml:"title"`
	Hidden bool   `toml:"hidden"`
	// Requested context version. Zero lets the platform pick.
	Major int  `toml:"gl_major"`
	Minor int  `toml:"gl_minor"`
	ES    bool `toml:"es"`
	// VersionOverride replaces the version the context reports, in
	// GL_VERSION form, e.g. "3.0" or "OpenGL ES 3.0". It is used to try
	// fallback paths on a newer driver.
	VersionOverride string `toml:"version_override"`
}

// Backend overrides what the OpenGL backend would pick from the detected
// capabilities. Both switches only ever take features away.
type Backend struct {
	// ForceSamplerEmulation applies sampler parameters to texture units even
	// when sampler objects are available.
	ForceSamplerEmulation bool `toml:"force_sampler_emulation"`
	// ForceNameBinding resolves binding points by uniform name even when
	// layout(binding = N) is supported.
	ForceNameBinding bool `toml:"force_name_binding"`
}

type Config struct {
	Log      Log      `toml:"log"`
	Platform Platform `toml:"platform"`
	Backend  Backend  `toml:"backend"`
}

func Default() *Config {
	return &Config{
		Log: Log{Level: "info"},
		Platform: Platform{
			Title:  "anima-gl",
			Hidden: true,
			Major:  3,
			Minor:  3,
		},
	}
}

// Parse decodes data over the defaults. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the decoder can't.
func (c *Config) Validate() error {
	if c.Platform.Major < 0 || c.Platform.Minor < 0 {
		return fmt.Errorf("invalid GL version %d.%d", c.Platform.Major, c.Platform.Minor)
	}
	if c.Platform.Major == 0 && c.Platform.Minor != 0 {
		return fmt.Errorf("GL minor version %d set without a major version", c.Platform.Minor)
	}
	return nil
}

// Marshal encodes c as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
