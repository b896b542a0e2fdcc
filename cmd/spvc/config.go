package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/spvc/shader"
	"github.com/gogpu/spvc/spirv"
)

// Config is the contents of spvc.toml.
type Config struct {
	OutDir          string   `toml:"out_dir"`
	Version         string   `toml:"version"`
	Layout          string   `toml:"layout"`
	Shaders         []string `toml:"shaders"`
	InterfaceFormat string   `toml:"interface_format"`
}

func defaultConfig() Config {
	return Config{
		OutDir:          ".",
		Version:         spirv.Version1_0.String(),
		Layout:          shader.LayoutStd140.String(),
		InterfaceFormat: "msgpack",
	}
}

// loadConfig reads path over the defaults. A missing file is only an
// error when the path was given explicitly.
func loadConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, keys[0].String())
	}
	if _, err := cfg.options(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// options converts the configuration into shader options.
func (c Config) options() (shader.Options, error) {
	opts := shader.DefaultOptions()

	version, ok := spirv.ParseVersion(c.Version)
	if !ok {
		return opts, fmt.Errorf("unsupported SPIR-V version %q", c.Version)
	}
	opts.Version = version

	layout, ok := shader.ParseLayoutRule(c.Layout)
	if !ok {
		return opts, fmt.Errorf("unknown layout %q (must be std140 or packed)", c.Layout)
	}
	opts.Layout = layout

	switch c.InterfaceFormat {
	case "msgpack", "none":
	default:
		return opts, fmt.Errorf("unknown interface_format %q (must be msgpack or none)", c.InterfaceFormat)
	}
	return opts, nil
}
