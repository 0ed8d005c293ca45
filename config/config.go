// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ik5/binaural/synth"
)

// DefaultPreset is the preset used when none is named.
const DefaultPreset = "default"

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn or error
	Format string `toml:"format"` // console or json
}

// Preset is a named generation request.
type Preset struct {
	LeftFrequency   float64  `toml:"left_frequency"`
	RightFrequency  float64  `toml:"right_frequency"`
	Duration        float64  `toml:"duration"`
	SoundDuration   *float64 `toml:"sound_duration"`
	SilenceDuration *float64 `toml:"silence_duration"`
	Output          string   `toml:"output"`
	Strict          bool     `toml:"strict,omitempty"`
	FalsyDefaults   bool     `toml:"falsy_defaults,omitempty"`
}

// Request converts the preset into a synthesis request.
func (p Preset) Request() synth.Request {
	r := synth.Request{
		LeftFrequency:  p.LeftFrequency,
		RightFrequency: p.RightFrequency,
		FileDuration:   p.Duration,
		FileName:       p.Output,
		Strict:         p.Strict,
		FalsyDefaults:  p.FalsyDefaults,
	}
	if p.SoundDuration != nil {
		r.SoundDuration = synth.Seconds(*p.SoundDuration)
	}
	if p.SilenceDuration != nil {
		r.SilenceDuration = synth.Seconds(*p.SilenceDuration)
	}

	return r
}

// Config is the top-level configuration.
type Config struct {
	Log     LogConfig         `toml:"log"`
	Presets map[string]Preset `toml:"presets"`
}

// Default returns a Config populated with all default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Presets: map[string]Preset{
			DefaultPreset: {
				LeftFrequency:  300,
				RightFrequency: 305,
				Duration:       30,
				Output:         "test.wav",
			},
		},
	}
}

// Preset returns the named preset. An empty name selects DefaultPreset.
func (c *Config) Preset(name string) (Preset, error) {
	if name == "" {
		name = DefaultPreset
	}

	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return p, nil
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Validate checks the log settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidValue, c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// DefaultPath returns the default config file path (~/.config/binaural/config.toml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "binaural", "config.toml")
}

// Save writes the config as TOML to the given path, creating parent
// directories if needed. The file is written to a temporary name and
// renamed into place.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".binaural-config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// Load reads the TOML config from path. If the file does not exist,
// it returns the default config without error. Presets in the file are
// added to the built-in ones, replacing any with the same name.
//
// Keys the config does not know about are reported as ErrUnknownKeys.
func Load(path string) (*Config, error) {
	cfg := Default()

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKeys, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
