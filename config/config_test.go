// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ik5/binaural/synth"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "console")
	}

	p, err := cfg.Preset("")
	if err != nil {
		t.Fatalf("Preset(\"\") error = %v", err)
	}
	want := Preset{LeftFrequency: 300, RightFrequency: 305, Duration: 30, Output: "test.wav"}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("default preset = %+v, want %+v", p, want)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() of missing file = %+v, want defaults", cfg)
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "debug"
format = "json"

[presets.focus]
left_frequency = 200.0
right_frequency = 214.0
duration = 600.0
sound_duration = 50.0
silence_duration = 0.0
output = "focus.wav"
strict = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want debug/json", cfg.Log)
	}

	if got := cfg.PresetNames(); !reflect.DeepEqual(got, []string{"default", "focus"}) {
		t.Errorf("PresetNames() = %v, want [default focus]", got)
	}

	p, err := cfg.Preset("focus")
	if err != nil {
		t.Fatalf("Preset(focus) error = %v", err)
	}
	if p.SoundDuration == nil || *p.SoundDuration != 50 {
		t.Errorf("SoundDuration = %v, want 50", p.SoundDuration)
	}
	// an explicit zero must survive decoding as a non-nil pointer
	if p.SilenceDuration == nil || *p.SilenceDuration != 0 {
		t.Errorf("SilenceDuration = %v, want explicit 0", p.SilenceDuration)
	}
	if !p.Strict {
		t.Error("Strict = false, want true")
	}
}

func TestLoadOverridesDefaultPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[presets.default]
left_frequency = 100.0
right_frequency = 110.0
duration = 5.0
output = "out.wav"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	p, _ := cfg.Preset(DefaultPreset)
	if p.LeftFrequency != 100 || p.Output != "out.wav" {
		t.Errorf("default preset = %+v, want file values", p)
	}
	// [log] is absent from the file so defaults remain
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default %q", cfg.Log.Level, "info")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown key", "[presets.x]\nleft_frequecy = 1.0\n", ErrUnknownKeys},
		{"bad level", "[log]\nlevel = \"loud\"\n", ErrInvalidValue},
		{"bad format", "[log]\nformat = \"xml\"\n", ErrInvalidValue},
		{"syntax", "[log\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := Default()
	cfg.Log.Format = "json"
	cfg.Presets["sleep"] = Preset{
		LeftFrequency:   100,
		RightFrequency:  102.5,
		Duration:        1800,
		SoundDuration:   synth.Seconds(30),
		SilenceDuration: synth.Seconds(0),
		Output:          "sleep.wav",
		FalsyDefaults:   true,
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the config", len(entries))
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Default().Preset("nope")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Preset() error = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetRequest(t *testing.T) {
	p := Preset{
		LeftFrequency:   300,
		RightFrequency:  305,
		Duration:        30,
		SoundDuration:   synth.Seconds(5),
		SilenceDuration: synth.Seconds(1),
		Output:          "x.wav",
		Strict:          true,
	}

	r := p.Request()
	if r.LeftFrequency != 300 || r.RightFrequency != 305 || r.FileDuration != 30 || r.FileName != "x.wav" {
		t.Errorf("Request() = %+v", r)
	}
	if *r.SoundDuration != 5 || *r.SilenceDuration != 1 || !r.Strict {
		t.Errorf("Request() optional fields = %+v", r)
	}

	// the request must not alias the preset
	*r.SoundDuration = 9
	if *p.SoundDuration != 5 {
		t.Error("Request() shares SoundDuration with the preset")
	}

	if got := (Preset{Duration: 1}).Request(); got.SoundDuration != nil || got.SilenceDuration != nil {
		t.Errorf("Request() without optional fields = %+v, want nil durations", got)
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if p == "" {
		t.Skip("no home directory")
	}
	if filepath.Base(p) != "config.toml" || filepath.Base(filepath.Dir(p)) != "binaural" {
		t.Errorf("DefaultPath() = %q", p)
	}
}
