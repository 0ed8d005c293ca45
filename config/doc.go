// SPDX-License-Identifier: EPL-2.0

// Package config loads the binaural TOML configuration: log settings and
// named generation presets.
//
//	[log]
//	level = "info"
//	format = "console"
//
//	[presets.focus]
//	left_frequency = 200.0
//	right_frequency = 214.0
//	duration = 600.0
//	sound_duration = 50.0
//	silence_duration = 10.0
//	output = "focus.wav"
//
// A preset "default" (300 Hz / 305 Hz, 30 seconds, test.wav) is always
// present unless the file overrides it.
package config
