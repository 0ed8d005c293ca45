// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/ik5/binaural"
	"github.com/ik5/binaural/config"
	"github.com/ik5/binaural/synth"
)

type generateOptions struct {
	request synth.Request
	config  *config.Config
	verbose bool
}

// parseGenerate resolves the request from the config preset and the flags
// that were given explicitly. An optional duration counts as given only
// when its flag appears on the command line, so "-silence-duration 0"
// differs from leaving it out.
func parseGenerate(args []string, stderr io.Writer) (*generateOptions, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	left := fs.Float64("left-frequency", 0, "Left channel frequency in Hz")
	right := fs.Float64("right-frequency", 0, "Right channel frequency in Hz")
	duration := fs.Float64("duration", 0, "File duration in seconds")
	sound := fs.Float64("sound-duration", 0, "Tone length of each block in seconds (default: the file duration)")
	silence := fs.Float64("silence-duration", 0, "Silence after each tone in seconds (default: none)")
	output := fs.String("output", "", "Output WAV file")
	preset := fs.String("preset", config.DefaultPreset, "Preset to start from")
	cfgPath := fs.String("config", config.DefaultPath(), "Config file")
	strict := fs.Bool("strict", false, "Reject non-positive frequencies and durations")
	falsy := fs.Bool("falsy-defaults", false, "Treat an explicit zero sound or silence duration as not given")
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return nil, err
	}

	p, err := cfg.Preset(*preset)
	if err != nil {
		return nil, err
	}
	req := p.Request()

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "left-frequency":
			req.LeftFrequency = *left
		case "right-frequency":
			req.RightFrequency = *right
		case "duration":
			req.FileDuration = *duration
		case "sound-duration":
			req.SoundDuration = synth.Seconds(*sound)
		case "silence-duration":
			req.SilenceDuration = synth.Seconds(*silence)
		case "output":
			req.FileName = *output
		case "strict":
			req.Strict = *strict
		case "falsy-defaults":
			req.FalsyDefaults = *falsy
		}
	})

	return &generateOptions{
		request: req,
		config:  cfg,
		verbose: *verbose,
	}, nil
}

func runGenerate(args []string, stdout, stderr io.Writer) error {
	opts, err := parseGenerate(args, stderr)
	if err != nil {
		return err
	}

	logger, err := opts.config.Log.Logger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s, err := binaural.Generate(opts.request, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d frames (%s), %.2f Hz beat\n", s.Path, s.Frames, s.Plan.Duration(), s.BeatHz)

	return nil
}
