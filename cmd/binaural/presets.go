// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ik5/binaural/config"
)

func runPresets(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", config.DefaultPath(), "Config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLEFT\tRIGHT\tDURATION\tSOUND\tSILENCE\tOUTPUT")
	for _, name := range cfg.PresetNames() {
		p := cfg.Presets[name]
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%s\t%s\t%s\n",
			name, p.LeftFrequency, p.RightFrequency, p.Duration,
			optional(p.SoundDuration), optional(p.SilenceDuration), p.Output)
	}

	return tw.Flush()
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}
