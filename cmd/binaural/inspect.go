// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ik5/binaural"
	"github.com/ik5/binaural/analysis"
)

func runInspect(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	window := fs.Int("window", 0, "Frames used for frequency detection (default: one second)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("inspect: no files given")
	}

	reg := binaural.NewRegistry()

	var errs []error
	for _, path := range fs.Args() {
		r, err := binaural.InspectFileWith(reg, path, *window)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		printReport(stdout, path, r)
	}

	return errors.Join(errs...)
}

func printReport(w io.Writer, path string, r *analysis.Report) {
	fmt.Fprintf(w, "%s: %d Hz, %d channels, %d frames (%s)\n",
		path, r.SampleRate, r.Channels, r.Frames, r.Duration)

	for c, st := range r.Stats {
		fmt.Fprintf(w, "  channel %d: peak %.2f dBFS, rms %.4f, dominant %.2f Hz\n",
			c, st.PeakDBFS(), st.RMS, st.DominantHz)
	}

	if r.Channels == 2 {
		fmt.Fprintf(w, "  beat: %.2f Hz\n", r.BeatHz())
	}
}
