// SPDX-License-Identifier: EPL-2.0

// Command binaural writes binaural-beat WAV files and inspects audio files.
//
// Usage:
//
//	binaural [generate] [options]
//	binaural inspect [-window frames] file...
//	binaural presets [-config path]
//
// Without options generate uses the "default" preset: 300 Hz left, 305 Hz
// right, 30 seconds, written to test.wav. Flags override preset values:
//
//	binaural -left-frequency 200 -right-frequency 210 -duration 600 -output focus.wav
//	binaural -preset sleep -sound-duration 50 -silence-duration 10
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "binaural: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return runGenerate(args, stdout, stderr)
	}

	switch args[0] {
	case "generate":
		return runGenerate(args[1:], stdout, stderr)
	case "inspect":
		return runInspect(args[1:], stdout, stderr)
	case "presets":
		return runPresets(args[1:], stdout, stderr)
	case "help":
		usage(stderr)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  binaural [generate] [options]     write a binaural-beat WAV file\n")
	fmt.Fprintf(w, "  binaural inspect [options] file... report levels and frequencies\n")
	fmt.Fprintf(w, "  binaural presets [options]        list configured presets\n")
	fmt.Fprintf(w, "\nRun \"binaural <command> -h\" for the options of a command.\n")
}
