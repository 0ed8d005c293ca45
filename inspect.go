// SPDX-License-Identifier: EPL-2.0

package binaural

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/binaural/analysis"
	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/formats/aiff"
	"github.com/ik5/binaural/formats/mp3"
	"github.com/ik5/binaural/formats/vorbis"
	"github.com/ik5/binaural/formats/wav"
)

// NewRegistry returns a registry with every decoder this module ships,
// keyed by file extension.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

// InspectFile decodes the file at path, choosing the decoder by extension,
// and analyses it. window is passed to analysis.Inspect.
func InspectFile(path string, window int) (*analysis.Report, error) {
	return InspectFileWith(NewRegistry(), path, window)
}

// InspectFileWith is InspectFile with a caller supplied registry.
func InspectFileWith(reg *audio.Registry, path string, window int) (*analysis.Report, error) {
	dec, err := reg.Lookup(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	report, err := analysis.Inspect(src, window)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}

	return report, nil
}
