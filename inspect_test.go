// SPDX-License-Identifier: EPL-2.0

package binaural

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/synth"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Equal(t, []string{"aif", "aiff", "mp3", "oga", "ogg", "wav", "wave"}, r.Formats())

	for _, ext := range []string{".WAV", "mp3", ".Ogg", "aiff"} {
		_, err := r.Lookup(ext)
		assert.NoError(t, err, ext)
	}
}

func TestInspectFile_GeneratedBeat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "beat.wav")
	_, err := Generate(synth.Request{
		LeftFrequency:  200,
		RightFrequency: 207,
		FileDuration:   1.5,
		FileName:       path,
	}, nil)
	require.NoError(t, err)

	r, err := InspectFile(path, 0)
	require.NoError(t, err)

	assert.Equal(t, 96000, r.SampleRate)
	assert.Equal(t, 2, r.Channels)
	assert.Equal(t, 144000, r.Frames)
	assert.InDelta(t, 200, r.Stats[0].DominantHz, 0.5)
	assert.InDelta(t, 207, r.Stats[1].DominantHz, 0.5)
	assert.InDelta(t, 7, r.BeatHz(), 0.5)
	assert.InDelta(t, 16384.0/32768, r.Stats[0].Peak, 1e-9)
}

func TestInspectFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := InspectFile(filepath.Join(dir, "song.flac"), 0)
	assert.ErrorIs(t, err, audio.ErrUnknownFormat)

	_, err = InspectFile(filepath.Join(dir, "missing.wav"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bogus := filepath.Join(dir, "bogus.wav")
	require.NoError(t, os.WriteFile(bogus, []byte("not audio at all"), 0o644))
	_, err = InspectFile(bogus, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bogus.wav")
}
