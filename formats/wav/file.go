// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"os"
	"path/filepath"

	"github.com/ik5/binaural/audio"
)

// WriteFile encodes src into the file at path.
//
// The data is written to a temporary file next to path and renamed into
// place once the encoder has flushed and synced it, so path either holds a
// complete WAV file or is left untouched. Any failure is returned as an
// *EncodingError.
func WriteFile(path string, src audio.Source) (int, error) {
	dir := filepath.Dir(path)

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, &EncodingError{Path: path, Op: "create", Err: err}
	}
	tmp := f.Name()

	frames, err := Encode(f, src)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return 0, &EncodingError{Path: path, Op: "encode", Err: err}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return 0, &EncodingError{Path: path, Op: "close", Err: err}
	}

	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return 0, &EncodingError{Path: path, Op: "chmod", Err: err}
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, &EncodingError{Path: path, Op: "rename", Err: err}
	}

	return frames, nil
}
