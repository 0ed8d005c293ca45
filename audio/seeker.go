// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
)

// AsReadSeeker returns r itself when it can seek, otherwise it buffers the
// remaining input in memory. Decoders built on go-audio need to seek.
func AsReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}

// WriteBuffer is an in-memory io.WriteSeeker for encoders that patch their
// headers after the data is written.
type WriteBuffer struct {
	buf []byte
	pos int
}

func (wb *WriteBuffer) Write(p []byte) (int, error) {
	end := wb.pos + len(p)
	if end > len(wb.buf) {
		wb.buf = append(wb.buf, make([]byte, end-len(wb.buf))...)
	}
	copy(wb.buf[wb.pos:], p)
	wb.pos = end

	return len(p), nil
}

func (wb *WriteBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int
	switch whence {
	case io.SeekStart:
		pos = int(offset)
	case io.SeekCurrent:
		pos = wb.pos + int(offset)
	case io.SeekEnd:
		pos = len(wb.buf) + int(offset)
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 || pos > len(wb.buf) {
		return 0, fmt.Errorf("seek position %d out of bounds [0, %d]", pos, len(wb.buf))
	}
	wb.pos = pos

	return int64(pos), nil
}

// Bytes returns the written content.
func (wb *WriteBuffer) Bytes() []byte { return wb.buf }

// Len returns the number of bytes written.
func (wb *WriteBuffer) Len() int { return len(wb.buf) }
