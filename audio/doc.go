// SPDX-License-Identifier: EPL-2.0

// Package audio defines the sample stream shared by the synthesizer, the
// encoders and the decoders.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float64 values, nominally in [-1, 1].
// ReadSamples returns the number of values written, not frames, and io.EOF
// once the stream is finished; the final batch may come together with
// io.EOF. Sources that know their length up front also implement Sized.
//
// # Registry
//
// A Registry maps format keys to Decoders. Keys are case-insensitive and a
// leading dot is dropped, so a file extension can be used as is:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.Lookup(filepath.Ext(path))
//
// # Seeking
//
// go-audio decoders and encoders need io.Seeker. AsReadSeeker adapts a plain
// reader by buffering it, and WriteBuffer is an in-memory io.WriteSeeker.
package audio
