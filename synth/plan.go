// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"time"
)

// Plan is a Request with its defaults applied and its frame counts derived.
type Plan struct {
	FileDuration    float64
	SoundDuration   float64
	SilenceDuration float64

	Repetitions   int
	SoundFrames   int
	SilenceFrames int
}

// BlockFrames is the length of one sound+silence block.
func (p Plan) BlockFrames() int { return p.SoundFrames + p.SilenceFrames }

// TotalFrames is the number of frames in the output.
func (p Plan) TotalFrames() int { return p.Repetitions * p.BlockFrames() }

// Duration is the playing time of the output.
func (p Plan) Duration() time.Duration {
	return time.Duration(float64(p.TotalFrames()) / SampleRate * float64(time.Second))
}

func (p Plan) String() string {
	return fmt.Sprintf("%d x (%d sound + %d silence) frames = %d frames (%s)",
		p.Repetitions, p.SoundFrames, p.SilenceFrames, p.TotalFrames(), p.Duration())
}

// Resolve applies defaults to r and computes how the block is repeated.
//
// A block longer than the file yields zero repetitions and therefore an
// empty track; that is not an error. Outside strict mode negative
// durations count as zero.
func Resolve(r Request) (Plan, error) {
	if r.Strict {
		if err := r.Validate(); err != nil {
			return Plan{}, err
		}
	}

	sound, ok := r.soundDuration()
	if !ok {
		sound = r.FileDuration
	}

	silence, _ := r.silenceDuration()

	for _, c := range []struct {
		name string
		v    float64
	}{
		{"file_duration", r.FileDuration},
		{"sound_duration", sound},
		{"silence_duration", silence},
	} {
		if err := finite(c.name, c.v); err != nil {
			return Plan{}, err
		}
	}

	total := sound + silence
	if total == 0 {
		return Plan{}, ErrZeroBlock
	}

	p := Plan{
		FileDuration:    r.FileDuration,
		SoundDuration:   sound,
		SilenceDuration: silence,
		Repetitions:     repetitions(r.FileDuration, total),
		SoundFrames:     FramesFor(sound),
		SilenceFrames:   FramesFor(silence),
	}

	if p.BlockFrames() > 0 && p.Repetitions > maxFrames/p.BlockFrames() {
		return Plan{}, fmt.Errorf("%w: %d repetitions of %d frames", ErrTooLong, p.Repetitions, p.BlockFrames())
	}

	return p, nil
}

func repetitions(file, block float64) int {
	ratio := file / block
	if !(ratio > 0) {
		return 0
	}
	if ratio > maxFrames {
		// Caught by the size check in Resolve unless the block is empty.
		ratio = maxFrames
	}

	return int(math.Floor(ratio + frameTolerance))
}
