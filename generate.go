// SPDX-License-Identifier: EPL-2.0

package binaural

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/binaural/formats/wav"
	"github.com/ik5/binaural/synth"
)

// wavHeaderSize is the canonical RIFF/WAVE header written by formats/wav.
const wavHeaderSize = 44

// Summary describes a generated file.
type Summary struct {
	Path    string
	Plan    synth.Plan
	Frames  int
	BeatHz  float64
	Bytes   int64
	Elapsed time.Duration
}

// Generate synthesizes the track described by req and writes it to
// req.FileName as a 96 kHz 16-bit stereo WAV file.
//
// A block longer than the file produces a valid file with no audio. An
// existing file at req.FileName is replaced only when encoding succeeds.
// A nil logger disables logging.
func Generate(req synth.Request, logger *zap.Logger) (*Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if req.FileName == "" {
		return nil, ErrNoFileName
	}

	stream, plan, err := synth.Open(req)
	if err != nil {
		return nil, fmt.Errorf("resolving request: %w", err)
	}
	defer stream.Close()

	beat := math.Abs(req.LeftFrequency - req.RightFrequency)

	logger.Debug("resolved plan",
		zap.String("path", req.FileName),
		zap.Float64("left_hz", req.LeftFrequency),
		zap.Float64("right_hz", req.RightFrequency),
		zap.Float64("sound_s", plan.SoundDuration),
		zap.Float64("silence_s", plan.SilenceDuration),
		zap.Int("repetitions", plan.Repetitions),
		zap.Int("block_frames", plan.BlockFrames()),
	)
	if plan.TotalFrames() == 0 {
		logger.Warn("block does not fit in the file, writing an empty track",
			zap.Float64("block_s", plan.SoundDuration+plan.SilenceDuration),
			zap.Float64("file_s", plan.FileDuration),
		)
	}

	start := time.Now()
	frames, err := wav.WriteFile(req.FileName, stream)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Path:    req.FileName,
		Plan:    plan,
		Frames:  frames,
		BeatHz:  beat,
		Bytes:   wavHeaderSize + int64(frames)*synth.Channels*synth.BitDepth/8,
		Elapsed: time.Since(start),
	}

	logger.Info("wrote binaural file",
		zap.String("path", s.Path),
		zap.Int("frames", s.Frames),
		zap.Duration("duration", plan.Duration()),
		zap.Float64("beat_hz", s.BeatHz),
		zap.Int64("bytes", s.Bytes),
		zap.Duration("elapsed", s.Elapsed),
	)

	return s, nil
}
