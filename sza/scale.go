package sza

import (
	"math"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Scaled returns a new Animation with every frame resized by the passed
// factor using bicubic interpolation. Frame durations are preserved.
//
// The new Animation's bounds are the source bounds rescaled directly,
// round(width*factor) and round(height*factor), rather than recomputed as
// the maxima over the scaled frames. The two can diverge by rounding;
// the direct rescale is the intended semantic.
//
// The source Animation is not touched; the two share no state.
func (a *Animation) Scaled(factor float64) (*Animation, error) {
	if factor <= 0 {
		return nil, errors.Wrapf(ErrInvalidScaleFactor, "got %g", factor)
	}

	frames := make([]Frame, 0, len(a.frames))
	for _, f := range a.frames {
		w := scaleDim(f.Width(), factor)
		h := scaleDim(f.Height(), factor)
		img := resize.Resize(uint(w), uint(h), f.img, resize.Bicubic)
		frames = append(frames, Frame{img: img, durationMS: f.durationMS})
	}

	return &Animation{
		frames: frames,
		width:  scaleDim(a.width, factor),
		height: scaleDim(a.height, factor),
	}, nil
}

// scaleDim rounds dim*factor to the nearest pixel, never below one, so a
// tiny factor cannot produce an empty frame.
func scaleDim(dim int, factor float64) int {
	d := int(math.Round(float64(dim) * factor))
	if d < 1 {
		d = 1
	}
	return d
}
