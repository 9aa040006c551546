package sza

import (
	"iter"

	"github.com/pkg/errors"
)

// Animation is an immutable, ordered sequence of frames plus the bounding
// width and height over all of them.
//
// An Animation is only ever observed fully formed: Decode and Scaled
// either return a complete Animation or an error, never a partially
// built one. Because nothing is mutable after construction, a single
// Animation may be read from multiple goroutines without locking.
type Animation struct {
	frames []Frame

	// Maximum width and height of the individual frames, except in an
	// Animation produced by Scaled, where they are the source bounds
	// rescaled directly (see Scaled).
	width, height int
}

// NewAnimation freezes an ordered frame sequence into an Animation,
// deriving the bounds as the per-frame maxima. The sequence must be
// non-empty. The slice is copied, so the caller cannot reach into the
// Animation afterwards.
func NewAnimation(frames []Frame) (*Animation, error) {
	if len(frames) == 0 {
		return nil, errors.New("sza: animation must have at least one frame")
	}
	a := &Animation{frames: append([]Frame(nil), frames...)}
	for _, f := range frames {
		if f.Width() > a.width {
			a.width = f.Width()
		}
		if f.Height() > a.height {
			a.height = f.Height()
		}
	}
	return a, nil
}

// Width returns the largest width of all the frames in the animation.
func (a *Animation) Width() int {
	return a.width
}

// Height returns the largest height of all the frames in the animation.
func (a *Animation) Height() int {
	return a.height
}

// FrameCount returns the number of frames in the animation.
func (a *Animation) FrameCount() int {
	return len(a.frames)
}

// Frame returns the i-th frame, in descriptor order.
func (a *Animation) Frame(i int) Frame {
	return a.frames[i]
}

// Frames iterates over the frames in descriptor order. The sequence is
// restartable; each range starts a fresh traversal.
func (a *Animation) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for _, f := range a.frames {
			if !yield(f) {
				return
			}
		}
	}
}
