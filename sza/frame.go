package sza

import (
	"image"
	"time"

	"github.com/pkg/errors"
)

// Frame is a single animation event: one decoded image displayed for a
// fixed number of milliseconds.
//
// A Frame is immutable once constructed. It is owned by the Animation it
// belongs to and is only ever created by the decoder or the scaler.
type Frame struct {
	img        image.Image
	durationMS int
}

// NewFrame wraps an image and its display duration into a Frame.
//
// The duration must be positive and the image must be non-empty.
func NewFrame(img image.Image, durationMS int) (Frame, error) {
	if durationMS <= 0 {
		return Frame{}, errors.Wrapf(ErrInvalidDuration, "got %dms", durationMS)
	}
	sz := img.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return Frame{}, errors.Wrapf(ErrImageDecode, "empty %dx%d image", sz.X, sz.Y)
	}
	return Frame{img: img, durationMS: durationMS}, nil
}

// Image returns the frame's decoded image.
func (f Frame) Image() image.Image {
	return f.img
}

// DurationMS returns how long the frame should stay on screen, in
// milliseconds.
func (f Frame) DurationMS() int {
	return f.durationMS
}

// Duration returns the frame's display duration as a time.Duration.
func (f Frame) Duration() time.Duration {
	return time.Duration(f.durationMS) * time.Millisecond
}

// Width returns the frame image's width in pixels.
func (f Frame) Width() int {
	return f.img.Bounds().Dx()
}

// Height returns the frame image's height in pixels.
func (f Frame) Height() int {
	return f.img.Bounds().Dy()
}
