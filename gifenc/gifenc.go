// Package gifenc encodes a decoded animation into an animated GIF.
//
// Frame durations carry over as GIF delays, so the exported file plays
// back with the timing the descriptor asked for.
package gifenc

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/andybons/gogif"

	"badc0de.net/pkg/go-sza/sza"
)

// Encode writes the animation to w as an animated GIF.
func Encode(w io.Writer, a *sza.Animation) error {
	g := gif.GIF{
		// The logical screen must fit every frame, not just the first.
		Config: image.Config{Width: a.Width(), Height: a.Height()},
	}

	quantizer := gogif.MedianCutQuantizer{NumColor: 255} // Up to 255 colors plus 1 space for transparency.
	for f := range a.Frames() {
		img := f.Image()

		pal := image.NewPaletted(img.Bounds(), nil)
		quantizer.Quantize(pal, img.Bounds(), img, image.ZP)

		// gogif's MedianCutQuantizer has no palette-only mode, so the
		// image gets copied twice: once while quantizing, once more to
		// slot color.Transparent in as palette index 0.
		palTransparent := image.NewPaletted(img.Bounds(), append(color.Palette([]color.Color{color.Transparent}), pal.Palette...))
		draw.Draw(palTransparent, img.Bounds(), img, image.ZP, draw.Over)

		g.Image = append(g.Image, palTransparent)
		g.Delay = append(g.Delay, delayTicks(f.DurationMS()))
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0 // image.Transparent

	return gif.EncodeAll(w, &g)
}

// delayTicks converts milliseconds to GIF's 10ms ticks. Frames shorter
// than a tick still get one, so they stay visible.
func delayTicks(ms int) int {
	t := (ms + 5) / 10
	if t < 1 {
		t = 1
	}
	return t
}
