package imageprint

import (
	"fmt"

	"badc0de.net/pkg/go-sza/sza"
)

// PrintAnimation draws every frame of the animation in order, with a
// caption noting each frame's size and display duration.
func PrintAnimation(a *sza.Animation, o Options) {
	fmt.Printf("animation: %dx%d, %d frames\n", a.Width(), a.Height(), a.FrameCount())
	i := 0
	for f := range a.Frames() {
		fmt.Printf("frame %d: %dx%d, %dms\n", i, f.Width(), f.Height(), f.DurationMS())
		Print(f.Image(), o)
		i++
	}
}
