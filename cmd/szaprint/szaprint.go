// szaprint decodes a zipped animation archive and prints its frames on
// the terminal.
package main

import (
	"flag"
	"io"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-sza/imageprint"
	"badc0de.net/pkg/go-sza/paths"
	"badc0de.net/pkg/go-sza/sza"
)

var (
	szaURL  = flag.String("url", "", "URL of the animation archive to print (overrides -sza_path)")
	frameID = flag.Int("frame", -1, "frame to print; -1 prints every frame")
	scale   = flag.Float64("scale", 1, "scale factor to apply before printing")
	thumb   = flag.Uint("thumb", 0, "if nonzero, downsize frames to fit a square of this many pixels")
	col256  = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm   = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm = flag.Bool("rasterm", false, "whether to print with a native image protocol (kitty, iterm, sixel)")
	blanks  = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")

	szaPath string
)

func szaOpen() (io.ReadCloser, error) {
	if *szaURL != "" {
		return paths.OpenURL(*szaURL)
	}
	return paths.NoFindOpen(szaPath)
}

func printOptions() imageprint.Options {
	o := imageprint.Options{Mode: imageprint.Mode24Bit, Blanks: *blanks}
	if *col256 {
		o.Mode = imageprint.Mode256Color
	}
	if *iterm {
		o.Mode = imageprint.ModeITerm
	}
	if *rasterm {
		o.Mode = imageprint.ModeRasTerm
	}
	return o
}

func main() {
	paths.SetupFilePathFlag("demo.sza", "sza_path", &szaPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	f, err := szaOpen()
	if err != nil {
		glog.Errorf("could not open animation archive: %v", err)
		os.Exit(1)
	}

	a, err := sza.Decode(f)
	f.Close()
	if err != nil {
		glog.Errorf("could not decode animation archive: %v", err)
		os.Exit(1)
	}

	if *scale != 1 {
		a, err = a.Scaled(*scale)
		if err != nil {
			glog.Errorf("could not scale animation: %v", err)
			os.Exit(1)
		}
	}

	o := printOptions()
	if *frameID >= 0 {
		if *frameID >= a.FrameCount() {
			glog.Errorf("no frame %d; animation has %d frames", *frameID, a.FrameCount())
			os.Exit(1)
		}
		img := a.Frame(*frameID).Image()
		if *thumb > 0 {
			img = resize.Thumbnail(*thumb, *thumb, img, resize.Lanczos3)
		}
		imageprint.Print(img, o)
		return
	}

	if *thumb > 0 {
		// Downsizing frame by frame keeps the captions honest about the
		// decoded sizes, so thumbnail before the captioned print only
		// when printing a single frame.
		glog.Warning("-thumb is ignored when printing the whole animation")
	}
	imageprint.PrintAnimation(a, o)
}
