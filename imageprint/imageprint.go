// Package imageprint prints images and animation frames on a terminal.
// UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/gookit/color"
)

// Mode selects the terminal rendering technique.
type Mode int

const (
	// Mode24Bit draws colored cells using 24-bit color escape sequences.
	Mode24Bit Mode = iota
	// Mode256Color draws colored cells using the 256-color palette.
	Mode256Color
	// ModeNoColor draws shade characters without color escapes.
	ModeNoColor
	// ModeITerm emits iTerm2's inline-image escape sequence.
	ModeITerm
	// ModeRasTerm picks a native image protocol (kitty, iTerm, sixel).
	ModeRasTerm
)

// Options controls how Print renders an image.
type Options struct {
	Mode Mode

	// Blanks uses colored blanks instead of bad ascii art for the cell
	// modes.
	Blanks bool
}

// Print draws a single image on the terminal.
func Print(i image.Image, o Options) {
	switch o.Mode {
	case ModeITerm:
		printITerm(i, "image.png")
	case ModeRasTerm:
		printRasTerm(i)
	default:
		printCells(i, o)
	}
}

func printCells(i image.Image, o Options) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(i.At(x, y), o)
		}
		if o.Mode != ModeNoColor {
			fmt.Printf("\x1b[0m")
		}
		fmt.Printf("\n")
	}
}

type dumper interface {
	Printf(s string, arg ...interface{})
}

type fmtDumperT struct{}

func (fmtDumperT) Printf(s string, arg ...interface{}) {
	fmt.Printf(s, arg...)
}

var fmtDumper fmtDumperT

func shade(col ic.Color, o Options) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Printf("\x1b[0m  ")
		return
	}

	var d dumper
	switch o.Mode {
	case ModeNoColor:
		d = &fmtDumper
	case Mode24Bit:
		fmt.Printf("\x1b[48;2;%d;%d;%dm", uint8(cR), uint8(cG), uint8(cB))
		d = &fmtDumper
	default:
		d = color.RGB(uint8(cR), uint8(cG), uint8(cB), true)
	}

	if o.Blanks {
		d.Printf("  ")
	} else {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			d.Printf("..")
		case a < 64:
			d.Printf("--")
		case a < 128:
			d.Printf("==")
		default:
			d.Printf("##")
		}
	}

	if o.Mode == Mode24Bit {
		fmt.Printf("\x1b[0m")
	}
}

// printITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func printITerm(i image.Image, fn string) {
	if !rasterm.IsTermItermWez() {
		return
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(bEnc, i)
	fmt.Printf("\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, len(b.String()), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
}

// printRasTerm draws an image using the RasTerm library.
//
// This should enable drawing in Kitty terminal, with fallbacks for iTerm
// and sixel-capable terminals.
func printRasTerm(i image.Image) {
	if rasterm.IsTermKitty() {
		rasterm.Settings{}.KittyWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return
	}
	if rasterm.IsTermItermWez() {
		rasterm.Settings{}.ItermWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, i.Bounds(), i, image.ZP)

		rasterm.Settings{}.SixelWriteImage(os.Stdout, palettedImage)
		fmt.Printf("\n")
		return
	}
}
