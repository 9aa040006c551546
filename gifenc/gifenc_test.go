package gifenc

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"badc0de.net/pkg/go-sza/sza"
	"badc0de.net/pkg/go-sza/ttesting"
)

func makeAnimation(t *testing.T, durationsMS ...int) *sza.Animation {
	t.Helper()
	frames := make([]sza.Frame, 0, len(durationsMS))
	for i, ms := range durationsMS {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.Set(x, y, color.RGBA{R: uint8(40 * i), G: uint8(x * 16), B: uint8(y * 16), A: 0xFF})
			}
		}
		f, err := sza.NewFrame(img, ms)
		if err != nil {
			t.Fatalf("building frame %d: %v", i, err)
		}
		frames = append(frames, f)
	}
	a, err := sza.NewAnimation(frames)
	if err != nil {
		t.Fatalf("building animation: %v", err)
	}
	return a
}

func TestEncode(t *testing.T) {
	a := makeAnimation(t, 50, 75, 120)

	buf := &bytes.Buffer{}
	if err := Encode(buf, a); err != nil {
		t.Fatalf("failed to encode gif: %v", err)
	}

	g, err := gif.DecodeAll(buf)
	if err != nil {
		t.Fatalf("failed to decode the encoded gif: %v", err)
	}

	ttesting.AssertEqualInt(t, "frame count", len(g.Image), 3)
	ttesting.AssertEqualInt(t, "delay 0", g.Delay[0], 5)
	ttesting.AssertEqualInt(t, "delay 1", g.Delay[1], 8)
	ttesting.AssertEqualInt(t, "delay 2", g.Delay[2], 12)
	ttesting.AssertEqualInt(t, "frame 0 width", g.Image[0].Bounds().Dx(), 8)
}

func TestEncodeShortFrameGetsOneTick(t *testing.T) {
	a := makeAnimation(t, 3)

	buf := &bytes.Buffer{}
	if err := Encode(buf, a); err != nil {
		t.Fatalf("failed to encode gif: %v", err)
	}

	g, err := gif.DecodeAll(buf)
	if err != nil {
		t.Fatalf("failed to decode the encoded gif: %v", err)
	}
	ttesting.AssertEqualInt(t, "delay", g.Delay[0], 1)
}
