package sza

import (
	"image"
	"testing"

	"badc0de.net/pkg/go-sza/ttesting"
)

// makeAnimation builds an animation directly from frame dimensions and
// durations, bypassing the archive reader.
func makeAnimation(t *testing.T, dims [][2]int, durationsMS []int) *Animation {
	t.Helper()
	frames := make([]Frame, 0, len(dims))
	for i, d := range dims {
		f, err := NewFrame(image.NewRGBA(image.Rect(0, 0, d[0], d[1])), durationsMS[i])
		if err != nil {
			t.Fatalf("building %dx%d frame: %v", d[0], d[1], err)
		}
		frames = append(frames, f)
	}
	a, err := NewAnimation(frames)
	if err != nil {
		t.Fatalf("building animation: %v", err)
	}
	return a
}

func TestScaledByOne(t *testing.T) {
	a := makeAnimation(t, [][2]int{{10, 20}, {30, 5}}, []int{50, 75})
	s, err := a.Scaled(1.0)
	if err != nil {
		t.Fatalf("failed to scale by 1: %v", err)
	}

	ttesting.AssertEqualInt(t, "width", s.Width(), a.Width())
	ttesting.AssertEqualInt(t, "height", s.Height(), a.Height())
	ttesting.AssertEqualInt(t, "frame count", s.FrameCount(), a.FrameCount())
	for i := 0; i < s.FrameCount(); i++ {
		ttesting.AssertEqualInt(t, "frame duration", s.Frame(i).DurationMS(), a.Frame(i).DurationMS())
		ttesting.AssertEqualInt(t, "frame width", s.Frame(i).Width(), a.Frame(i).Width())
		ttesting.AssertEqualInt(t, "frame height", s.Frame(i).Height(), a.Frame(i).Height())
	}
}

func TestScaledDimensions(t *testing.T) {
	a := makeAnimation(t, [][2]int{{10, 20}, {30, 5}}, []int{50, 75})
	s, err := a.Scaled(0.5)
	if err != nil {
		t.Fatalf("failed to scale: %v", err)
	}

	ttesting.AssertEqualInt(t, "width", s.Width(), 15)
	ttesting.AssertEqualInt(t, "height", s.Height(), 10)
	ttesting.AssertEqualInt(t, "frame 0 width", s.Frame(0).Width(), 5)
	ttesting.AssertEqualInt(t, "frame 0 height", s.Frame(0).Height(), 10)
	ttesting.AssertEqualInt(t, "frame 1 width", s.Frame(1).Width(), 15)
	// round(5 * 0.5) rounds half away from zero.
	ttesting.AssertEqualInt(t, "frame 1 height", s.Frame(1).Height(), 3)
}

func TestScaledBoundsScaledDirectly(t *testing.T) {
	// Bounds come from rescaling the source bounds, not from recomputing
	// the maxima over the scaled frames.
	a := makeAnimation(t, [][2]int{{3, 3}}, []int{10})
	s, err := a.Scaled(1.5)
	if err != nil {
		t.Fatalf("failed to scale: %v", err)
	}
	ttesting.AssertEqualInt(t, "width", s.Width(), 5)
	ttesting.AssertEqualInt(t, "height", s.Height(), 5)
}

func TestScaledComposability(t *testing.T) {
	// Nested scaling rounds at every step; scale(scale(a, 0.6), 0.6)
	// yields round(round(7*0.6)*0.6) = 2, while the commuted single
	// scale by 0.36 would yield round(7*0.36) = 3. The nested result is
	// the documented behavior.
	a := makeAnimation(t, [][2]int{{7, 7}}, []int{10})

	s1, err := a.Scaled(0.6)
	if err != nil {
		t.Fatalf("failed first scale: %v", err)
	}
	ttesting.AssertEqualInt(t, "intermediate width", s1.Width(), 4)

	s2, err := s1.Scaled(0.6)
	if err != nil {
		t.Fatalf("failed second scale: %v", err)
	}
	ttesting.AssertEqualInt(t, "nested width", s2.Width(), 2)
	ttesting.AssertEqualInt(t, "nested height", s2.Height(), 2)

	direct, err := a.Scaled(0.6 * 0.6)
	if err != nil {
		t.Fatalf("failed direct scale: %v", err)
	}
	ttesting.AssertEqualInt(t, "commuted width diverges", direct.Width(), 3)
}

func TestScaledInvalidFactor(t *testing.T) {
	a := makeAnimation(t, [][2]int{{4, 4}}, []int{10})
	for name, factor := range map[string]float64{"zero": 0, "negative": -2.5} {
		s, err := a.Scaled(factor)
		ttesting.AssertErrorIs(t, name, err, ErrInvalidScaleFactor)
		if s != nil {
			t.Errorf("%s: got animation %v; want nil", name, s)
		}
	}
}

func TestScaledLeavesSourceUntouched(t *testing.T) {
	a := makeAnimation(t, [][2]int{{10, 20}, {30, 5}}, []int{50, 75})
	if _, err := a.Scaled(3); err != nil {
		t.Fatalf("failed to scale: %v", err)
	}

	ttesting.AssertEqualInt(t, "width", a.Width(), 30)
	ttesting.AssertEqualInt(t, "height", a.Height(), 20)
	ttesting.AssertEqualInt(t, "frame 0 width", a.Frame(0).Width(), 10)
	ttesting.AssertEqualInt(t, "frame 0 duration", a.Frame(0).DurationMS(), 50)
}
