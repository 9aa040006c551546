package ttesting

import (
	"errors"
	"strings"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func AssertErrorIs(t *testing.T, name string, got, want error) {
	t.Run(name, func(t *testing.T) {
		if !errors.Is(got, want) {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

func AssertErrorContains(t *testing.T, name string, got error, want string) {
	t.Run(name, func(t *testing.T) {
		if got == nil || !strings.Contains(got.Error(), want) {
			t.Errorf("got %v; want mention of %q", got, want)
		}
	})
}
