package core

import (
	"image/color"
	"testing"
)

func TestRGB_Blend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Expected %v at alpha 0, got %v", dst, got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Expected %v at alpha 1, got %v", src, got)
	}
	if got := dst.Blend(src, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected half blend {100 50 25}, got %v", got)
	}
	if got := dst.Blend(src, 3); got != src {
		t.Errorf("Expected alpha above 1 to clamp, got %v", got)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 12, G: 34, B: 56, A: 255})
	if got != (RGB{12, 34, 56}) {
		t.Errorf("Expected {12 34 56}, got %v", got)
	}
}
