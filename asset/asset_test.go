package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadImagesMixedResults(t *testing.T) {
	fsys := fstest.MapFS{
		"good.png": {Data: encodePNG(t, color.RGBA{R: 200, G: 100, B: 50, A: 255})},
		"bad.png":  {Data: []byte("not an image")},
	}

	results := LoadImages(fsys, []string{"good.png", "bad.png", "missing.png"})
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if !results[0].OK() {
		t.Errorf("Expected good.png to load, got %v", results[0].Err)
	}
	if results[1].OK() {
		t.Error("Expected bad.png to fail")
	}
	if !errors.Is(results[2].Err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist for missing.png, got %v", results[2].Err)
	}

	s := LogResults("test", results)
	if s.Loaded != 1 || s.Failed != 2 {
		t.Errorf("Expected 1 loaded 2 failed, got %s", s)
	}

	avg := AverageColor(results[0].Value)
	if avg.R != 200 || avg.G != 100 || avg.B != 50 {
		t.Errorf("Expected average (200,100,50), got %v", avg)
	}
}
