package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hell-escape/core"
)

var (
	red   = core.RGB{R: 255}
	blue  = core.RGB{B: 255}
	white = core.RGB{R: 255, G: 255, B: 255}
)

func TestRenderBuffer_ClearAndSize(t *testing.T) {
	buf := NewRenderBuffer(4, 3)

	w, h := buf.Size()
	if w != 4 || h != 6 {
		t.Errorf("Expected 4x6 pixels, got %dx%d", w, h)
	}

	buf.Clear(red)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if buf.Pixel(x, y) != red {
				t.Fatalf("Expected red at (%d,%d), got %+v", x, y, buf.Pixel(x, y))
			}
		}
	}
}

func TestRenderBuffer_FillRectClips(t *testing.T) {
	buf := NewRenderBuffer(4, 2)

	buf.FillRect(-5, -5, 2, 2, blue, 1)
	if buf.Pixel(0, 0) != blue || buf.Pixel(1, 1) != blue {
		t.Error("Expected clipped fill to cover the in-bounds corner")
	}
	if buf.Pixel(2, 2) != (core.RGB{}) {
		t.Errorf("Expected (2,2) untouched, got %+v", buf.Pixel(2, 2))
	}

	// Fully outside is a no-op
	buf.FillRect(10, 10, 20, 20, red, 1)
	buf.Set(-1, 0, red)
}

func TestRenderBuffer_Blend(t *testing.T) {
	buf := NewRenderBuffer(1, 1)
	buf.Blend(0, 0, white, 0.5)

	want := core.RGB{R: 127, G: 127, B: 127}
	if got := buf.Pixel(0, 0); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestRenderBuffer_ResizeReuses(t *testing.T) {
	buf := NewRenderBuffer(8, 8)
	buf.SetGlyph(1, 1, 'x', white)

	buf.Resize(2, 2)
	if cols, rows := buf.Cells(); cols != 2 || rows != 2 {
		t.Errorf("Expected 2x2 cells, got %dx%d", cols, rows)
	}
	if buf.GlyphAt(1, 1) != 0 {
		t.Error("Expected glyphs cleared on resize")
	}
}

func TestRenderBuffer_FlushToScreen(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer s.Fini()
	s.SetSize(10, 5)

	buf := NewRenderBuffer(2, 1)
	buf.Set(0, 0, red)
	buf.Set(0, 1, blue)
	buf.SetGlyph(1, 0, 'X', white)
	buf.FlushToScreen(s, 3, 2)

	mainc, _, style, _ := s.GetContent(3, 2)
	fg, bg, _ := style.Decompose()
	if mainc != '▀' {
		t.Errorf("Expected upper half block, got %q", mainc)
	}
	if fg != TcellColor(red) || bg != TcellColor(blue) {
		t.Errorf("Expected red over blue, got fg %v bg %v", fg, bg)
	}

	mainc, _, style, _ = s.GetContent(4, 2)
	fg, _, _ = style.Decompose()
	if mainc != 'X' || fg != TcellColor(white) {
		t.Errorf("Expected white X glyph, got %q fg %v", mainc, fg)
	}
}

func TestRenderBuffer_WriteRGBA(t *testing.T) {
	b := NewRenderBuffer(2, 1)
	b.Clear(blue)
	b.Set(1, 1, red)

	dst := make([]byte, 2*2*4)
	b.WriteRGBA(dst)

	if dst[0] != 0 || dst[2] != 255 || dst[3] != 255 {
		t.Errorf("Expected opaque blue at (0,0), got %v", dst[:4])
	}
	if got := dst[12:16]; got[0] != 255 || got[2] != 0 || got[3] != 255 {
		t.Errorf("Expected opaque red at (1,1), got %v", got)
	}
}
