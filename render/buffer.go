package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hell-escape/core"
	"github.com/lixenwraith/hell-escape/parameter/visual"
)

// glyph is a character drawn over the pixel layer of one cell
type glyph struct {
	r  rune
	fg core.RGB
}

// RenderBuffer is a pixel compositor with two pixels per terminal cell, stacked vertically
// Glyphs overlay whole cells and take the cell's averaged pixel color as background
type RenderBuffer struct {
	pixels []core.RGB
	glyphs []glyph
	cols   int
	rows   int
}

// NewRenderBuffer creates a buffer for cols x rows cells
func NewRenderBuffer(cols, rows int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(cols, rows)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *RenderBuffer) Resize(cols, rows int) {
	cols, rows = max(0, cols), max(0, rows)
	px, cells := cols*rows*2, cols*rows
	if cap(b.pixels) < px {
		b.pixels = make([]core.RGB, px)
	}
	if cap(b.glyphs) < cells {
		b.glyphs = make([]glyph, cells)
	}
	b.pixels = b.pixels[:px]
	b.glyphs = b.glyphs[:cells]
	b.cols, b.rows = cols, rows
	b.Clear(visual.RgbBlack)
}

// Clear fills every pixel with bg and drops glyphs using exponential copy
func (b *RenderBuffer) Clear(bg core.RGB) {
	if len(b.pixels) == 0 {
		return
	}
	b.pixels[0] = bg
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
	clear(b.glyphs)
}

// Size returns the pixel dimensions
func (b *RenderBuffer) Size() (w, h int) {
	return b.cols, b.rows * 2
}

// Cells returns the cell dimensions
func (b *RenderBuffer) Cells() (cols, rows int) {
	return b.cols, b.rows
}

// inBounds returns true if the pixel is inside the buffer
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows*2
}

// Pixel returns the color at (x, y), black outside
func (b *RenderBuffer) Pixel(x, y int) core.RGB {
	if !b.inBounds(x, y) {
		return visual.RgbBlack
	}
	return b.pixels[y*b.cols+x]
}

// Set writes one pixel
func (b *RenderBuffer) Set(x, y int, c core.RGB) {
	if b.inBounds(x, y) {
		b.pixels[y*b.cols+x] = c
	}
}

// Blend alpha-blends c over one pixel
func (b *RenderBuffer) Blend(x, y int, c core.RGB, alpha float64) {
	if b.inBounds(x, y) {
		i := y*b.cols + x
		b.pixels[i] = b.pixels[i].Blend(c, alpha)
	}
}

// FillRect blends c over pixels [x0, x1) x [y0, y1), clipped to the buffer
func (b *RenderBuffer) FillRect(x0, y0, x1, y1 int, c core.RGB, alpha float64) {
	x0, y0 = max(0, x0), max(0, y0)
	x1, y1 = min(b.cols, x1), min(b.rows*2, y1)
	for y := y0; y < y1; y++ {
		row := y * b.cols
		for x := x0; x < x1; x++ {
			b.pixels[row+x] = b.pixels[row+x].Blend(c, alpha)
		}
	}
}

// StrokeRect draws a one pixel outline
func (b *RenderBuffer) StrokeRect(x0, y0, x1, y1 int, c core.RGB) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0; x < x1; x++ {
		b.Set(x, y0, c)
		b.Set(x, y1-1, c)
	}
	for y := y0; y < y1; y++ {
		b.Set(x0, y, c)
		b.Set(x1-1, y, c)
	}
}

// SetGlyph places a character at cell (col, row)
func (b *RenderBuffer) SetGlyph(col, row int, r rune, fg core.RGB) {
	if col >= 0 && col < b.cols && row >= 0 && row < b.rows {
		b.glyphs[row*b.cols+col] = glyph{r: r, fg: fg}
	}
}

// Text writes a string of glyphs starting at cell (col, row), returns the next column
func (b *RenderBuffer) Text(col, row int, s string, fg core.RGB) int {
	for _, r := range s {
		b.SetGlyph(col, row, r, fg)
		col++
	}
	return col
}

// GlyphAt returns the overlay rune at a cell, 0 if none
func (b *RenderBuffer) GlyphAt(col, row int) rune {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return 0
	}
	return b.glyphs[row*b.cols+col].r
}

// FlushToScreen writes the buffer to screen with its top-left cell at (ox, oy)
// Pixel pairs become upper half blocks: foreground is the top pixel, background the bottom
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen, ox, oy int) {
	for row := 0; row < b.rows; row++ {
		top := row * 2 * b.cols
		bot := top + b.cols
		for col := 0; col < b.cols; col++ {
			hi, lo := b.pixels[top+col], b.pixels[bot+col]

			if g := b.glyphs[row*b.cols+col]; g.r != 0 {
				st := tcell.StyleDefault.Foreground(TcellColor(g.fg)).Background(TcellColor(hi.Blend(lo, 0.5)))
				screen.SetContent(ox+col, oy+row, g.r, nil, st)
				continue
			}

			st := tcell.StyleDefault.Foreground(TcellColor(hi)).Background(TcellColor(lo))
			screen.SetContent(ox+col, oy+row, visual.HalfChars[1], nil, st)
		}
	}
}

// WriteRGBA copies the pixel layer into dst as opaque RGBA, row-major
// dst must hold at least 4*w*h bytes for the pixel size; glyphs are not rasterized
func (b *RenderBuffer) WriteRGBA(dst []byte) {
	w, h := b.Size()
	for i, p := range b.pixels[:w*h] {
		o := i * 4
		dst[o], dst[o+1], dst[o+2], dst[o+3] = p.R, p.G, p.B, 0xff
	}
}
