package asset

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
)

// LoadImage decodes a PNG or JPEG from fsys
func LoadImage(fsys fs.FS, path string) Result[image.Image] {
	f, err := fsys.Open(path)
	if err != nil {
		return Fail[image.Image](path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Fail[image.Image](path, fmt.Errorf("decode: %w", err))
	}
	return Ok(path, img)
}

// LoadImages loads every path, keeping order
func LoadImages(fsys fs.FS, paths []string) []Result[image.Image] {
	out := make([]Result[image.Image], 0, len(paths))
	for _, p := range paths {
		out = append(out, LoadImage(fsys, p))
	}
	return out
}

// AverageColor returns the mean color of img, sampling at most ~64x64 points
func AverageColor(img image.Image) color.RGBA {
	b := img.Bounds()
	if b.Empty() {
		return color.RGBA{A: 255}
	}
	stepX := max(1, b.Dx()/64)
	stepY := max(1, b.Dy()/64)

	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += uint64(cr >> 8)
			g += uint64(cg >> 8)
			bl += uint64(cb >> 8)
			n++
		}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 255}
}
