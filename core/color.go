package core

import "image/color"

// RGB stores explicit 8-bit color channels, decoupled from tcell and image/color
type RGB struct {
	R, G, B uint8
}

// FromColor drops alpha from any image color; used for background tints
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Blend moves c toward src by alpha, clamped to [0, 1]
func (c RGB) Blend(src RGB, alpha float64) RGB {
	alpha = min(1, max(0, alpha))
	return RGB{
		R: mixChannel(c.R, src.R, alpha),
		G: mixChannel(c.G, src.G, alpha),
		B: mixChannel(c.B, src.B, alpha),
	}
}

func mixChannel(dst, src uint8, alpha float64) uint8 {
	return uint8(float64(src)*alpha + float64(dst)*(1-alpha))
}
