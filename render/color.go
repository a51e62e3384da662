package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hell-escape/core"
)

// TcellColor converts to a truecolor tcell color; tcell downsamples on limited terminals
func TcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Lerp interpolates from a to b by t in [0, 1]
func Lerp(a, b core.RGB, t float64) core.RGB {
	return a.Blend(b, t)
}
