package vmath

// Rect is an axis-aligned rectangle, top-left origin, Y down
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the midpoint
func (r Rect) Center() Vec { return Vec{r.CenterX(), r.CenterY()} }

// Offset returns r translated by (dx, dy)
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{r.X + dx, r.Y + dy, r.W, r.H}
}

// Overlaps reports strict AABB intersection; edge contact is not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// SpansX reports whether x lies within the horizontal extent, edges inclusive
func (r Rect) SpansX(x float64) bool {
	return x >= r.X && x <= r.X+r.W
}

// OverlapsX reports strict horizontal extent intersection
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X
}

// CenteredAt returns a w x h rectangle centered on c
func CenteredAt(c Vec, w, h float64) Rect {
	return Rect{c.X - w/2, c.Y - h/2, w, h}
}
