package gamemath

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenteredRect returns a size x size rectangle centred on (cx, cy).
func CenteredRect(cx, cy, size float64) Rect {
	return Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
}

// OverlapsX reports whether the horizontal extents overlap. Touching edges do not count.
func OverlapsX(a, b Rect) bool {
	return a.X < b.Right() && a.Right() > b.X
}

// Overlaps reports whether two rectangles overlap. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return OverlapsX(a, b) && a.Y < b.Bottom() && a.Bottom() > b.Y
}

// PushOutX returns the X that moves mover horizontally out of solid.
// A mover whose left edge is left of the solid's left edge is pushed left,
// otherwise right. Vertical position is never changed.
func PushOutX(mover, solid Rect) float64 {
	if mover.X < solid.X {
		return solid.X - mover.W
	}
	return solid.Right()
}
