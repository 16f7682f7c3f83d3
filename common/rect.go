package common

import "image"

// Rect is an axis-aligned box in world pixels. X/Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

func (r *Rect) SetLeft(v int)   { r.X = v }
func (r *Rect) SetRight(v int)  { r.X = v - r.W }
func (r *Rect) SetTop(v int)    { r.Y = v }
func (r *Rect) SetBottom(v int) { r.Y = v - r.H }

// Overlaps reports whether r and other share interior area. Rects that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Contains reports whether other lies entirely inside r (edges inclusive).
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Offset returns a copy of r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the smallest rect covering both r and other.
func (r Rect) Union(other Rect) Rect {
	l := min(r.Left(), other.Left())
	t := min(r.Top(), other.Top())
	rt := max(r.Right(), other.Right())
	b := max(r.Bottom(), other.Bottom())
	return Rect{X: l, Y: t, W: rt - l, H: b - t}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}
