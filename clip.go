package widget

import "math"

// ClipArea is a screen-space clipping rectangle given by its corners.
// The zero value clips everything; use NoClip for an unbounded area.
type ClipArea struct {
	X1, Y1 int // Top-left corner (inclusive)
	X2, Y2 int // Bottom-right corner (exclusive)
}

// NoClip returns an area that clips nothing.
func NoClip() ClipArea {
	return ClipArea{X1: math.MinInt32, Y1: math.MinInt32, X2: math.MaxInt32, Y2: math.MaxInt32}
}

// ClipRect returns the clip area covering r.
func ClipRect(r Rect) ClipArea {
	return ClipArea{X1: r.X, Y1: r.Y, X2: r.X + r.W, Y2: r.Y + r.H}
}

// NoClipping reports whether the area is unbounded.
func (a ClipArea) NoClipping() bool {
	return a == NoClip()
}

// FullClip reports whether nothing drawn inside the area would be visible.
func (a ClipArea) FullClip() bool {
	return a.X2 <= a.X1 || a.Y2 <= a.Y1
}

// Intersect returns the area covered by both a and b.
func (a ClipArea) Intersect(b ClipArea) ClipArea {
	return ClipArea{
		X1: maxi(a.X1, b.X1),
		Y1: maxi(a.Y1, b.Y1),
		X2: mini(a.X2, b.X2),
		Y2: mini(a.Y2, b.Y2),
	}
}

// Rect converts the area back to a rectangle.
func (a ClipArea) Rect() Rect {
	return Rect{X: a.X1, Y: a.Y1, W: maxi(0, a.X2-a.X1), H: maxi(0, a.Y2-a.Y1)}
}

// Clipable is implemented by elements that restrict the drawing of their
// content.
type Clipable interface {
	ClipArea() ClipArea
}

// IntersectedClip returns the intersection of the clip areas of e and of
// every clipping ancestor. Control components are only clipped by their own
// area, never by the component they control.
func IntersectedClip(e Element) ClipArea {
	area := NoClip()
	for cur := e; cur != nil; {
		if c, ok := cur.(Clipable); ok {
			area = area.Intersect(c.ClipArea())
		}
		n := cur.Node()
		if n.control {
			break
		}
		cur = n.parent
	}
	return area
}
