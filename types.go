package widget

import "fmt"

// Point is an integer screen or local coordinate.
type Point struct {
	X, Y int
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Contains returns true if the point is inside the rectangle.
// Both edges are inclusive, matching component hit-testing.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Intersect returns the overlapping area of two rectangles.
// The result has zero width or height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := maxi(r.X, other.X)
	y1 := maxi(r.Y, other.Y)
	x2 := mini(r.X+r.W, other.X+other.W)
	y2 := mini(r.Y+r.H, other.Y+other.H)
	return Rect{X: x1, Y: y1, W: maxi(0, x2-x1), H: maxi(0, y2-y1)}
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Color constants (0xRRGGBB, alpha is carried separately by components).
const (
	ColorWhite     = 0xFFFFFF
	ColorBlack     = 0x000000
	ColorGray      = 0x808080
	ColorDarkGray  = 0x404040
	ColorLightGray = 0xC6C6C6
)

// PackRGBA packs an 0xRRGGBB color and a 0-255 alpha into the
// 0xAABBGGRR layout used by vertex buffers.
func PackRGBA(color, alpha int) uint32 {
	r := uint32(color>>16) & 0xFF
	g := uint32(color>>8) & 0xFF
	b := uint32(color) & 0xFF
	a := uint32(clampi(alpha, 0, 255))
	return a<<24 | b<<16 | g<<8 | r
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
