package widget

import "fmt"

// Position is a lazily evaluated coordinate pair. Implementations compute
// their values on every call and may read the geometry of other components,
// so they must stay free of side effects and must not depend on themselves.
type Position interface {
	X() int
	Y() int
}

// Size is a lazily evaluated width/height pair, with the same evaluation
// rules as Position.
type Size interface {
	Width() int
	Height() int
}

// Anchor selects where a relative position is placed against its reference.
type Anchor int

const (
	// TopLeft places the owner at its parent's content origin.
	TopLeft Anchor = iota
	// Above places the owner so its bottom edge touches the reference's top edge.
	Above
	// Below places the owner under the reference.
	Below
	// LeftOf places the owner so its right edge touches the reference's left edge.
	LeftOf
	// RightOf places the owner after the reference's right edge.
	RightOf
)

func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "topLeft"
	case Above:
		return "above"
	case Below:
		return "below"
	case LeftOf:
		return "leftOf"
	case RightOf:
		return "rightOf"
	}
	return "?"
}

// Padding is the space reserved inside a component's edges.
type Padding struct {
	Top, Right, Bottom, Left int
}

// Horizontal returns the sum of the left and right padding.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns the sum of the top and bottom padding.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// padded is implemented by elements that reserve inner space.
type padded interface {
	Padding() Padding
}

// PaddingOf returns the padding of the element, or zero padding if it has none.
func PaddingOf(e Element) Padding {
	if e == nil {
		return Padding{}
	}
	if p, ok := e.(padded); ok {
		return p.Padding()
	}
	return Padding{}
}

// FormatPosition renders a position as "x,y".
func FormatPosition(p Position) string {
	if p == nil {
		return "0,0"
	}
	return fmt.Sprintf("%d,%d", p.X(), p.Y())
}

// FormatSize renders a size as "WxH".
func FormatSize(s Size) string {
	if s == nil {
		return "0x0"
	}
	return fmt.Sprintf("%dx%d", s.Width(), s.Height())
}

// fixedPosition is a constant position.
type fixedPosition struct{ x, y int }

// Pos returns a constant position.
func Pos(x, y int) Position { return fixedPosition{x, y} }

func (p fixedPosition) X() int         { return p.x }
func (p fixedPosition) Y() int         { return p.y }
func (p fixedPosition) String() string { return FormatPosition(p) }

// fixedSize is a constant size.
type fixedSize struct{ w, h int }

// Sz returns a constant size.
func Sz(w, h int) Size { return fixedSize{w, h} }

func (s fixedSize) Width() int     { return s.w }
func (s fixedSize) Height() int    { return s.h }
func (s fixedSize) String() string { return FormatSize(s) }

// inheritedSize fills the content area of the owner's parent.
type inheritedSize struct {
	owner *Component
}

// Inherited returns a size equal to the inner size of the owner's parent,
// recomputed on every read. A detached owner has size 0x0.
func Inherited(owner Element) Size {
	return inheritedSize{owner: nodeOf(owner)}
}

func (s inheritedSize) Width() int {
	if s.owner == nil || s.owner.parent == nil {
		return 0
	}
	return innerWidth(s.owner.parent)
}

func (s inheritedSize) Height() int {
	if s.owner == nil || s.owner.parent == nil {
		return 0
	}
	return innerHeight(s.owner.parent)
}

func (s inheritedSize) String() string { return FormatSize(s) }

// InnerSize returns the content size of an element: its size minus padding.
func InnerSize(e Element) Size {
	return innerSize{e}
}

type innerSize struct{ e Element }

func (s innerSize) Width() int     { return innerWidth(s.e) }
func (s innerSize) Height() int    { return innerHeight(s.e) }
func (s innerSize) String() string { return FormatSize(s) }

func innerWidth(e Element) int {
	c := nodeOf(e)
	if c == nil || c.size == nil {
		return 0
	}
	return maxi(0, c.size.Width()-PaddingOf(e).Horizontal())
}

func innerHeight(e Element) int {
	c := nodeOf(e)
	if c == nil || c.size == nil {
		return 0
	}
	return maxi(0, c.size.Height()-PaddingOf(e).Vertical())
}

// relativePosition places its owner against a reference component.
// Owner and reference are expected to share a parent: the result is in the
// owner's local coordinates.
type relativePosition struct {
	anchor Anchor
	owner  *Component
	ref    *Component
	offset int
}

// Relative returns a position anchored to ref. For TopLeft the reference is
// ignored and the owner's parent content origin is used instead.
func Relative(anchor Anchor, owner, ref Element, offset int) Position {
	return relativePosition{anchor: anchor, owner: nodeOf(owner), ref: nodeOf(ref), offset: offset}
}

// TopLeftOf places owner at its parent's content origin.
func TopLeftOf(owner Element) Position { return Relative(TopLeft, owner, nil, 0) }

// AboveOf places owner above ref, separated by offset.
func AboveOf(owner, ref Element, offset int) Position { return Relative(Above, owner, ref, offset) }

// BelowOf places owner below ref, separated by offset.
func BelowOf(owner, ref Element, offset int) Position { return Relative(Below, owner, ref, offset) }

// LeftOfRef places owner to the left of ref, separated by offset.
func LeftOfRef(owner, ref Element, offset int) Position { return Relative(LeftOf, owner, ref, offset) }

// RightOfRef places owner to the right of ref, separated by offset.
func RightOfRef(owner, ref Element, offset int) Position { return Relative(RightOf, owner, ref, offset) }

func (p relativePosition) X() int {
	switch p.anchor {
	case TopLeft:
		if p.owner == nil {
			return p.offset
		}
		return PaddingOf(p.owner.parent).Left + p.offset
	case LeftOf:
		return p.refX() - p.ownerWidth() - p.offset
	case RightOf:
		return p.refX() + p.refWidth() + p.offset
	default:
		return p.refX()
	}
}

func (p relativePosition) Y() int {
	switch p.anchor {
	case TopLeft:
		if p.owner == nil {
			return p.offset
		}
		return PaddingOf(p.owner.parent).Top + p.offset
	case Above:
		return p.refY() - p.ownerHeight() - p.offset
	case Below:
		return p.refY() + p.refHeight() + p.offset
	default:
		return p.refY()
	}
}

func (p relativePosition) refX() int {
	if p.ref == nil || p.ref.position == nil {
		return 0
	}
	return p.ref.position.X()
}

func (p relativePosition) refY() int {
	if p.ref == nil || p.ref.position == nil {
		return 0
	}
	return p.ref.position.Y()
}

func (p relativePosition) refWidth() int {
	if p.ref == nil || p.ref.size == nil {
		return 0
	}
	return p.ref.size.Width()
}

func (p relativePosition) refHeight() int {
	if p.ref == nil || p.ref.size == nil {
		return 0
	}
	return p.ref.size.Height()
}

func (p relativePosition) ownerWidth() int {
	if p.owner == nil || p.owner.size == nil {
		return 0
	}
	return p.owner.size.Width()
}

func (p relativePosition) ownerHeight() int {
	if p.owner == nil || p.owner.size == nil {
		return 0
	}
	return p.owner.size.Height()
}

func (p relativePosition) String() string {
	return fmt.Sprintf("%s(%s)", p.anchor, FormatPosition(p))
}

// screenPosition accumulates local positions up to the root.
type screenPosition struct {
	owner *Component
}

// ScreenPosition returns the absolute on-screen position of owner.
// Scroll offsets of ancestors apply to ordinary children only; control
// components stay pinned to their parent.
func ScreenPosition(owner Element) Position {
	return screenPosition{owner: nodeOf(owner)}
}

func (p screenPosition) X() int { return p.eval().X }
func (p screenPosition) Y() int { return p.eval().Y }

func (p screenPosition) eval() Point {
	var pt Point
	c := p.owner
	for c != nil {
		if c.position != nil {
			pt.X += c.position.X()
			pt.Y += c.position.Y()
		}
		parent := nodeOf(c.parent)
		if parent == nil {
			break
		}
		if !c.control {
			if s, ok := c.parent.(scroller); ok {
				pt = pt.Sub(s.ScrollOffset())
			}
		}
		c = parent
	}
	return pt
}

func (p screenPosition) String() string { return FormatPosition(p) }

// scroller is implemented by containers whose content can be offset.
type scroller interface {
	ScrollOffset() Point
}

// ShiftedPosition wraps an original position and moves it by the size of
// another component on the selected axes. The original expression is held
// directly so the shift never re-reads the wrapped component.
type ShiftedPosition struct {
	Original Position
	By       Size
	ShiftX   bool
	ShiftY   bool
}

func (p ShiftedPosition) X() int {
	x := valueX(p.Original)
	if p.ShiftX && p.By != nil {
		x += p.By.Width()
	}
	return x
}

func (p ShiftedPosition) Y() int {
	y := valueY(p.Original)
	if p.ShiftY && p.By != nil {
		y += p.By.Height()
	}
	return y
}

func (p ShiftedPosition) String() string { return FormatPosition(p) }

// ShrunkSize wraps an original size and reduces it by the size of another
// component on the selected axes.
type ShrunkSize struct {
	Original     Size
	By           Size
	ShrinkWidth  bool
	ShrinkHeight bool
}

func (s ShrunkSize) Width() int {
	w := valueW(s.Original)
	if s.ShrinkWidth && s.By != nil {
		w -= s.By.Width()
	}
	return w
}

func (s ShrunkSize) Height() int {
	h := valueH(s.Original)
	if s.ShrinkHeight && s.By != nil {
		h -= s.By.Height()
	}
	return h
}

func (s ShrunkSize) String() string { return FormatSize(s) }

func valueX(p Position) int {
	if p == nil {
		return 0
	}
	return p.X()
}

func valueY(p Position) int {
	if p == nil {
		return 0
	}
	return p.Y()
}

func valueW(s Size) int {
	if s == nil {
		return 0
	}
	return s.Width()
}

func valueH(s Size) int {
	if s == nil {
		return 0
	}
	return s.Height()
}
