package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry_Constants(t *testing.T) {
	p := Pos(3, -4)
	s := Sz(10, 20)

	assert.Equal(t, 3, p.X())
	assert.Equal(t, -4, p.Y())
	assert.Equal(t, 10, s.Width())
	assert.Equal(t, 20, s.Height())
	assert.Equal(t, "3,-4", FormatPosition(p))
	assert.Equal(t, "10x20", FormatSize(s))
	assert.Equal(t, "0,0", FormatPosition(nil))
	assert.Equal(t, "0x0", FormatSize(nil))
}

func TestGeometry_InheritedFollowsParent(t *testing.T) {
	parent := NewContainer(WithSize(Sz(100, 80)), WithPadding(Padding{Top: 2, Right: 3, Bottom: 4, Left: 5}))
	child := NewComponent()

	assert.Equal(t, 0, child.Size().Width(), "detached component inherits nothing")

	parent.Add(child)
	assert.Equal(t, 92, child.Size().Width())
	assert.Equal(t, 74, child.Size().Height())

	// lazily re-evaluated
	parent.SetSize(Sz(50, 50))
	assert.Equal(t, 42, child.Size().Width())
	assert.Equal(t, 44, child.Size().Height())
}

func TestGeometry_InnerSizeNeverNegative(t *testing.T) {
	c := NewContainer(WithSize(Sz(4, 4)), WithPadding(Padding{Top: 5, Left: 5}))
	assert.Equal(t, 0, c.InnerSize().Width())
	assert.Equal(t, 0, c.InnerSize().Height())
}

func TestGeometry_TopLeftUsesPadding(t *testing.T) {
	parent := NewContainer(WithSize(Sz(100, 100)), WithPadding(Padding{Top: 6, Left: 7}))
	child := NewComponent(WithSize(Sz(10, 10)))
	parent.Add(child)

	assert.Equal(t, 7, child.Position().X())
	assert.Equal(t, 6, child.Position().Y())
}

func TestGeometry_RelativeAnchors(t *testing.T) {
	ref := NewComponent(WithPosition(Pos(50, 40)), WithSize(Sz(20, 10)))
	owner := NewComponent(WithSize(Sz(8, 6)))

	tests := []struct {
		name  string
		pos   Position
		wantX int
		wantY int
	}{
		{"right of", RightOfRef(owner, ref, 2), 50 + 20 + 2, 40},
		{"left of", LeftOfRef(owner, ref, 2), 50 - 8 - 2, 40},
		{"below", BelowOf(owner, ref, 3), 50, 40 + 10 + 3},
		{"above", AboveOf(owner, ref, 3), 50, 40 - 6 - 3},
		{"above with overlap", AboveOf(owner, ref, -2), 50, 40 - 6 + 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantX, tt.pos.X())
			assert.Equal(t, tt.wantY, tt.pos.Y())
		})
	}
}

func TestGeometry_MissingReferencesAreZero(t *testing.T) {
	owner := NewComponent(WithSize(Sz(8, 6)))

	p := RightOfRef(owner, nil, 4)
	assert.Equal(t, 4, p.X())
	assert.Equal(t, 0, p.Y())

	assert.Equal(t, 0, Relative(TopLeft, nil, nil, 0).X())
	assert.Equal(t, 0, Inherited(nil).Width())
	assert.Equal(t, 0, ScreenPosition(nil).X())

	shifted := ShiftedPosition{ShiftX: true}
	assert.Equal(t, 0, shifted.X())
	shrunk := ShrunkSize{ShrinkHeight: true}
	assert.Equal(t, 0, shrunk.Height())
}

func TestGeometry_ScreenPositionAccumulates(t *testing.T) {
	root := NewContainer(WithPosition(Pos(10, 20)), WithSize(Sz(200, 200)))
	mid := NewContainer(WithPosition(Pos(5, 5)), WithSize(Sz(100, 100)))
	leaf := NewComponent(WithPosition(Pos(1, 2)), WithSize(Sz(4, 4)))
	root.Add(mid)
	mid.Add(leaf)

	assert.Equal(t, Point{X: 16, Y: 27}, Point{X: leaf.ScreenPosition().X(), Y: leaf.ScreenPosition().Y()})

	detached := NewComponent(WithPosition(Pos(9, 9)))
	assert.Equal(t, 9, detached.ScreenPosition().X(), "detached component keeps its local position")
}

func TestGeometry_ScrollOffsetSkipsControls(t *testing.T) {
	panel := NewContainer(WithPosition(Pos(100, 100)), WithSize(Sz(50, 50)))
	child := NewComponent(WithPosition(Pos(0, 10)), WithSize(Sz(10, 10)))
	ctl := NewComponent(WithPosition(Pos(0, 10)), WithSize(Sz(10, 10)))
	panel.Add(child)
	panel.AddControl(ctl)

	panel.SetScrollOffset(Point{Y: 8})

	assert.Equal(t, 102, child.ScreenPosition().Y())
	assert.Equal(t, 110, ctl.ScreenPosition().Y())
}

func TestGeometry_WrappedAdjustments(t *testing.T) {
	by := Sz(7, 9)

	pos := ShiftedPosition{Original: Pos(10, 10), By: by, ShiftY: true}
	assert.Equal(t, 10, pos.X())
	assert.Equal(t, 19, pos.Y())

	size := ShrunkSize{Original: Sz(100, 50), By: by, ShrinkWidth: true}
	assert.Equal(t, 93, size.Width())
	assert.Equal(t, 50, size.Height())
}

func TestGeometry_RectContainsIsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	require.True(t, r.Contains(10, 10))
	require.True(t, r.Contains(15, 15))
	require.False(t, r.Contains(16, 15))
	require.False(t, r.Contains(9, 12))

	got := r.Intersect(Rect{X: 12, Y: 0, W: 20, H: 12})
	assert.Equal(t, Rect{X: 12, Y: 10, W: 3, H: 2}, got)
	assert.True(t, r.Intersect(Rect{X: 100, Y: 100, W: 1, H: 1}).Empty())
}
