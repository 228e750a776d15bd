package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rect struct{ X, Y, W, H int }

func boundsOf(e Element) rect {
	b := e.Node().Bounds()
	return rect{b.X, b.Y, b.W, b.H}
}

// newWindow returns a screen holding a 200x100 window at 100,100.
func newWindow(t *testing.T) (*Screen, *Container) {
	t.Helper()
	s := NewScreen(nil, WithDisplaySize(800, 600))
	win := NewContainer(WithName("win"), WithPosition(Pos(100, 100)), WithSize(Sz(200, 100)))
	s.Add(win)
	return s, win
}

// newGroup builds a group with a 10x8 and a 20x12 tab.
func newGroup(edge Edge) (*TabGroup, *Tab, *Tab) {
	g := NewTabGroup(edge, StyleWindow, WithName("group"))
	a := g.AddTab(NewTab("a", 10, 8), NewContainer(WithName("a-page")))
	b := g.AddTab(NewTab("b", 20, 12), NewContainer(WithName("b-page")))
	return g, a, b
}

func TestTabGroup_SizeFollowsTabs(t *testing.T) {
	g, _, _ := newGroup(EdgeTop)
	assert.Equal(t, DefaultTabOffset, g.Offset())
	assert.Equal(t, 33, g.Size().Width())
	assert.Equal(t, 12, g.Size().Height())

	g.SetSpacing(2)
	assert.Equal(t, 37, g.Size().Width(), "spacing trails every tab")

	side, _, _ := newGroup(EdgeLeft)
	assert.Equal(t, 20, side.Size().Width())
	assert.Equal(t, 3+8+12, side.Size().Height())

	empty := NewTabGroup(EdgeTop, StylePanel)
	assert.Equal(t, DefaultTabOffset, empty.Size().Width())
	assert.Equal(t, 0, empty.Size().Height())
}

func TestTabGroup_LayoutAlongEdge(t *testing.T) {
	top, a, b := newGroup(EdgeTop)
	top.SetSpacing(2)
	assert.Equal(t, "3,0", FormatPosition(a.Position()))
	assert.Equal(t, "15,0", FormatPosition(b.Position()))

	side, c, d := newGroup(EdgeRight)
	assert.Equal(t, "0,3", FormatPosition(c.Position()))
	assert.Equal(t, "0,11", FormatPosition(d.Position()))

	side.SetOffset(6)
	assert.Equal(t, "0,6", FormatPosition(c.Position()))
	assert.Equal(t, "0,14", FormatPosition(d.Position()))
}

func TestTabGroup_AttachDisplace(t *testing.T) {
	tests := []struct {
		edge      Edge
		wantWin   rect
		wantGroup rect
	}{
		{EdgeTop, rect{100, 112, 200, 88}, rect{100, 102, 33, 12}},
		{EdgeBottom, rect{100, 100, 200, 88}, rect{100, 186, 33, 12}},
		{EdgeLeft, rect{120, 100, 180, 100}, rect{102, 100, 20, 23}},
		{EdgeRight, rect{100, 100, 180, 100}, rect{278, 100, 20, 23}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			_, win := newWindow(t)
			g, _, _ := newGroup(tt.edge)
			g.AttachTo(win, true)

			assert.Equal(t, tt.wantWin, boundsOf(win))
			assert.Equal(t, tt.wantGroup, boundsOf(g))
		})
	}
}

func TestTabGroup_AttachWithoutDisplace(t *testing.T) {
	_, win := newWindow(t)
	g, _, _ := newGroup(EdgeTop)
	g.AttachTo(win, false)

	assert.Equal(t, rect{100, 100, 200, 100}, boundsOf(win))
	assert.Equal(t, rect{100, 90, 33, 12}, boundsOf(g))
}

func TestTabGroup_AttachJoinsContainerParent(t *testing.T) {
	s, win := newWindow(t)
	g, _, _ := newGroup(EdgeTop)
	g.AttachTo(win, true)

	assert.Equal(t, Element(s.Root()), g.Parent())
	assert.Equal(t, win, g.AttachedContainer())
	assert.Equal(t, s, g.Screen())
}

func TestTabGroup_DisplacementIsLive(t *testing.T) {
	_, win := newWindow(t)
	g, _, _ := newGroup(EdgeTop)
	g.AttachTo(win, true)

	g.AddTab(NewTab("tall", 15, 20), NewContainer(WithName("tall-page")))
	assert.Equal(t, rect{100, 120, 200, 80}, boundsOf(win))
	assert.Equal(t, 3+10+20+15, g.Size().Width())

	g.SetOffset(0)
	assert.Equal(t, 3+10+20+15-3, g.Size().Width())
	assert.Equal(t, rect{100, 120, 200, 80}, boundsOf(win), "offset only moves tabs along the edge")
}

func TestTabGroup_ContentFillsContainer(t *testing.T) {
	_, win := newWindow(t)
	win.SetPadding(Padding{Top: 4, Right: 4, Bottom: 4, Left: 4})
	g, a, b := newGroup(EdgeTop)
	g.SetActiveTab(b)
	g.AttachTo(win, true)

	require.Len(t, win.Children(), 2)
	assert.Equal(t, Element(win), a.Content().Parent())
	assert.Equal(t, rect{104, 116, 192, 80}, boundsOf(b.Content()))
	assert.False(t, a.Content().IsVisible())
	assert.True(t, b.Content().IsVisible())
}

func TestTabGroup_ActivationDeferredUntilAttach(t *testing.T) {
	_, win := newWindow(t)
	g, a, b := newGroup(EdgeTop)

	var changes []*TabChange
	Subscribe(g, func(e *TabChange) { changes = append(changes, e) })

	g.SetActiveTab(b)
	assert.Empty(t, changes, "no notification before attach")
	assert.Equal(t, b, g.ActiveTab())
	assert.False(t, b.IsActive())
	assert.False(t, b.Content().IsVisible())

	g.AttachTo(win, true)

	require.Len(t, changes, 1)
	assert.Nil(t, changes[0].Old)
	assert.Equal(t, b, changes[0].New)
	assert.Equal(t, g, changes[0].Group)
	assert.Equal(t, Element(g), changes[0].Source())
	assert.True(t, b.IsActive())
	assert.False(t, a.IsActive())
	assert.True(t, b.Content().IsVisible())
	assert.False(t, a.Content().IsVisible())
}

func TestTabGroup_SetActiveTabTwiceIsNoop(t *testing.T) {
	_, win := newWindow(t)
	g, a, b := newGroup(EdgeTop)
	g.AttachTo(win, true)

	count := 0
	Subscribe(g, func(*TabChange) { count++ })

	g.SetActiveTab(a)
	g.SetActiveTab(a)
	assert.Equal(t, 1, count)

	g.SetActiveTab(b)
	assert.Equal(t, 2, count)
	assert.False(t, a.IsActive())
	assert.False(t, a.Content().IsVisible())
}

func TestTabGroup_TabChangeVeto(t *testing.T) {
	_, win := newWindow(t)
	g, a, b := newGroup(EdgeTop)
	g.SetActiveTab(a)
	g.AttachTo(win, true)

	Subscribe(g, func(e *TabChange) {
		if e.New == b {
			e.Cancel()
		}
	})

	g.SetActiveTab(b)
	assert.Equal(t, a, g.ActiveTab())
	assert.True(t, a.Content().IsVisible())
	assert.False(t, b.Content().IsVisible())
}

func TestTabGroup_SetActiveTabByName(t *testing.T) {
	_, win := newWindow(t)
	g, _, b := newGroup(EdgeTop)
	g.AttachTo(win, true)

	assert.True(t, g.SetActiveTabByName("b"))
	assert.Equal(t, b, g.ActiveTab())
	assert.False(t, g.SetActiveTabByName("nope"))
	assert.Equal(t, b, g.ActiveTab())
}

func TestTabGroup_ForeignTabIgnored(t *testing.T) {
	_, win := newWindow(t)
	g, a, _ := newGroup(EdgeTop)
	g.SetActiveTab(a)
	g.AttachTo(win, true)

	_, stranger, _ := newGroup(EdgeTop)
	g.SetActiveTab(stranger)
	assert.Equal(t, a, g.ActiveTab())
}

func TestTabGroup_NilDeactivates(t *testing.T) {
	_, win := newWindow(t)
	g, a, _ := newGroup(EdgeTop)
	g.SetActiveTab(a)
	g.AttachTo(win, true)

	g.SetActiveTab(nil)
	assert.Nil(t, g.ActiveTab())
	assert.False(t, a.Content().IsVisible())
}

func TestTabGroup_CycleWraps(t *testing.T) {
	_, win := newWindow(t)
	g, a, b := newGroup(EdgeTop)
	c := g.AddTab(NewTab("c", 10, 8), NewContainer())
	g.SetActiveTab(a)
	g.AttachTo(win, true)

	g.PrevTab()
	assert.Equal(t, c, g.ActiveTab())
	g.NextTab()
	assert.Equal(t, a, g.ActiveTab())
	g.NextTab()
	assert.Equal(t, b, g.ActiveTab())
}

func TestTabGroup_CycleWithoutActive(t *testing.T) {
	_, win := newWindow(t)
	g, a, b := newGroup(EdgeTop)
	g.AttachTo(win, true)

	g.NextTab()
	assert.Equal(t, a, g.ActiveTab())

	g.SetActiveTab(nil)
	g.PrevTab()
	assert.Equal(t, b, g.ActiveTab())

	NewTabGroup(EdgeTop, StyleWindow).NextTab()
}

func TestTabGroup_PageKeys(t *testing.T) {
	_, win := newWindow(t)
	g, a, b := newGroup(EdgeTop)
	g.SetActiveTab(a)
	g.AttachTo(win, true)

	assert.True(t, g.OnKeyTyped(0, KeyPageDown))
	assert.Equal(t, b, g.ActiveTab())
	assert.True(t, g.OnKeyTyped(0, KeyPageUp))
	assert.Equal(t, a, g.ActiveTab())
	assert.False(t, g.OnKeyTyped('x', KeyNone))
}

func TestTabGroup_RemoveTab(t *testing.T) {
	_, win := newWindow(t)
	g, a, b := newGroup(EdgeTop)
	g.SetActiveTab(a)
	g.AttachTo(win, true)
	page := a.Content()

	require.True(t, g.RemoveTab(a))

	assert.Nil(t, g.ActiveTab())
	assert.Equal(t, 1, g.TabCount())
	assert.Nil(t, page.Parent())
	assert.Nil(t, a.Group())
	assert.Nil(t, g.Tab("a"))
	assert.Equal(t, "3,0", FormatPosition(b.Position()), "remaining tabs are laid out again")
	assert.Equal(t, 23, g.Size().Width())
	assert.Equal(t, 100+12, win.Bounds().Y, "displacement follows the new size")

	assert.False(t, g.RemoveTab(a))
}

func TestTabGroup_AddActiveTab(t *testing.T) {
	_, win := newWindow(t)
	g := NewTabGroup(EdgeTop, StyleWindow)
	g.AddTab(NewTab("x", 10, 10), NewContainer())
	pre := NewTab("y", 10, 10)
	pre.SetActive(true)
	g.AddTab(pre, NewContainer())

	assert.Equal(t, pre, g.ActiveTab())
	assert.False(t, pre.IsActive(), "shown inactive until attached")

	g.AttachTo(win, true)
	assert.True(t, pre.IsActive())

	var changes []*TabChange
	Subscribe(g, func(e *TabChange) { changes = append(changes, e) })
	late := NewTab("z", 10, 10)
	late.SetActive(true)
	g.AddTab(late, NewContainer())
	assert.Equal(t, late, g.ActiveTab())
	assert.False(t, pre.IsActive())
	assert.False(t, pre.Content().IsVisible())
	assert.True(t, late.Content().IsVisible())
	require.Len(t, changes, 1, "an active tab added to an attached group switches through the usual change")
	assert.Equal(t, pre, changes[0].Old)
	assert.Equal(t, late, changes[0].New)
}

func TestTabGroup_ReattachRestoresContainer(t *testing.T) {
	s, first := newWindow(t)
	second := NewContainer(WithName("second"), WithPosition(Pos(400, 100)), WithSize(Sz(100, 100)))
	s.Add(second)
	g, a, _ := newGroup(EdgeTop)
	g.SetActiveTab(a)
	g.AttachTo(first, true)

	g.AttachTo(second, true)

	assert.Equal(t, rect{100, 100, 200, 100}, boundsOf(first))
	assert.Empty(t, first.Children())
	assert.Equal(t, rect{400, 112, 100, 88}, boundsOf(second))
	assert.Len(t, second.Children(), 2)
	assert.Equal(t, rect{400, 102, 33, 12}, boundsOf(g))
	assert.True(t, a.Content().IsVisible())
}

func TestTabGroup_TabClick(t *testing.T) {
	_, win := newWindow(t)
	g, a, b := newGroup(EdgeTop)
	g.SetActiveTab(a)
	g.AttachTo(win, true)

	assert.True(t, b.OnClick())
	assert.Equal(t, b, g.ActiveTab())

	a.SetEnabled(false)
	assert.False(t, a.OnClick())
	assert.Equal(t, b, g.ActiveTab())

	assert.False(t, NewTab("loose", 5, 5).OnClick())
}

func TestTabGroup_InvalidArgumentsPanic(t *testing.T) {
	g := NewTabGroup(EdgeTop, StyleWindow)
	assert.Panics(t, func() { g.AttachTo(nil, true) })
	assert.Panics(t, func() { g.AddTab(nil, NewContainer()) })
	assert.Panics(t, func() { g.AddTab(NewTab("a", 1, 1), nil) })
}

func TestTabGroup_IconFollowsStyleAndEdge(t *testing.T) {
	g := NewTabGroup(EdgeLeft, StylePanel)
	assert.Equal(t, "panel_left", g.Icon().Name)

	s := NewScreen(nil, WithIcons(&IconSet{}))
	s.Add(g)
	assert.Equal(t, IconFull, g.Icon().Name, "sets without the icon fall back to full")
}

func TestTabGroup_RenderTabs(t *testing.T) {
	_, win := newWindow(t)
	g, a, _ := newGroup(EdgeTop)
	g.SetActiveTab(a)
	g.AttachTo(win, true)

	r := &recordingRenderer{}
	g.Render(r)

	want := []string{
		"icon a window_top 103,102 10x8",
		"icon b window_top 113,102 20x12",
	}
	if diff := cmp.Diff(want, r.ops); diff != "" {
		t.Errorf("render ops mismatch (-want +got):\n%s", diff)
	}
}

func TestEdge_Parse(t *testing.T) {
	for _, e := range []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		got, err := ParseEdge(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
	got, err := ParseEdge(" LEFT ")
	require.NoError(t, err)
	assert.Equal(t, EdgeLeft, got)

	_, err = ParseEdge("middle")
	assert.Error(t, err)

	style, err := ParseTabStyle("panel")
	require.NoError(t, err)
	assert.Equal(t, StylePanel, style)
	_, err = ParseTabStyle("fancy")
	assert.Error(t, err)
}
