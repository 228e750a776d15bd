package widget

import "sort"

// Container is a component owning ordinary child components. Children are
// positioned relative to the container's origin, sized against its padded
// content area, and clipped to it unless clipping is disabled.
type Container struct {
	Component

	children    []Element
	padding     Padding
	clipContent bool
	scroll      Point
}

// NewContainer creates a detached container that clips its content.
func NewContainer(opts ...Option) *Container {
	c := &Container{}
	c.InitContainer(c, opts...)
	return c
}

// InitContainer prepares the container for use as the base of self.
// Types embedding Container must call it from their constructor.
func (c *Container) InitContainer(self Element, opts ...Option) {
	c.clipContent = true
	c.Init(self, opts...)
}

// SetPadding sets the content padding.
func (c *Container) SetPadding(p Padding) { c.padding = p }

// Padding returns the content padding.
func (c *Container) Padding() Padding { return c.padding }

// SetClipContent sets whether children are clipped to the content area.
func (c *Container) SetClipContent(clip bool) { c.clipContent = clip }

// ClipContent reports whether children are clipped.
func (c *Container) ClipContent() bool { return c.clipContent }

// SetScrollOffset offsets the content of the container. Control components
// are not affected.
func (c *Container) SetScrollOffset(p Point) { c.scroll = p }

// ScrollOffset returns the content offset.
func (c *Container) ScrollOffset() Point { return c.scroll }

// Children returns the ordinary children in insertion order.
func (c *Container) Children() []Element {
	out := make([]Element, len(c.children))
	copy(out, c.children)
	return out
}

// Add appends children to this container, detaching them from any previous
// container first.
func (c *Container) Add(children ...Element) {
	for _, e := range children {
		n := nodeOf(e)
		if n == nil {
			panic("widget: nil child component")
		}
		if n.parent != nil {
			if nodeOf(n.parent) == &c.Component && !n.control {
				continue
			}
			detach(e)
		}

		c.children = append(c.children, e)
		n.parent = c.self
		n.control = false
		if c.screen != nil {
			e.OnAddedToScreen(c.screen)
		}
	}
}

// Remove detaches a child. Hover and focus held by the child are released.
func (c *Container) Remove(e Element) {
	n := nodeOf(e)
	if n == nil || nodeOf(n.parent) != &c.Component || n.control {
		return
	}
	for i, child := range c.children {
		if child.Node() == n {
			c.children = append(c.children[:i], c.children[i+1:]...)
			break
		}
	}
	n.SetHovered(false)
	n.SetFocused(false)
	n.parent = nil
	e.OnAddedToScreen(nil)
}

// detach removes e from its current parent, as a child or as a control.
func detach(e Element) {
	n := e.Node()
	switch {
	case n.parent == nil:
	case n.control:
		n.parent.Node().RemoveControl(e)
	default:
		if old, ok := n.parent.(interface{ Remove(Element) }); ok {
			old.Remove(e)
		} else {
			n.parent = nil
		}
	}
}

// RemoveAll detaches every child.
func (c *Container) RemoveAll() {
	for _, e := range c.Children() {
		c.Remove(e)
	}
}

// Child returns the direct child with the given name, or nil.
func (c *Container) Child(name string) Element {
	if name == "" {
		return nil
	}
	for _, e := range c.children {
		if e.Node().name == name {
			return e
		}
	}
	return nil
}

// OnAddedToScreen records the screen on the container and its whole subtree.
func (c *Container) OnAddedToScreen(s *Screen) {
	c.Component.OnAddedToScreen(s)
	for _, e := range c.children {
		e.OnAddedToScreen(s)
	}
}

// ComponentAt checks control components first, then children from the top
// of the stacking order down, then the container itself.
func (c *Container) ComponentAt(x, y int) Element {
	if hit := c.controlAt(x, y); hit != nil {
		return hit
	}
	if !c.visible {
		return nil
	}

	inside := c.IsInsideBounds(x, y)
	if c.clipContent && !inside {
		return nil
	}

	ordered := c.stackOrder()
	for i := len(ordered) - 1; i >= 0; i-- {
		if hit := ordered[i].ComponentAt(x, y); hit != nil {
			return hit
		}
	}

	if inside {
		return c.self
	}
	return nil
}

// stackOrder returns the children sorted bottom to top: by z-index, then by
// insertion order.
func (c *Container) stackOrder() []Element {
	ordered := c.Children()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Node().ZIndex() < ordered[j].Node().ZIndex()
	})
	return ordered
}

// ClipArea returns the padded on-screen content area, or no clipping when
// the container does not clip its content.
func (c *Container) ClipArea() ClipArea {
	if !c.clipContent {
		return NoClip()
	}
	x := c.screenPos.X() + c.padding.Left
	y := c.screenPos.Y() + c.padding.Top
	return ClipRect(Rect{X: x, Y: y, W: innerWidth(c.self), H: innerHeight(c.self)})
}

func (c *Container) renderContent(r Renderer) {
	if len(c.children) == 0 {
		return
	}

	area := IntersectedClip(c.self)
	if area.FullClip() {
		return
	}
	clip := c.clipContent && !c.control
	if clip {
		r.StartClipping(area)
	}
	for _, e := range c.stackOrder() {
		e.Render(r)
	}
	if clip {
		r.EndClipping(area)
	}
}
