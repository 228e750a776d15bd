package widget

import (
	"fmt"
	"strings"
)

// Element is implemented by every node of the component tree. Custom
// components embed Component (or Container) and get the methods for free;
// ComponentAt and Render may be overridden.
//
// Usage (custom component):
//
//	type Slot struct {
//	    widget.Component
//	    item string
//	}
//
//	func NewSlot() *Slot {
//	    s := &Slot{}
//	    s.Init(s, widget.WithSize(widget.Sz(18, 18)))
//	    return s
//	}
type Element interface {
	// Node returns the embedded component holding the tree state.
	Node() *Component
	// ComponentAt returns the deepest element at the screen coordinates, or nil.
	ComponentAt(x, y int) Element
	// Render draws the element through the renderer.
	Render(r Renderer)
	// OnAddedToScreen gives the element (and its subtree) its screen context.
	OnAddedToScreen(s *Screen)
}

// nodeOf returns the component behind an element, tolerating nil.
func nodeOf(e Element) *Component {
	if e == nil {
		return nil
	}
	return e.Node()
}

// Component is the base of everything drawn onto a screen. It holds the
// geometry expressions, the boolean states and their notification bus, and
// the links to its parent and control children.
type Component struct {
	self   Element
	screen *Screen
	events EventBus

	position  Position
	size      Size
	screenPos Position

	parent   Element
	controls []Element
	control  bool

	zIndex  int
	color   int
	alpha   int
	name    string
	tooltip string
	data    any

	visible bool
	enabled bool
	hovered bool
	focused bool

	background func() Painter
	foreground func() Painter
}

// NewComponent creates a detached leaf component.
func NewComponent(opts ...Option) *Component {
	c := &Component{}
	c.Init(c, opts...)
	return c
}

// Init prepares the component for use as the base of self. Types embedding
// Component must call it from their constructor with the outer value.
func (c *Component) Init(self Element, opts ...Option) {
	c.self = self
	c.position = TopLeftOf(self)
	c.size = Inherited(self)
	c.screenPos = ScreenPosition(self)
	c.color = ColorWhite
	c.alpha = 255
	c.visible = true
	c.enabled = true
	c.background = noPainter
	c.foreground = noPainter
	for _, opt := range opts {
		opt(self)
	}
}

func noPainter() Painter { return nil }

// Node implements Element.
func (c *Component) Node() *Component { return c }

// Self returns the outer element this component is embedded in.
func (c *Component) Self() Element { return c.self }

// Screen returns the screen this component was added to, or nil.
func (c *Component) Screen() *Screen { return c.screen }

// Events returns the component's event bus.
func (c *Component) Events() *EventBus { return &c.events }

// Fire delivers the event to the component's handlers.
// Returns true if the change may proceed, false if it was cancelled.
func (c *Component) Fire(e Event) bool {
	return c.events.Fire(e)
}

// SetPosition sets the position expression of this component.
func (c *Component) SetPosition(p Position) {
	if p == nil {
		panic("widget: nil position")
	}
	c.position = p
}

// Position returns the position expression, local to the parent.
func (c *Component) Position() Position { return c.position }

// ScreenPosition returns the absolute position expression of this component.
func (c *Component) ScreenPosition() Position { return c.screenPos }

// MousePosition returns the pointer position relative to this component's
// content origin. It is 0,0 until the component is added to a screen.
func (c *Component) MousePosition() Point {
	if c.screen == nil {
		return Point{}
	}
	p := c.screen.Pointer().Sub(Point{X: c.screenPos.X(), Y: c.screenPos.Y()})
	if s, ok := c.self.(scroller); ok {
		p = p.Add(s.ScrollOffset())
	}
	return p
}

// SetSize sets the size expression of this component.
func (c *Component) SetSize(s Size) {
	if s == nil {
		panic("widget: nil size")
	}
	c.size = s
}

// Size returns the size expression.
func (c *Component) Size() Size { return c.size }

// InnerSize returns the size available for content.
func (c *Component) InnerSize() Size { return InnerSize(c.self) }

// Bounds evaluates the on-screen rectangle of this component.
func (c *Component) Bounds() Rect {
	return Rect{X: c.screenPos.X(), Y: c.screenPos.Y(), W: c.size.Width(), H: c.size.Height()}
}

// SetZIndex sets the z-index. Zero means inherit from the parent.
func (c *Component) SetZIndex(z int) { c.zIndex = z }

// ZIndex returns the local z-index, or the parent's when unset.
func (c *Component) ZIndex() int {
	for n := c; n != nil; n = nodeOf(n.parent) {
		if n.zIndex != 0 {
			return n.zIndex
		}
	}
	return 0
}

// SetColor sets the 0xRRGGBB color. Its effect depends on the painters.
func (c *Component) SetColor(color int) { c.color = color }

// Color returns the 0xRRGGBB color.
func (c *Component) Color() int { return c.color }

// SetAlpha sets the local alpha, clamped to 0-255.
func (c *Component) SetAlpha(alpha int) { c.alpha = clampi(alpha, 0, 255) }

// Alpha returns the effective alpha: the minimum of this component's alpha
// and every ancestor's.
func (c *Component) Alpha() int {
	a := c.alpha
	for n := nodeOf(c.parent); n != nil; n = nodeOf(n.parent) {
		a = mini(a, n.alpha)
	}
	return a
}

// SetName sets the name used to look the component up from its parent.
func (c *Component) SetName(name string) { c.name = name }

// Name returns the component name.
func (c *Component) Name() string { return c.name }

// SetTooltip sets the tooltip text shown while hovered.
func (c *Component) SetTooltip(text string) { c.tooltip = text }

// Tooltip returns the tooltip text.
func (c *Component) Tooltip() string { return c.tooltip }

// AttachData stores arbitrary user data on the component.
func (c *Component) AttachData(data any) { c.data = data }

// Data returns the attached user data.
func (c *Component) Data() any { return c.data }

// Parent returns the parent element, or nil for a root or detached component.
func (c *Component) Parent() Element { return c.parent }

// IsControl reports whether this component was added as a control component.
func (c *Component) IsControl() bool { return c.control }

// IsVisible reports the local visibility flag.
func (c *Component) IsVisible() bool { return c.visible }

// SetVisible changes visibility. Hiding a component also clears its hover
// and focus, each through its own notification.
func (c *Component) SetVisible(visible bool) {
	if c.visible == visible {
		return
	}
	if !c.fireState(StateVisible, c.visible, visible, false) {
		return
	}

	c.visible = visible
	if !visible {
		c.SetHovered(false)
		c.SetFocused(false)
	}
}

// IsEnabled returns true only if this component and all its ancestors are enabled.
func (c *Component) IsEnabled() bool {
	for n := c; n != nil; n = nodeOf(n.parent) {
		if !n.enabled {
			return false
		}
	}
	return true
}

// IsDisabled is the negation of IsEnabled.
func (c *Component) IsDisabled() bool { return !c.IsEnabled() }

// SetEnabled changes the local enabled flag. Enabling a component also
// clears its hover and focus.
func (c *Component) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	if !c.fireState(StateEnabled, c.enabled, enabled, false) {
		return
	}

	c.enabled = enabled
	if enabled {
		c.SetHovered(false)
		c.SetFocused(false)
	}
}

// IsHovered reports the hover state.
func (c *Component) IsHovered() bool { return c.hovered }

// SetHovered changes the hover state. On a screen, gaining hover evicts the
// previously hovered component.
func (c *Component) SetHovered(hovered bool) {
	c.setExclusive(StateHovered, &c.hovered, hovered)
}

// IsFocused reports the focus state.
func (c *Component) IsFocused() bool { return c.focused }

// SetFocused changes the focus state. Disabled components cannot gain focus.
// On a screen, gaining focus evicts the previously focused component.
func (c *Component) SetFocused(focused bool) {
	if focused && !c.IsEnabled() {
		return
	}
	c.setExclusive(StateFocused, &c.focused, focused)
}

func (c *Component) setExclusive(kind StateKind, flag *bool, value bool) {
	reg := c.register(kind)
	if *flag == value && (reg == nil || reg.Holds(c.self) == value) {
		return
	}
	if *flag != value && !c.fireState(kind, *flag, value, false) {
		return
	}

	*flag = value
	if reg != nil {
		reg.Claim(c.self, value)
	}
}

// forceState applies a non-cancellable hover or focus change.
func (c *Component) forceState(kind StateKind, value bool) {
	var flag *bool
	switch kind {
	case StateHovered:
		flag = &c.hovered
	case StateFocused:
		flag = &c.focused
	default:
		return
	}
	if *flag == value {
		return
	}
	c.fireState(kind, *flag, value, true)
	*flag = value
}

func (c *Component) register(kind StateKind) *StateRegister {
	if c.screen == nil {
		return nil
	}
	switch kind {
	case StateHovered:
		return c.screen.hover
	case StateFocused:
		return c.screen.focus
	}
	return nil
}

func (c *Component) fireState(kind StateKind, old, proposed, forced bool) bool {
	e := &StateChange{
		BaseEvent: NewBaseEvent(c.self),
		Kind:      kind,
		Old:       old,
		New:       proposed,
		Forced:    forced,
	}
	if c.events.Fire(e) {
		return true
	}
	logger.Debug().
		Str("component", describe(c.self)).
		Stringer("change", e).
		Msg("state change vetoed")
	return false
}

// SetBackground sets the painter drawn behind this component's content.
// A nil painter clears the background.
func (c *Component) SetBackground(p Painter) {
	c.SetBackgroundFunc(func() Painter { return p })
}

// SetBackgroundFunc sets a supplier queried for the background painter on
// every render.
func (c *Component) SetBackgroundFunc(fn func() Painter) {
	if fn == nil {
		panic("widget: nil background supplier")
	}
	c.background = fn
}

// SetForeground sets the painter drawn over this component, clipped to it.
// A nil painter clears the foreground.
func (c *Component) SetForeground(p Painter) {
	c.SetForegroundFunc(func() Painter { return p })
}

// SetForegroundFunc sets a supplier queried for the foreground painter on
// every render.
func (c *Component) SetForegroundFunc(fn func() Painter) {
	if fn == nil {
		panic("widget: nil foreground supplier")
	}
	c.foreground = fn
}

// Controls returns the control components in insertion order.
func (c *Component) Controls() []Element {
	out := make([]Element, len(c.controls))
	copy(out, c.controls)
	return out
}

// AddControl adds a control component. Controls take input priority over
// ordinary children and are not clipped by this component. An element
// owned elsewhere is moved here.
func (c *Component) AddControl(e Element) {
	n := nodeOf(e)
	if n == nil {
		panic("widget: nil control component")
	}
	for _, existing := range c.controls {
		if existing.Node() == n {
			return
		}
	}
	if n.parent != nil {
		detach(e)
	}
	c.controls = append(c.controls, e)
	n.parent = c.self
	n.control = true
	if c.screen != nil {
		e.OnAddedToScreen(c.screen)
	}
}

// RemoveControl removes a control component previously added to this one.
func (c *Component) RemoveControl(e Element) {
	n := nodeOf(e)
	if n == nil || nodeOf(n.parent) != c {
		return
	}
	for i, existing := range c.controls {
		if existing.Node() == n {
			c.controls = append(c.controls[:i], c.controls[i+1:]...)
			break
		}
	}
	n.parent = nil
	n.control = false
	e.OnAddedToScreen(nil)
}

// RemoveAllControls detaches every control component.
func (c *Component) RemoveAllControls() {
	controls := c.controls
	c.controls = nil
	for _, e := range controls {
		n := e.Node()
		n.parent = nil
		n.control = false
		e.OnAddedToScreen(nil)
	}
}

// IsInsideBounds reports whether the screen coordinates fall within this
// component. Invisible components contain nothing.
func (c *Component) IsInsideBounds(x, y int) bool {
	if !c.visible {
		return false
	}
	return c.Bounds().Contains(x, y)
}

// ComponentAt returns the first control component hit at the coordinates,
// otherwise this component if the point is inside its bounds.
func (c *Component) ComponentAt(x, y int) Element {
	if hit := c.controlAt(x, y); hit != nil {
		return hit
	}
	if c.IsInsideBounds(x, y) {
		return c.self
	}
	return nil
}

func (c *Component) controlAt(x, y int) Element {
	for _, ctl := range c.controls {
		if hit := ctl.ComponentAt(x, y); hit != nil {
			return hit
		}
	}
	return nil
}

// OnAddedToScreen records the screen on this component and its controls.
// Leaving a screen releases any hover or focus the component still holds
// there.
func (c *Component) OnAddedToScreen(s *Screen) {
	if old := c.screen; old != nil && old != s {
		old.forget(c.self)
	}
	c.screen = s
	for _, ctl := range c.controls {
		ctl.OnAddedToScreen(s)
	}
}

// contentRenderer is implemented by elements drawing children between the
// background and the foreground.
type contentRenderer interface {
	renderContent(r Renderer)
}

// Render draws the background, the content, the clipped foreground and the
// control components. The renderer's current component is restored afterwards
// so overriding renderers keep correct relative positions.
func (c *Component) Render(r Renderer) {
	if !c.visible {
		return
	}

	prev := r.Current()

	if bg := c.background(); bg != nil {
		r.SetCurrent(c.self)
		bg.Paint(r)
		r.Next()
	}

	if cr, ok := c.self.(contentRenderer); ok {
		cr.renderContent(r)
	}

	if fg := c.foreground(); fg != nil {
		area := IntersectedClip(c.self)
		if !area.FullClip() {
			if !c.control {
				r.StartClipping(area)
			}
			r.SetCurrent(c.self)
			fg.Paint(r)
			if !c.control {
				r.EndClipping(area)
			}
		}
	}

	for _, ctl := range c.controls {
		ctl.Render(r)
	}

	r.SetCurrent(prev)
}

// PropertyString describes the evaluated geometry for debugging.
func (c *Component) PropertyString() string {
	s := FormatPosition(c.position) + "@" + FormatSize(c.size) + " | Screen=" + FormatPosition(c.screenPos)
	if _, ok := c.self.(padded); ok {
		p := PaddingOf(c.self)
		s += fmt.Sprintf(" | Padding %d.%d.%d.%d", p.Top, p.Right, p.Bottom, p.Left)
	}
	return s
}

func (c *Component) String() string {
	name := c.name
	if name == "" {
		name = typeName(c.self)
	}
	return name + " " + c.PropertyString()
}

func typeName(e Element) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", e), "*widget.")
}
