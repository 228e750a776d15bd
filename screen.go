package widget

import "fmt"

// Backend is the graphics backend a Screen submits its frames to.
type Backend interface {
	Render(dl *DrawList) error
	AtlasTextureID() uint32
	Resize(width, height int)
}

// Screen owns a component tree and drives it once per frame: it reads the
// input, routes hover, focus and events, and renders the tree into a
// DrawList for the backend.
//
// Usage:
//
//	screen := widget.NewScreen(backend, widget.WithDisplaySize(800, 600))
//	screen.Add(window)
//	for !win.ShouldClose() {
//	    screen.Update(input)
//	    if err := screen.Render(); err != nil { ... }
//	}
type Screen struct {
	backend Backend
	root    *Container

	hover *StateRegister
	focus *StateRegister

	theme Theme
	icons *IconSet

	pointer   Point
	buttons   [MouseButtonCount]bool
	pressedOn [MouseButtonCount]Element
	keys      [KeyCount]bool

	width, height int
	frame         uint64
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithTheme sets the theme used by the built-in painters.
func WithTheme(theme Theme) ScreenOption {
	return func(s *Screen) { s.theme = theme }
}

// WithIcons sets the icon atlas tab groups draw from.
func WithIcons(icons *IconSet) ScreenOption {
	return func(s *Screen) {
		if icons != nil {
			s.icons = icons
		}
	}
}

// WithDisplaySize sets the initial display size.
func WithDisplaySize(width, height int) ScreenOption {
	return func(s *Screen) {
		s.width = width
		s.height = height
	}
}

// NewScreen creates a screen with an empty root container. The backend may
// be nil for headless use; Render then only builds the draw list.
func NewScreen(backend Backend, opts ...ScreenOption) *Screen {
	s := &Screen{
		backend: backend,
		hover:   NewStateRegister(StateHovered),
		focus:   NewStateRegister(StateFocused),
		theme:   DefaultTheme(),
		icons:   DefaultIcons(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.root = NewContainer(WithName("root"), WithSize(displaySize{s}))
	s.root.OnAddedToScreen(s)
	return s
}

// Root returns the root container.
func (s *Screen) Root() *Container { return s.root }

// Add adds top-level components to the root container.
func (s *Screen) Add(elements ...Element) {
	s.root.Add(elements...)
}

// Pointer returns the pointer position read by the last Update.
func (s *Screen) Pointer() Point { return s.pointer }

// Hovered returns the hovered component, or nil.
func (s *Screen) Hovered() Element { return s.hover.Holder() }

// Focused returns the focused component, or nil.
func (s *Screen) Focused() Element { return s.focus.Holder() }

// Tooltip returns the tooltip of the hovered component.
func (s *Screen) Tooltip() string {
	if h := nodeOf(s.Hovered()); h != nil {
		return h.Tooltip()
	}
	return ""
}

// Theme returns the current theme.
func (s *Screen) Theme() Theme { return s.theme }

// SetTheme sets the theme.
func (s *Screen) SetTheme(theme Theme) { s.theme = theme }

// Icons returns the icon atlas.
func (s *Screen) Icons() *IconSet { return s.icons }

// Size returns the display size.
func (s *Screen) Size() (width, height int) { return s.width, s.height }

// Frame returns the number of Update calls so far.
func (s *Screen) Frame() uint64 { return s.frame }

// Resize changes the display size. The root container follows it.
func (s *Screen) Resize(width, height int) {
	if s.width == width && s.height == height {
		return
	}
	s.width = width
	s.height = height
	if s.backend != nil {
		s.backend.Resize(width, height)
	}
	logger.Debug().Int("width", width).Int("height", height).Msg("screen resized")
}

// Update processes one frame of input: pointer movement and hover, button
// presses, clicks and drags, the scroll wheel, and keys typed into the
// focused component.
func (s *Screen) Update(in Input) {
	s.frame++

	x, y := in.MousePos()
	moved := x != s.pointer.X || y != s.pointer.Y
	delta := Point{X: x, Y: y}.Sub(s.pointer)
	s.pointer = Point{X: x, Y: y}

	hit := s.componentAt(x, y)
	s.updateHover(hit)

	if moved {
		if hit != nil {
			bubble(hit, false, func(h MouseMoveHandler) bool { return h.OnMouseMove(x, y) })
		}
		for b := MouseButton(0); b < MouseButtonCount; b++ {
			if s.buttons[b] && s.pressedOn[b] != nil {
				bubble(s.pressedOn[b], false, func(h DragHandler) bool { return h.OnDrag(b, delta.X, delta.Y) })
			}
		}
	}

	for b := MouseButton(0); b < MouseButtonCount; b++ {
		down := in.MouseDown(b)
		switch {
		case down && !s.buttons[b]:
			s.press(b, hit, x, y)
		case !down && s.buttons[b]:
			s.release(b, hit, x, y)
		}
		s.buttons[b] = down
	}

	if wi, ok := in.(WheelInput); ok && hit != nil {
		if d := wi.WheelDelta(); d != 0 {
			dispatchControlsFirst(hit, func(h ScrollHandler) bool { return h.OnScrollWheel(d) })
		}
	}

	s.updateKeys(in)
}

// forget drops every reference the screen keeps to e, which is leaving it.
// Hover and focus are cleared through forced transitions, so a vetoing
// handler cannot keep a detached component registered.
func (s *Screen) forget(e Element) {
	for _, r := range []*StateRegister{s.hover, s.focus} {
		if r.Holds(e) {
			r.Clear()
		}
	}
	for b, pressed := range s.pressedOn {
		if pressed != nil && pressed.Node() == e.Node() {
			s.pressedOn[b] = nil
		}
	}
}

// componentAt hit-tests the tree. The root itself is never a target.
func (s *Screen) componentAt(x, y int) Element {
	hit := s.root.ComponentAt(x, y)
	if nodeOf(hit) == &s.root.Component {
		return nil
	}
	return hit
}

func (s *Screen) updateHover(hit Element) {
	if hit == nil {
		if h := s.hover.Holder(); h != nil {
			h.Node().SetHovered(false)
		}
		return
	}
	if !s.hover.Holds(hit) {
		hit.Node().SetHovered(true)
	}
}

func (s *Screen) press(b MouseButton, hit Element, x, y int) {
	s.pressedOn[b] = hit
	if hit == nil {
		if f := s.focus.Holder(); f != nil {
			f.Node().SetFocused(false)
		}
		return
	}
	hit.Node().SetFocused(true)
	bubble(hit, false, func(h ButtonPressHandler) bool { return h.OnButtonPress(b, x, y) })
}

func (s *Screen) release(b MouseButton, hit Element, x, y int) {
	pressed := s.pressedOn[b]
	s.pressedOn[b] = nil
	if pressed == nil {
		return
	}
	bubble(pressed, false, func(h ButtonReleaseHandler) bool { return h.OnButtonRelease(b, x, y) })
	if hit == nil || hit.Node() != pressed.Node() {
		return
	}
	switch b {
	case MouseButtonLeft:
		bubble(hit, false, func(h ClickHandler) bool { return h.OnClick() })
	case MouseButtonRight:
		bubble(hit, false, func(h RightClickHandler) bool { return h.OnRightClick() })
	}
}

func (s *Screen) updateKeys(in Input) {
	focused := s.focus.Holder()
	for k := KeyNone + 1; k < KeyCount; k++ {
		down := in.KeyDown(k)
		if down && !s.keys[k] && focused != nil {
			dispatchControlsFirst(focused, func(h KeyHandler) bool { return h.OnKeyTyped(0, k) })
		}
		s.keys[k] = down
	}

	ti, ok := in.(TextInput)
	if !ok || focused == nil {
		return
	}
	for _, ch := range ti.TypedChars() {
		dispatchControlsFirst(focused, func(h KeyHandler) bool { return h.OnKeyTyped(ch, KeyNone) })
	}
}

// Draw renders the tree through r.
func (s *Screen) Draw(r Renderer) {
	s.root.Render(r)
}

// Render draws the tree into a pooled DrawList and submits it to the backend.
func (s *Screen) Render() error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	var atlas uint32
	if s.backend != nil {
		atlas = s.backend.AtlasTextureID()
	}
	s.Draw(NewDrawListRenderer(dl, atlas))
	dl.Finalize()

	if s.backend == nil {
		return nil
	}
	if err := s.backend.Render(dl); err != nil {
		return fmt.Errorf("render frame %d: %w", s.frame, err)
	}
	return nil
}

// displaySize makes the root container follow the display.
type displaySize struct {
	s *Screen
}

func (d displaySize) Width() int     { return d.s.width }
func (d displaySize) Height() int    { return d.s.height }
func (d displaySize) String() string { return FormatSize(d) }
