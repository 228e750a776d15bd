package widget

// Input handlers are optional interfaces on elements. A handler returns true
// when it consumed the event; otherwise the event bubbles to the parent.
// Bubbling stops at the first disabled component.

// MouseMoveHandler receives pointer movement over the component.
type MouseMoveHandler interface {
	OnMouseMove(x, y int) bool
}

// ButtonPressHandler receives mouse button presses on the component.
type ButtonPressHandler interface {
	OnButtonPress(button MouseButton, x, y int) bool
}

// ButtonReleaseHandler receives the release of a button pressed on the component.
type ButtonReleaseHandler interface {
	OnButtonRelease(button MouseButton, x, y int) bool
}

// ClickHandler receives left clicks: press and release on the same component.
type ClickHandler interface {
	OnClick() bool
}

// RightClickHandler receives right clicks.
type RightClickHandler interface {
	OnRightClick() bool
}

// DragHandler receives pointer movement while a button pressed on the
// component is held.
type DragHandler interface {
	OnDrag(button MouseButton, dx, dy int) bool
}

// ScrollHandler receives scroll wheel movement over the component.
type ScrollHandler interface {
	OnScrollWheel(delta int) bool
}

// KeyHandler receives keys and characters typed while the component has
// focus. Characters arrive with KeyNone, keys with a zero rune.
type KeyHandler interface {
	OnKeyTyped(ch rune, key Key) bool
}

// bubble offers the event to e and then its ancestors until a handler of
// type H consumes it. With stopAtControl the event does not leave a control
// component.
func bubble[H any](e Element, stopAtControl bool, call func(H) bool) bool {
	for cur := e; cur != nil; {
		n := cur.Node()
		if !n.IsEnabled() {
			return false
		}
		if h, ok := cur.(H); ok && call(h) {
			return true
		}
		if stopAtControl && n.control {
			return false
		}
		cur = n.parent
	}
	return false
}

// dispatchControlsFirst offers the event to e's control components before
// bubbling it from e. Control components keep scroll and key events to
// themselves.
func dispatchControlsFirst[H any](e Element, call func(H) bool) bool {
	n := e.Node()
	if !n.IsEnabled() {
		return false
	}
	for _, ctl := range n.controls {
		if !ctl.Node().IsEnabled() {
			continue
		}
		if h, ok := ctl.(H); ok && call(h) {
			return true
		}
	}
	return bubble(e, true, call)
}
