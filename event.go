package widget

import "fmt"

// Event is a notification fired by a component. Handlers may veto the
// change it announces by cancelling it.
type Event interface {
	Source() Element
	Cancel()
	Cancelled() bool
}

// BaseEvent carries the source and cancel flag shared by all events.
type BaseEvent struct {
	source    Element
	cancelled bool
}

// NewBaseEvent creates the common part of an event fired by source.
func NewBaseEvent(source Element) BaseEvent {
	return BaseEvent{source: source}
}

// Source returns the component that fired the event.
func (e *BaseEvent) Source() Element { return e.source }

// Cancel vetoes the change announced by the event.
func (e *BaseEvent) Cancel() { e.cancelled = true }

// Cancelled reports whether a handler vetoed the event.
func (e *BaseEvent) Cancelled() bool { return e.cancelled }

// StateKind identifies which boolean state a StateChange is about.
type StateKind int

const (
	StateVisible StateKind = iota
	StateEnabled
	StateHovered
	StateFocused
)

func (k StateKind) String() string {
	switch k {
	case StateVisible:
		return "visible"
	case StateEnabled:
		return "enabled"
	case StateHovered:
		return "hovered"
	case StateFocused:
		return "focused"
	}
	return "?"
}

// StateChange is fired before a boolean state of a component changes.
// Old is the current value and New the proposed one.
//
// Forced changes (a hover or focus holder being evicted by another
// component) cannot be vetoed: Cancel is ignored for them.
type StateChange struct {
	BaseEvent
	Kind   StateKind
	Old    bool
	New    bool
	Forced bool
}

// Cancel vetoes the change unless it is forced.
func (e *StateChange) Cancel() {
	if e.Forced {
		return
	}
	e.BaseEvent.Cancel()
}

func (e *StateChange) String() string {
	return fmt.Sprintf("%s %v->%v", e.Kind, e.Old, e.New)
}

// TabChange is fired by a TabGroup before its active tab changes.
// Cancelling it keeps Old active.
type TabChange struct {
	BaseEvent
	Group *TabGroup
	Old   *Tab
	New   *Tab
}

// EventBus dispatches events synchronously to handlers in subscription order.
type EventBus struct {
	handlers []func(Event)
}

// Subscribe registers a handler for every event fired on the bus.
func (b *EventBus) Subscribe(fn func(Event)) {
	if fn == nil {
		panic("widget: nil event handler")
	}
	b.handlers = append(b.handlers, fn)
}

// Fire delivers the event to all handlers and returns false if any of them
// cancelled it. Every handler sees the event even after a cancel.
func (b *EventBus) Fire(e Event) bool {
	for _, fn := range b.handlers {
		fn(e)
	}
	return !e.Cancelled()
}

// Len returns the number of registered handlers.
func (b *EventBus) Len() int {
	return len(b.handlers)
}

// Subscribe registers fn on el for events of type E only.
//
//	widget.Subscribe(group, func(e *widget.TabChange) {
//	    if e.New.Name() == "locked" {
//	        e.Cancel()
//	    }
//	})
func Subscribe[E Event](el Element, fn func(E)) {
	if fn == nil {
		panic("widget: nil event handler")
	}
	el.Node().Events().Subscribe(func(e Event) {
		if typed, ok := e.(E); ok {
			fn(typed)
		}
	})
}
